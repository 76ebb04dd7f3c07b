// Package client holds the client's connection to the mock server's gRPC
// endpoint, used to watch server connectivity.
package client
