package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/codirector/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":3001")
//	-g string     gRPC health bind address; empty disables it
//	-s string     JWT HMAC secret key
//	-t duration   token lifetime
//	-delay dur    simulated backend latency
//	-dev          development logging
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-t", "-delay", "-dev"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP API")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to run the gRPC health endpoint")
	fs.StringVar(&config.TokenSecret, "s", config.TokenSecret, "secret key")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "token lifetime")
	fs.DurationVar(&config.SimulatedDelay, "delay", config.SimulatedDelay, "simulated backend latency")
	fs.BoolVar(&config.Development, "dev", config.Development, "development logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
