// Package config handles configuration for the mock server, including
// defaults, environment, JSON overlay and command-line flags.
package config

import "time"

const (
	EnvTokenSecret = "CODIRECTOR_TOKEN_SECRET"
	EnvDev         = "CODIRECTOR_DEV"
)

// Config holds runtime settings for the mock server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP JSON API.
//   - GRPCAddr: bind address for the gRPC health endpoint; empty disables it.
//   - TokenSecret: HMAC secret for signing JWTs (HS256). Empty means the
//     fixed opaque mock token is issued instead.
//   - TokenTTL: lifetime reported for issued tokens.
//   - SimulatedDelay: latency added to every backend call.
//   - Development: human-readable logs at debug level.
type Config struct {
	HTTPAddr       string
	GRPCAddr       string
	TokenSecret    string
	TokenTTL       time.Duration
	SimulatedDelay time.Duration
	Development    bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3001"
	c.GRPCAddr = ":50051"
	c.TokenTTL = time.Hour
	c.SimulatedDelay = 500 * time.Millisecond
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
