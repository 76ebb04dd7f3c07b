package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/codirector/internal/flagx"
	"github.com/dmitrijs2005/codirector/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both strings
// such as "1h" and integer nanoseconds.
type JsonConfig struct {
	HTTPAddr       string          `json:"http_addr"`
	GRPCAddr       *string         `json:"grpc_addr"`
	TokenSecret    string          `json:"token_secret"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	SimulatedDelay *timex.Duration `json:"simulated_delay"`
	Development    *bool           `json:"development"`
}

// parseJson loads the file named by -c or -config, if any. Absent fields
// keep their current values. If the file cannot be read or contains invalid
// JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.GRPCAddr != nil {
		config.GRPCAddr = *c.GRPCAddr
	}
	if c.TokenSecret != "" {
		config.TokenSecret = c.TokenSecret
	}
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.SimulatedDelay != nil {
		config.SimulatedDelay = c.SimulatedDelay.Duration
	}
	if c.Development != nil {
		config.Development = *c.Development
	}
}
