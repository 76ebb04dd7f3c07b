package config

import (
	"github.com/dmitrijs2005/codirector/internal/envx"
	"github.com/dmitrijs2005/codirector/internal/flagx"
)

// parseEnv overlays Config with CODIRECTOR_* environment variables. The
// dotenv file named by -env, or ./.env when present, is loaded first and
// never overrides variables already set. A broken -env file panics.
func parseEnv(cfg *Config) {
	if err := envx.LoadDotenv(flagx.EnvFileFlag()); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = envx.String(EnvAPIBaseURL, cfg.APIBaseURL)
	cfg.StorageDriver = envx.String(EnvStorage, cfg.StorageDriver)
	cfg.RequestTimeout = envx.Duration(EnvTimeout, cfg.RequestTimeout)

	cfg.DevelopmentMode, _ = envx.Bool(EnvDev, cfg.DevelopmentMode)
	if v, ok := envx.Bool(EnvMockAPI, cfg.MockAPIEnabled); ok {
		cfg.setMockAPI(v)
	}
}
