package config

import (
	"github.com/dmitrijs2005/codirector/internal/envx"
	"github.com/dmitrijs2005/codirector/internal/flagx"
)

func parseEnv(cfg *Config) {
	if err := envx.LoadDotenv(flagx.EnvFileFlag()); err != nil {
		panic(err)
	}
	cfg.TokenSecret = envx.String(EnvTokenSecret, cfg.TokenSecret)
	cfg.Development, _ = envx.Bool(EnvDev, cfg.Development)
}
