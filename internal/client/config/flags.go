package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/codirector/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string     API base URL
//	-t duration   request timeout
//	-a string     gRPC health endpoint (host:port); empty disables it
//	-i int        online check interval in seconds
//	-s string     storage driver: sqlite, redis or memory
//	-d string     SQLite DSN
//	-r string     Redis address
//	-k string     local storage key
//	-l string     language code
//	-delay dur    simulated mock backend latency
//	-dev          development mode
//	-mock         use the in-process mock backend
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-u", "-t", "-a", "-i", "-s", "-d", "-r", "-k", "-l", "-delay", "-dev", "-mock",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.HealthAddr, "a", cfg.HealthAddr, "address and port of the gRPC health endpoint")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite|redis|memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "SQLite DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "local storage key")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "language code")
	fs.DurationVar(&cfg.SimulatedDelay, "delay", cfg.SimulatedDelay, "simulated mock backend latency")
	fs.BoolVar(&cfg.DevelopmentMode, "dev", cfg.DevelopmentMode, "development mode")
	mock := fs.Bool("mock", cfg.MockAPIEnabled, "use the in-process mock backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "mock":
			cfg.setMockAPI(*mock)
		}
	})
}
