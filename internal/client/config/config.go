package config

import "time"

// Environment variables read by LoadConfig.
const (
	EnvAPIBaseURL = "CODIRECTOR_API_BASE_URL"
	EnvDev        = "CODIRECTOR_DEV"
	EnvMockAPI    = "CODIRECTOR_MOCK_API"
	EnvStorage    = "CODIRECTOR_STORAGE"
	EnvTimeout    = "CODIRECTOR_REQUEST_TIMEOUT"
)

// Config holds runtime settings for the Co-Director CLI.
//
// MockAPIEnabled follows DevelopmentMode unless a source sets it explicitly.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	HealthAddr          string
	OnlineCheckInterval time.Duration

	StorageDriver string
	StorageDSN    string
	RedisAddr     string
	RedisPassword string
	StorageKey    string

	DevelopmentMode bool
	MockAPIEnabled  bool
	Language        string
	SimulatedDelay  time.Duration

	mockAPISet bool
}

// DefaultOnlineCheckInterval replaces non-positive check intervals.
const DefaultOnlineCheckInterval = 3 * time.Second

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001/api"
	c.RequestTimeout = 15 * time.Second
	c.HealthAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = DefaultOnlineCheckInterval
	c.StorageDriver = "sqlite"
	c.StorageDSN = "codirector.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.StorageKey = "app-storage"
	c.Language = "en"
	c.SimulatedDelay = 500 * time.Millisecond
}

func (c *Config) setMockAPI(v bool) {
	c.MockAPIEnabled = v
	c.mockAPISet = true
}

func (c *Config) finish() {
	if !c.mockAPISet {
		c.MockAPIEnabled = c.DevelopmentMode
	}
	if c.OnlineCheckInterval <= 0 {
		c.OnlineCheckInterval = DefaultOnlineCheckInterval
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional dotenv file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.finish()
	return cfg
}
