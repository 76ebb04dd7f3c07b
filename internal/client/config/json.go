package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/codirector/internal/flagx"
	"github.com/dmitrijs2005/codirector/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	HealthAddr          string          `json:"health_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	StorageDriver       string          `json:"storage_driver"`
	StorageDSN          string          `json:"storage_dsn"`
	RedisAddr           string          `json:"redis_addr"`
	RedisPassword       string          `json:"redis_password"`
	StorageKey          string          `json:"storage_key"`
	DevelopmentMode     *bool           `json:"development_mode"`
	MockAPIEnabled      *bool           `json:"mock_api_enabled"`
	Language            string          `json:"language"`
	SimulatedDelay      *timex.Duration `json:"simulated_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c or -config; without either nothing is loaded.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.HealthAddr, jc.HealthAddr)
	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.StorageKey, jc.StorageKey)
	setString(&cfg.Language, jc.Language)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.SimulatedDelay != nil {
		cfg.SimulatedDelay = jc.SimulatedDelay.Duration
	}
	if jc.DevelopmentMode != nil {
		cfg.DevelopmentMode = *jc.DevelopmentMode
	}
	if jc.MockAPIEnabled != nil {
		cfg.setMockAPI(*jc.MockAPIEnabled)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
