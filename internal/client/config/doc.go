// Package config loads runtime configuration for the Co-Director CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: CODIRECTOR_API_BASE_URL, CODIRECTOR_DEV,
//     CODIRECTOR_MOCK_API, CODIRECTOR_STORAGE, CODIRECTOR_REQUEST_TIMEOUT.
//     A dotenv file given with -env (or ./.env) is loaded first.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:3001/api",
//	  "request_timeout": "15s",
//	  "health_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "storage_driver": "sqlite",
//	  "storage_dsn": "codirector.db",
//	  "storage_key": "app-storage",
//	  "development_mode": true,
//	  "language": "en"
//	}
package config
