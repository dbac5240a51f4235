package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
)

// LimitsConfig holds the hardening limits applied while parsing types and decoding data
type LimitsConfig struct {
	MaxNestingDepth int
	MaxArrayLength  int
}

// WebServerConfig holds the configuration for the REST API server
type WebServerConfig struct {
	Enabled              bool
	InterfaceAddress     string
	RequestTimeoutSec    int
	SimultaneousRequests uint32
	CorsAllowOrigins     []string
	EnablePprof          bool
}

// LogsConfig will hold settings related to the logging sub-system
type LogsConfig struct {
	LogLevel         string
	DisableAnsiColor bool
}

// Config will hold the whole config file's data
type Config struct {
	Limits    LimitsConfig
	WebServer WebServerConfig
	Logs      LogsConfig
}

// DefaultConfig returns the configuration used when no config file is provided
func DefaultConfig() Config {
	return Config{
		Limits: LimitsConfig{
			MaxNestingDepth: 32,
			MaxArrayLength:  65536,
		},
		WebServer: WebServerConfig{
			Enabled:              true,
			InterfaceAddress:     "localhost:8080",
			RequestTimeoutSec:    10,
			SimultaneousRequests: 100,
			CorsAllowOrigins:     []string{"*"},
		},
		Logs: LogsConfig{
			LogLevel: "*:INFO",
		},
	}
}

// LoadConfig returns a Config by reading the config file provided. The values missing from the file keep
// their defaults.
func LoadConfig(filepath string) (*Config, error) {
	cfg := DefaultConfig()
	err := core.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return nil, err
	}

	err = CheckConfig(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
