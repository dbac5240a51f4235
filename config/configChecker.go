package config

import (
	"fmt"
	"strings"
)

// CheckConfig checks that the limits and the web server settings are usable
func CheckConfig(cfg *Config) error {
	if cfg == nil {
		return errNilConfig
	}
	if cfg.Limits.MaxNestingDepth < 1 {
		return fmt.Errorf("%w, provided %d", errInvalidMaxNestingDepth, cfg.Limits.MaxNestingDepth)
	}
	if cfg.Limits.MaxArrayLength < 1 {
		return fmt.Errorf("%w, provided %d", errInvalidMaxArrayLength, cfg.Limits.MaxArrayLength)
	}
	if !cfg.WebServer.Enabled {
		return nil
	}
	if len(cfg.WebServer.InterfaceAddress) == 0 {
		return errEmptyInterfaceAddress
	}
	if cfg.WebServer.RequestTimeoutSec < 1 {
		return fmt.Errorf("%w, provided %d", errInvalidRequestTimeout, cfg.WebServer.RequestTimeoutSec)
	}
	if cfg.WebServer.SimultaneousRequests == 0 {
		return errInvalidSimultaneousRequests
	}
	for _, origin := range cfg.WebServer.CorsAllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("%w: %q", errInvalidCorsOrigin, origin)
		}
	}

	return nil
}
