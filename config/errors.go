package config

import "errors"

var errNilConfig = errors.New("nil config")

var errInvalidMaxNestingDepth = errors.New("invalid Limits.MaxNestingDepth, it must be at least 1")

var errInvalidMaxArrayLength = errors.New("invalid Limits.MaxArrayLength, it must be at least 1")

var errEmptyInterfaceAddress = errors.New("empty WebServer.InterfaceAddress")

var errInvalidRequestTimeout = errors.New("invalid WebServer.RequestTimeoutSec, it must be at least 1")

var errInvalidSimultaneousRequests = errors.New("invalid WebServer.SimultaneousRequests, it must be at least 1")

var errInvalidCorsOrigin = errors.New("invalid WebServer.CorsAllowOrigins entry, it must be * or start with http:// or https://")
