package errors

import (
	"errors"
)

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrNilMetricsGatherer signals that a nil metrics gatherer has been provided
var ErrNilMetricsGatherer = errors.New("nil metrics gatherer")

// ErrInvalidHexData signals that the provided data is not hex encoded
var ErrInvalidHexData = errors.New("invalid hex data")

// ErrEmptyType signals that no type string has been provided
var ErrEmptyType = errors.New("empty type")

// ErrEncode signals an error while encoding arguments
var ErrEncode = errors.New("encode error")

// ErrDecode signals an error while decoding data
var ErrDecode = errors.New("decode error")

// ErrIsEncodable signals an error while checking the encodability of an argument
var ErrIsEncodable = errors.New("is encodable error")

// ErrCanonicalType signals an error while computing the canonical form of a type
var ErrCanonicalType = errors.New("canonical type error")
