package abi

import "errors"

// ErrParsing signals that a type string is malformed
var ErrParsing = errors.New("malformed type string")

// ErrUnsupportedType signals that no leaf codec matches the provided type
var ErrUnsupportedType = errors.New("unsupported type")

// ErrEncoding signals that a value cannot be encoded under the provided type
var ErrEncoding = errors.New("encoding error")

// ErrDecoding signals that the provided data is not a valid encoding of the provided type
var ErrDecoding = errors.New("decoding error")

// ErrInsufficientData signals that the provided data is shorter than the structure demands
var ErrInsufficientData = errors.New("insufficient data")

// ErrInvalidInputShape signals that the decode input is neither a byte slice nor a hex encoded string
var ErrInvalidInputShape = errors.New("invalid decode input: the data must be a byte slice or a hex encoded string")

// ErrNilLeafCodecRegistry signals that a nil leaf codec registry has been provided
var ErrNilLeafCodecRegistry = errors.New("nil leaf codec registry")

// ErrNilDescriptor signals that a nil type descriptor has been provided
var ErrNilDescriptor = errors.New("nil type descriptor")

// ErrInvalidMaxNestingDepth signals that an invalid maximum nesting depth has been provided
var ErrInvalidMaxNestingDepth = errors.New("invalid max nesting depth")

// ErrInvalidMaxArrayLength signals that an invalid maximum array length has been provided
var ErrInvalidMaxArrayLength = errors.New("invalid max array length")
