package facade

import "errors"

// ErrNilAbiCodec signals that a nil codec has been provided
var ErrNilAbiCodec = errors.New("nil abi codec")

// ErrNilTypeParser signals that a nil type parser has been provided
var ErrNilTypeParser = errors.New("nil type parser")

// ErrNilStatusHandler signals that a nil status handler has been provided
var ErrNilStatusHandler = errors.New("nil status handler")
