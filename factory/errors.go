package factory

import "errors"

// ErrNilConfig signals that a nil config has been provided
var ErrNilConfig = errors.New("nil config")

// ErrEmptyAppVersion signals that an empty app version has been provided
var ErrEmptyAppVersion = errors.New("empty app version")
