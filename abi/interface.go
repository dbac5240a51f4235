package abi

import "github.com/multiversx/mx-chain-abi-go/abi/types"

// LeafCodec packs and unpacks the values of one base kind
type LeafCodec interface {
	// Encode returns the word-aligned encoding of the value. For dynamic kinds it includes the length word.
	Encode(value any) ([]byte, error)
	// Decode reads one value from the beginning of the provided data, which may extend past the value
	Decode(data []byte) (any, error)
	// Validate returns an error wrapping ErrEncoding if the value cannot be encoded
	Validate(value any) error
	IsInterfaceNil() bool
}

// LeafCodecRegistry resolves the leaf codec of a base kind
type LeafCodecRegistry interface {
	Get(base *types.Base) (LeafCodec, error)
	IsInterfaceNil() bool
}
