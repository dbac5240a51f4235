package facade

import (
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// AbiCodecHandler defines the operations of the argument codec
type AbiCodecHandler interface {
	EncodeValue(descriptor types.Descriptor, value any) ([]byte, error)
	EncodeTuple(descriptors []types.Descriptor, values []any) ([]byte, error)
	IsEncodable(descriptor types.Descriptor, value any) (bool, error)
	DecodeValue(descriptor types.Descriptor, input any) (any, error)
	DecodeTuple(descriptors []types.Descriptor, data []byte) ([]any, error)
	IsInterfaceNil() bool
}

// TypeParserHandler turns type strings into descriptors
type TypeParserHandler interface {
	Parse(typeString string) (types.Descriptor, error)
	ParseAll(typeStrings []string) ([]types.Descriptor, error)
	IsInterfaceNil() bool
}
