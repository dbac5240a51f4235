package mock

import (
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// TypeParserStub -
type TypeParserStub struct {
	ParseCalled    func(typeString string) (types.Descriptor, error)
	ParseAllCalled func(typeStrings []string) ([]types.Descriptor, error)
}

// Parse -
func (stub *TypeParserStub) Parse(typeString string) (types.Descriptor, error) {
	if stub.ParseCalled != nil {
		return stub.ParseCalled(typeString)
	}

	return types.NewBase(types.NameUint, 256), nil
}

// ParseAll -
func (stub *TypeParserStub) ParseAll(typeStrings []string) ([]types.Descriptor, error) {
	if stub.ParseAllCalled != nil {
		return stub.ParseAllCalled(typeStrings)
	}

	descriptors := make([]types.Descriptor, 0, len(typeStrings))
	for range typeStrings {
		descriptors = append(descriptors, types.NewBase(types.NameUint, 256))
	}

	return descriptors, nil
}

// IsInterfaceNil -
func (stub *TypeParserStub) IsInterfaceNil() bool {
	return stub == nil
}
