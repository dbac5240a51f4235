package mock

import (
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// AbiCodecStub -
type AbiCodecStub struct {
	EncodeValueCalled func(descriptor types.Descriptor, value any) ([]byte, error)
	EncodeTupleCalled func(descriptors []types.Descriptor, values []any) ([]byte, error)
	IsEncodableCalled func(descriptor types.Descriptor, value any) (bool, error)
	DecodeValueCalled func(descriptor types.Descriptor, input any) (any, error)
	DecodeTupleCalled func(descriptors []types.Descriptor, data []byte) ([]any, error)
}

// EncodeValue -
func (stub *AbiCodecStub) EncodeValue(descriptor types.Descriptor, value any) ([]byte, error) {
	if stub.EncodeValueCalled != nil {
		return stub.EncodeValueCalled(descriptor, value)
	}

	return make([]byte, 0), nil
}

// EncodeTuple -
func (stub *AbiCodecStub) EncodeTuple(descriptors []types.Descriptor, values []any) ([]byte, error) {
	if stub.EncodeTupleCalled != nil {
		return stub.EncodeTupleCalled(descriptors, values)
	}

	return make([]byte, 0), nil
}

// IsEncodable -
func (stub *AbiCodecStub) IsEncodable(descriptor types.Descriptor, value any) (bool, error) {
	if stub.IsEncodableCalled != nil {
		return stub.IsEncodableCalled(descriptor, value)
	}

	return true, nil
}

// DecodeValue -
func (stub *AbiCodecStub) DecodeValue(descriptor types.Descriptor, input any) (any, error) {
	if stub.DecodeValueCalled != nil {
		return stub.DecodeValueCalled(descriptor, input)
	}

	return nil, nil
}

// DecodeTuple -
func (stub *AbiCodecStub) DecodeTuple(descriptors []types.Descriptor, data []byte) ([]any, error) {
	if stub.DecodeTupleCalled != nil {
		return stub.DecodeTupleCalled(descriptors, data)
	}

	return make([]any, 0), nil
}

// IsInterfaceNil -
func (stub *AbiCodecStub) IsInterfaceNil() bool {
	return stub == nil
}
