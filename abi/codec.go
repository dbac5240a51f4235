package abi

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi/types"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("abi")

// ArgsCodec holds the arguments needed to create a new codec
type ArgsCodec struct {
	Registry        LeafCodecRegistry
	MaxNestingDepth int
	MaxArrayLength  int
}

// codec encodes and decodes call arguments using the head/tail layout
type codec struct {
	registry        LeafCodecRegistry
	maxNestingDepth int
	maxArrayLength  int
}

// NewCodec creates a new codec. The registry is shared by reference and must not be mutated afterwards.
func NewCodec(args ArgsCodec) (*codec, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &codec{
		registry:        args.Registry,
		maxNestingDepth: args.MaxNestingDepth,
		maxArrayLength:  args.MaxArrayLength,
	}, nil
}

func checkArgs(args ArgsCodec) error {
	if check.IfNil(args.Registry) {
		return ErrNilLeafCodecRegistry
	}
	if args.MaxNestingDepth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxNestingDepth, args.MaxNestingDepth)
	}
	if args.MaxArrayLength < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxArrayLength, args.MaxArrayLength)
	}

	return nil
}

// EncodeValue encodes a single value. Dynamic values are returned as their own payload, without a leading offset.
func (c *codec) EncodeValue(descriptor types.Descriptor, value any) ([]byte, error) {
	if descriptor == nil {
		return nil, ErrNilDescriptor
	}

	return c.newEncoder().encode(descriptor, value)
}

// EncodeTuple encodes the values as the components of one tuple, in order
func (c *codec) EncodeTuple(descriptors []types.Descriptor, values []any) ([]byte, error) {
	err := checkDescriptors(descriptors)
	if err != nil {
		return nil, err
	}
	if len(descriptors) != len(values) {
		return nil, fmt.Errorf("%w: arity mismatch, %d types and %d values", ErrEncoding, len(descriptors), len(values))
	}

	return c.newEncoder().encodeFrame(newTupleLayout(descriptors), values)
}

// IsEncodable returns true if the value can be encoded under the provided descriptor. Errors other than encoding
// errors are returned unchanged.
func (c *codec) IsEncodable(descriptor types.Descriptor, value any) (bool, error) {
	if descriptor == nil {
		return false, ErrNilDescriptor
	}

	return c.newValidator().isEncodable(descriptor, value)
}

// DecodeValue decodes a single value. The input can be a byte slice or a hex encoded string.
func (c *codec) DecodeValue(descriptor types.Descriptor, input any) (any, error) {
	if descriptor == nil {
		return nil, ErrNilDescriptor
	}

	data, err := normalizeDecodeInput(input)
	if err != nil {
		return nil, err
	}

	return c.newDecoder(data).decode(descriptor)
}

// DecodeTuple decodes the components of one tuple, in descriptor order
func (c *codec) DecodeTuple(descriptors []types.Descriptor, data []byte) ([]any, error) {
	err := checkDescriptors(descriptors)
	if err != nil {
		return nil, err
	}

	return c.newDecoder(data).decodeFrame(0, newTupleLayout(descriptors))
}

func (c *codec) newEncoder() *encoder {
	return &encoder{
		registry: c.registry,
	}
}

func (c *codec) newDecoder(data []byte) *decoder {
	return &decoder{
		data:           data,
		registry:       c.registry,
		frames:         newFrameStack(c.maxNestingDepth),
		maxArrayLength: c.maxArrayLength,
	}
}

func (c *codec) newValidator() *validator {
	return &validator{
		registry: c.registry,
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *codec) IsInterfaceNil() bool {
	return c == nil
}

func checkDescriptors(descriptors []types.Descriptor) error {
	for i, descriptor := range descriptors {
		if descriptor == nil {
			return fmt.Errorf("%w at position %d", ErrNilDescriptor, i)
		}
	}

	return nil
}
