package abi

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

type encoder struct {
	registry LeafCodecRegistry
}

func (e *encoder) encode(descriptor types.Descriptor, value any) ([]byte, error) {
	switch desc := descriptor.(type) {
	case *types.Base:
		return e.encodeBase(desc, value)
	case *types.FixedArray:
		items, err := toSequence(value, desc.Length())
		if err != nil {
			return nil, err
		}

		return e.encodeFrame(newRepeatedLayout(desc.Elem(), desc.Length()), items)
	case *types.DynamicArray:
		items, err := toSequence(value, -1)
		if err != nil {
			return nil, err
		}

		body, err := e.encodeFrame(newRepeatedLayout(desc.Elem(), len(items)), items)
		if err != nil {
			return nil, err
		}

		return append(encodeWord(uint64(len(items))), body...), nil
	case *types.Tuple:
		items, err := toSequence(value, desc.Len())
		if err != nil {
			return nil, err
		}

		return e.encodeFrame(newTupleLayout(desc.Elems()), items)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, descriptor)
	}
}

func (e *encoder) encodeBase(base *types.Base, value any) ([]byte, error) {
	leaf, err := e.registry.Get(base)
	if err != nil {
		return nil, err
	}

	err = leaf.Validate(value)
	if err != nil {
		return nil, err
	}

	return leaf.Encode(value)
}

// encodeFrame writes static elements inline in the head and appends dynamic ones to the tail, leaving in their
// head slot the offset of the payload relative to the frame start
func (e *encoder) encodeFrame(layout frameLayout, values []any) ([]byte, error) {
	if layout.headLength >= types.MaxHeadSize {
		return nil, fmt.Errorf("%w: frame head exceeds %d bytes", ErrEncoding, types.MaxHeadSize)
	}

	head := make([]byte, 0, len(values)*types.WordSize)
	tail := make([]byte, 0)

	for i := 0; i < layout.count; i++ {
		elem := layout.elemAt(i)
		encoded, err := e.encode(elem, values[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		if !elem.IsDynamic() {
			head = append(head, encoded...)
			continue
		}

		offset := layout.headLength + len(tail)
		head = append(head, encodeWord(uint64(offset))...)
		tail = append(tail, encoded...)
	}

	log.Trace("encoder.encodeFrame", "elements", layout.count, "head", len(head), "tail", len(tail))

	return append(head, tail...), nil
}
