package abi

import (
	"errors"
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// validator walks a value the same way the encoder does, without producing bytes
type validator struct {
	registry LeafCodecRegistry
}

func (v *validator) isEncodable(descriptor types.Descriptor, value any) (bool, error) {
	err := v.validate(descriptor, value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrEncoding) {
		log.Trace("validator.isEncodable", "type", descriptor.String(), "error", err.Error())
		return false, nil
	}

	return false, err
}

func (v *validator) validate(descriptor types.Descriptor, value any) error {
	switch desc := descriptor.(type) {
	case *types.Base:
		leaf, err := v.registry.Get(desc)
		if err != nil {
			return err
		}

		return leaf.Validate(value)
	case *types.FixedArray:
		items, err := toSequence(value, desc.Length())
		if err != nil {
			return err
		}

		return v.validateItems(newRepeatedLayout(desc.Elem(), desc.Length()), items)
	case *types.DynamicArray:
		items, err := toSequence(value, -1)
		if err != nil {
			return err
		}

		return v.validateItems(newRepeatedLayout(desc.Elem(), len(items)), items)
	case *types.Tuple:
		items, err := toSequence(value, desc.Len())
		if err != nil {
			return err
		}

		return v.validateItems(newTupleLayout(desc.Elems()), items)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, descriptor)
	}
}

func (v *validator) validateItems(layout frameLayout, items []any) error {
	for i := 0; i < layout.count; i++ {
		err := v.validate(layout.elemAt(i), items[i])
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
