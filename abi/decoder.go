package abi

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// decoder is single use: it is created for one buffer and discarded after the call
type decoder struct {
	data           []byte
	registry       LeafCodecRegistry
	frames         *frameStack
	maxArrayLength int
}

func (d *decoder) decode(descriptor types.Descriptor) (any, error) {
	if descriptor.IsDynamic() {
		return d.decodeDynamic(descriptor, 0)
	}

	return d.decodeStatic(descriptor, 0)
}

// decodeFrame decodes the elements of a structure starting at the provided position. The head cursor and the
// payload positions are independent: after decoding a dynamic payload the head is resumed at the next slot.
func (d *decoder) decodeFrame(start int, layout frameLayout) ([]any, error) {
	err := d.frames.push(start)
	if err != nil {
		return nil, err
	}
	defer d.frames.pop()

	err = d.ensure(start, layout.headLength)
	if err != nil {
		return nil, err
	}

	values := make([]any, layout.count)
	cursor := start
	for i := 0; i < layout.count; i++ {
		elem := layout.elemAt(i)

		var value any
		if elem.IsDynamic() {
			var offset int
			offset, err = d.readOffset(cursor, layout.headLength)
			if err == nil {
				value, err = d.decodeDynamic(elem, d.frames.base()+offset)
			}
		} else {
			value, err = d.decodeStatic(elem, cursor)
		}
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		values[i] = value
		cursor += elem.HeadSize()
	}

	return values, nil
}

func (d *decoder) decodeStatic(descriptor types.Descriptor, position int) (any, error) {
	switch desc := descriptor.(type) {
	case *types.Base:
		err := d.ensure(position, types.WordSize)
		if err != nil {
			return nil, err
		}

		return d.decodeBase(desc, d.data[position:position+types.WordSize])
	case *types.FixedArray:
		return d.decodeStaticSequence(position, newRepeatedLayout(desc.Elem(), desc.Length()))
	case *types.Tuple:
		return d.decodeStaticSequence(position, newTupleLayout(desc.Elems()))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, descriptor)
	}
}

// decodeStaticSequence decodes a static array or tuple inlined in the current frame's head
func (d *decoder) decodeStaticSequence(position int, layout frameLayout) ([]any, error) {
	err := d.ensure(position, layout.headLength)
	if err != nil {
		return nil, err
	}

	values := make([]any, layout.count)
	cursor := position
	for i := 0; i < layout.count; i++ {
		elem := layout.elemAt(i)
		values[i], err = d.decodeStatic(elem, cursor)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		cursor += elem.HeadSize()
	}

	return values, nil
}

func (d *decoder) decodeDynamic(descriptor types.Descriptor, position int) (any, error) {
	switch desc := descriptor.(type) {
	case *types.Base:
		err := d.ensure(position, 0)
		if err != nil {
			return nil, err
		}

		return d.decodeBase(desc, d.data[position:])
	case *types.DynamicArray:
		length, err := d.readLength(position)
		if err != nil {
			return nil, err
		}

		return d.decodeFrame(position+types.WordSize, newRepeatedLayout(desc.Elem(), length))
	case *types.FixedArray:
		return d.decodeFrame(position, newRepeatedLayout(desc.Elem(), desc.Length()))
	case *types.Tuple:
		return d.decodeFrame(position, newTupleLayout(desc.Elems()))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, descriptor)
	}
}

func (d *decoder) decodeBase(base *types.Base, data []byte) (any, error) {
	leaf, err := d.registry.Get(base)
	if err != nil {
		return nil, err
	}

	return leaf.Decode(data)
}

// readOffset reads the head slot at the cursor and checks it against the bounds of the current frame
func (d *decoder) readOffset(cursor int, headLength int) (int, error) {
	err := d.ensure(cursor, types.WordSize)
	if err != nil {
		return 0, err
	}

	offset, err := decodeWordAsInt(d.data[cursor : cursor+types.WordSize])
	if err != nil {
		return 0, err
	}

	frameLength := len(d.data) - d.frames.base()
	if offset < headLength || offset >= frameLength {
		return 0, fmt.Errorf("%w: offset %d out of the frame bounds [%d, %d) at position %d",
			ErrDecoding, offset, headLength, frameLength, cursor)
	}

	log.Trace("decoder.readOffset", "cursor", cursor, "base", d.frames.base(), "offset", offset)

	return offset, nil
}

func (d *decoder) readLength(position int) (int, error) {
	err := d.ensure(position, types.WordSize)
	if err != nil {
		return 0, err
	}

	length, err := decodeWordAsInt(d.data[position : position+types.WordSize])
	if err != nil {
		return 0, err
	}
	if length > d.maxArrayLength {
		return 0, fmt.Errorf("%w: declared array length %d exceeds the maximum of %d at position %d",
			ErrDecoding, length, d.maxArrayLength, position)
	}

	return length, nil
}

func (d *decoder) ensure(position int, size int) error {
	if position < 0 || size < 0 || position > len(d.data) || size > len(d.data)-position {
		return fmt.Errorf("%w: %d bytes needed at position %d, buffer has %d bytes",
			ErrInsufficientData, size, position, len(d.data))
	}

	return nil
}
