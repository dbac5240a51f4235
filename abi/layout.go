package abi

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

// frameLayout describes the elements of one frame: the components of a tuple or the items of an array
type frameLayout struct {
	count      int
	headLength int
	elemAt     func(index int) types.Descriptor
}

func newTupleLayout(elems []types.Descriptor) frameLayout {
	return frameLayout{
		count:      len(elems),
		headLength: types.HeadLength(elems),
		elemAt: func(index int) types.Descriptor {
			return elems[index]
		},
	}
}

func newRepeatedLayout(elem types.Descriptor, count int) frameLayout {
	return frameLayout{
		count:      count,
		headLength: types.RepeatedHeadLength(elem, count),
		elemAt: func(_ int) types.Descriptor {
			return elem
		},
	}
}

func encodeWord(value uint64) []byte {
	word := make([]byte, types.WordSize)
	binary.BigEndian.PutUint64(word[types.WordSize-8:], value)

	return word
}

// decodeWordAsInt interprets a 32-byte big-endian word as a non-negative int
func decodeWordAsInt(word []byte) (int, error) {
	for _, b := range word[:types.WordSize-8] {
		if b != 0 {
			return 0, fmt.Errorf("%w: word value %x does not fit an int", ErrDecoding, word)
		}
	}

	value := binary.BigEndian.Uint64(word[types.WordSize-8:])
	if value > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: word value %d does not fit an int", ErrDecoding, value)
	}

	return int(value), nil
}

// toSequence returns the items of an array or tuple value. A negative expected length disables the length check.
func toSequence(value any, expectedLength int) ([]any, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value, expected a slice or an array", ErrEncoding)
	}

	items, ok := value.([]any)
	if !ok {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("%w: expected a slice or an array, got %T", ErrEncoding, value)
		}

		items = make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
	}

	if expectedLength >= 0 && len(items) != expectedLength {
		return nil, fmt.Errorf("%w: expected %d items, got %d", ErrEncoding, expectedLength, len(items))
	}

	return items, nil
}
