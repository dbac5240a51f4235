package leafCodecs

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

const wordSize = types.WordSize

func readWord(data []byte) ([]byte, error) {
	if len(data) < wordSize {
		return nil, fmt.Errorf("%w: a word needs %d bytes, got %d", abi.ErrInsufficientData, wordSize, len(data))
	}

	return data[:wordSize], nil
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}

	return true
}

func paddedLength(length int) int {
	return (length + wordSize - 1) / wordSize * wordSize
}

func encodeLength(length int) []byte {
	word := make([]byte, wordSize)
	binary.BigEndian.PutUint64(word[wordSize-8:], uint64(length))

	return word
}

func decodeLength(word []byte) (int, error) {
	if !isZero(word[:wordSize-8]) {
		return 0, fmt.Errorf("%w: length word %x does not fit an int", abi.ErrDecoding, word)
	}

	length := binary.BigEndian.Uint64(word[wordSize-8:])
	if length > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: length %d does not fit an int", abi.ErrDecoding, length)
	}

	return int(length), nil
}

// toBigInt converts every Go integer kind, big.Int and *big.Int into a new *big.Int
func toBigInt(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set(v), true
	case big.Int:
		return new(big.Int).Set(&v), true
	}

	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	default:
		return nil, false
	}
}

// toByteSlice accepts byte slices and byte arrays of any length
func toByteSlice(value any) ([]byte, bool) {
	if b, ok := value.([]byte); ok {
		return b, true
	}
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}

	b := make([]byte, rv.Len())
	for i := range b {
		b[i] = byte(rv.Index(i).Uint())
	}

	return b, true
}

func cloneBytes(data []byte) []byte {
	result := make([]byte, len(data))
	copy(result, data)

	return result
}
