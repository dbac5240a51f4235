package leafCodecs

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

// bytesCodec handles the dynamic bytes kind: a length word followed by the data right-padded to whole words
type bytesCodec struct {
}

// Encode returns the length word followed by the padded data
func (c *bytesCodec) Encode(value any) ([]byte, error) {
	raw, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	return encodeDynamicBytes(raw), nil
}

// Decode reads the length word and the padded data
func (c *bytesCodec) Decode(data []byte) (any, error) {
	return decodeDynamicBytes(data)
}

// Validate checks that the value is a byte slice or array
func (c *bytesCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *bytesCodec) toChecked(value any) ([]byte, error) {
	raw, ok := toByteSlice(value)
	if !ok {
		return nil, fmt.Errorf("%w: bytes expects bytes, got %T", abi.ErrEncoding, value)
	}

	return raw, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *bytesCodec) IsInterfaceNil() bool {
	return c == nil
}

func encodeDynamicBytes(raw []byte) []byte {
	encoded := make([]byte, wordSize+paddedLength(len(raw)))
	copy(encoded, encodeLength(len(raw)))
	copy(encoded[wordSize:], raw)

	return encoded
}

func decodeDynamicBytes(data []byte) ([]byte, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}

	length, err := decodeLength(word)
	if err != nil {
		return nil, err
	}

	available := len(data) - wordSize
	if length > available {
		return nil, fmt.Errorf("%w: %d bytes declared, %d available", abi.ErrInsufficientData, length, available)
	}

	padded := paddedLength(length)
	if padded > available {
		return nil, fmt.Errorf("%w: %d padded bytes needed, %d available", abi.ErrInsufficientData, padded, available)
	}

	body := data[wordSize : wordSize+padded]
	if !isZero(body[length:]) {
		return nil, fmt.Errorf("%w: non-zero padding after %d bytes", abi.ErrDecoding, length)
	}

	return cloneBytes(body[:length]), nil
}
