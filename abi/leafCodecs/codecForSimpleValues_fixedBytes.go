package leafCodecs

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

// fixedBytesCodec handles bytes1 to bytes32. Shorter values are right-padded with zeros.
type fixedBytesCodec struct {
	size int
}

func newFixedBytesCodec(size int) *fixedBytesCodec {
	return &fixedBytesCodec{
		size: size,
	}
}

// Encode returns the value right-padded to one word
func (c *fixedBytesCodec) Encode(value any) ([]byte, error) {
	raw, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	word := make([]byte, wordSize)
	copy(word, raw)

	return word, nil
}

// Decode returns exactly size bytes and checks the padding
func (c *fixedBytesCodec) Decode(data []byte) (any, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}
	if !isZero(word[c.size:]) {
		return nil, fmt.Errorf("%w: non-zero padding for bytes%d in %x", abi.ErrDecoding, c.size, word)
	}

	return cloneBytes(word[:c.size]), nil
}

// Validate checks that the value is a byte slice or array of at most size bytes
func (c *fixedBytesCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *fixedBytesCodec) toChecked(value any) ([]byte, error) {
	raw, ok := toByteSlice(value)
	if !ok {
		return nil, fmt.Errorf("%w: bytes%d expects bytes, got %T", abi.ErrEncoding, c.size, value)
	}
	if len(raw) > c.size {
		return nil, fmt.Errorf("%w: bytes%d got %d bytes", abi.ErrEncoding, c.size, len(raw))
	}

	return raw, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *fixedBytesCodec) IsInterfaceNil() bool {
	return c == nil
}
