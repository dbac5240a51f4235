package leafCodecs

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

type boolCodec struct {
}

// Encode returns a word holding 0 or 1
func (c *boolCodec) Encode(value any) ([]byte, error) {
	b, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	word := make([]byte, wordSize)
	if b {
		word[wordSize-1] = 1
	}

	return word, nil
}

// Decode accepts only the words 0 and 1
func (c *boolCodec) Decode(data []byte) (any, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}
	if !isZero(word[:wordSize-1]) || word[wordSize-1] > 1 {
		return nil, fmt.Errorf("%w: invalid boolean word %x", abi.ErrDecoding, word)
	}

	return word[wordSize-1] == 1, nil
}

// Validate checks that the value is a bool
func (c *boolCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *boolCodec) toChecked(value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: bool expects a bool, got %T", abi.ErrEncoding, value)
	}

	return b, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *boolCodec) IsInterfaceNil() bool {
	return c == nil
}
