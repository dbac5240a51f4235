package leafCodecs

import (
	"fmt"
	"unicode/utf8"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

// stringCodec encodes UTF-8 text the same way as dynamic bytes
type stringCodec struct {
}

// Encode returns the length word followed by the padded UTF-8 bytes
func (c *stringCodec) Encode(value any) ([]byte, error) {
	s, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	return encodeDynamicBytes([]byte(s)), nil
}

// Decode reads the text and checks it is valid UTF-8
func (c *stringCodec) Decode(data []byte) (any, error) {
	raw, err := decodeDynamicBytes(data)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid UTF-8 string", abi.ErrDecoding)
	}

	return string(raw), nil
}

// Validate checks that the value is a valid UTF-8 string
func (c *stringCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *stringCodec) toChecked(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: string expects a string, got %T", abi.ErrEncoding, value)
	}
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 string", abi.ErrEncoding)
	}

	return s, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *stringCodec) IsInterfaceNil() bool {
	return c == nil
}
