package leafCodecs

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

// unsignedCodec handles uint8 to uint256
type unsignedCodec struct {
	bits     int
	maxValue *big.Int
}

func newUnsignedCodec(bits int) *unsignedCodec {
	maxValue := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	maxValue.Sub(maxValue, big.NewInt(1))

	return &unsignedCodec{
		bits:     bits,
		maxValue: maxValue,
	}
}

// Encode returns the big-endian, left-padded word of the value
func (c *unsignedCodec) Encode(value any) ([]byte, error) {
	n, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	return n.FillBytes(make([]byte, wordSize)), nil
}

// Decode reads one word as a *big.Int
func (c *unsignedCodec) Decode(data []byte) (any, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(word)
	if n.Cmp(c.maxValue) > 0 {
		return nil, fmt.Errorf("%w: value %s overflows uint%d", abi.ErrDecoding, n.String(), c.bits)
	}

	return n, nil
}

// Validate checks that the value is an integer in [0, 2^bits)
func (c *unsignedCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *unsignedCodec) toChecked(value any) (*big.Int, error) {
	n, ok := toBigInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: uint%d expects an integer, got %T", abi.ErrEncoding, c.bits, value)
	}
	if n.Sign() < 0 || n.Cmp(c.maxValue) > 0 {
		return nil, fmt.Errorf("%w: value %s overflows uint%d", abi.ErrEncoding, n.String(), c.bits)
	}

	return n, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *unsignedCodec) IsInterfaceNil() bool {
	return c == nil
}
