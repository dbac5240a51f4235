package leafCodecs

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

var twoToThe256 = new(big.Int).Lsh(big.NewInt(1), 8*wordSize)

// signedCodec handles int8 to int256, encoded as sign-extended two's complement words
type signedCodec struct {
	bits     int
	minValue *big.Int
	maxValue *big.Int
}

func newSignedCodec(bits int) *signedCodec {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))

	return &signedCodec{
		bits:     bits,
		minValue: new(big.Int).Neg(limit),
		maxValue: new(big.Int).Sub(limit, big.NewInt(1)),
	}
}

// Encode returns the two's complement word of the value
func (c *signedCodec) Encode(value any) ([]byte, error) {
	n, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		n.Add(n, twoToThe256)
	}

	return n.FillBytes(make([]byte, wordSize)), nil
}

// Decode reads one two's complement word as a *big.Int
func (c *signedCodec) Decode(data []byte) (any, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(word)
	if word[0]&0x80 != 0 {
		n.Sub(n, twoToThe256)
	}
	if !c.inRange(n) {
		return nil, fmt.Errorf("%w: value %s overflows int%d", abi.ErrDecoding, n.String(), c.bits)
	}

	return n, nil
}

// Validate checks that the value is an integer in [-2^(bits-1), 2^(bits-1))
func (c *signedCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *signedCodec) toChecked(value any) (*big.Int, error) {
	n, ok := toBigInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: int%d expects an integer, got %T", abi.ErrEncoding, c.bits, value)
	}
	if !c.inRange(n) {
		return nil, fmt.Errorf("%w: value %s overflows int%d", abi.ErrEncoding, n.String(), c.bits)
	}

	return n, nil
}

func (c *signedCodec) inRange(n *big.Int) bool {
	return n.Cmp(c.minValue) >= 0 && n.Cmp(c.maxValue) <= 0
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *signedCodec) IsInterfaceNil() bool {
	return c == nil
}
