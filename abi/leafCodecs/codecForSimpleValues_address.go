package leafCodecs

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-abi-go/abi"
)

// AddressLength is the size, in bytes, of an address
const AddressLength = 20

// Address is the decoded form of the address kind
type Address [AddressLength]byte

// Hex returns the 0x prefixed, lowercase hex form of the address
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// String returns the hex form of the address
func (a Address) String() string {
	return a.Hex()
}

type addressCodec struct {
}

// Encode returns the address left-padded to one word
func (c *addressCodec) Encode(value any) ([]byte, error) {
	address, err := c.toChecked(value)
	if err != nil {
		return nil, err
	}

	word := make([]byte, wordSize)
	copy(word[wordSize-AddressLength:], address[:])

	return word, nil
}

// Decode reads one word and checks the padding
func (c *addressCodec) Decode(data []byte) (any, error) {
	word, err := readWord(data)
	if err != nil {
		return nil, err
	}
	if !isZero(word[:wordSize-AddressLength]) {
		return nil, fmt.Errorf("%w: non-zero address padding in %x", abi.ErrDecoding, word)
	}

	var address Address
	copy(address[:], word[wordSize-AddressLength:])

	return address, nil
}

// Validate checks that the value can be converted to an address
func (c *addressCodec) Validate(value any) error {
	_, err := c.toChecked(value)
	return err
}

func (c *addressCodec) toChecked(value any) (Address, error) {
	var address Address

	switch v := value.(type) {
	case Address:
		return v, nil
	case *Address:
		if v == nil {
			return address, fmt.Errorf("%w: nil address", abi.ErrEncoding)
		}
		return *v, nil
	case string:
		return c.fromHex(v)
	}

	raw, ok := toByteSlice(value)
	if !ok {
		return address, fmt.Errorf("%w: address expects an address, 20 bytes or a hex string, got %T", abi.ErrEncoding, value)
	}

	err := checkAddressLength(raw)
	if err != nil {
		return address, err
	}

	copy(address[:], raw)

	return address, nil
}

func (c *addressCodec) fromHex(value string) (Address, error) {
	var address Address

	trimmed := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return address, fmt.Errorf("%w: invalid address %q: %v", abi.ErrEncoding, value, err)
	}

	err = checkAddressLength(raw)
	if err != nil {
		return address, err
	}

	copy(address[:], raw)

	return address, nil
}

func checkAddressLength(raw []byte) error {
	if len(raw) != AddressLength {
		return fmt.Errorf("%w: address expects %d bytes, got %d", abi.ErrEncoding, AddressLength, len(raw))
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *addressCodec) IsInterfaceNil() bool {
	return c == nil
}
