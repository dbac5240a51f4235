package leafCodecs

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(hexSuffix string) []byte {
	padded := strings.Repeat("0", 64-len(hexSuffix)) + hexSuffix
	data, _ := hex.DecodeString(padded)
	return data
}

func ones(n int) []byte {
	return bytes.Repeat([]byte{0xff}, n)
}

func TestUnsignedCodec(t *testing.T) {
	t.Parallel()

	c := newUnsignedCodec(8)

	t.Run("validate", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, c.Validate(255))
		assert.Nil(t, c.Validate(uint8(0)))
		assert.Nil(t, c.Validate(big.NewInt(17)))
		assert.Nil(t, c.Validate(*big.NewInt(17)))
		assert.ErrorIs(t, c.Validate(256), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate(-1), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate("1"), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate((*big.Int)(nil)), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate(nil), abi.ErrEncoding)
	})
	t.Run("encode", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(uint8(0xab))
		require.Nil(t, err)
		assert.Equal(t, word("ab"), encoded)
	})
	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode(word("ab"))
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(0xab), decoded)

		_, err = c.Decode(word("100"))
		assert.ErrorIs(t, err, abi.ErrDecoding)

		_, err = c.Decode(make([]byte, 31))
		assert.ErrorIs(t, err, abi.ErrInsufficientData)
	})
	t.Run("uint256 max value", func(t *testing.T) {
		t.Parallel()

		c256 := newUnsignedCodec(256)
		maxValue := new(big.Int).SetBytes(ones(32))

		encoded, err := c256.Encode(maxValue)
		require.Nil(t, err)
		assert.Equal(t, ones(32), encoded)

		decoded, err := c256.Decode(encoded)
		require.Nil(t, err)
		assert.Equal(t, 0, maxValue.Cmp(decoded.(*big.Int)))

		tooBig := new(big.Int).Add(maxValue, big.NewInt(1))
		assert.ErrorIs(t, c256.Validate(tooBig), abi.ErrEncoding)
	})
}

func TestSignedCodec(t *testing.T) {
	t.Parallel()

	c := newSignedCodec(8)

	t.Run("validate", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, c.Validate(127))
		assert.Nil(t, c.Validate(-128))
		assert.Nil(t, c.Validate(int8(-1)))
		assert.ErrorIs(t, c.Validate(128), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate(-129), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate(true), abi.ErrEncoding)
	})
	t.Run("negative values are sign extended", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(-1)
		require.Nil(t, err)
		assert.Equal(t, ones(32), encoded)

		decoded, err := c.Decode(encoded)
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(-1), decoded)

		encoded, err = c.Encode(-128)
		require.Nil(t, err)
		decoded, err = c.Decode(encoded)
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(-128), decoded)
	})
	t.Run("positive values", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(big.NewInt(5))
		require.Nil(t, err)
		assert.Equal(t, word("05"), encoded)
	})
	t.Run("decode out of range should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(word("80"))
		assert.ErrorIs(t, err, abi.ErrDecoding)
	})
}

func TestBoolCodec(t *testing.T) {
	t.Parallel()

	c := &boolCodec{}

	encoded, err := c.Encode(true)
	require.Nil(t, err)
	assert.Equal(t, word("01"), encoded)

	encoded, err = c.Encode(false)
	require.Nil(t, err)
	assert.Equal(t, word(""), encoded)

	decoded, err := c.Decode(word("01"))
	require.Nil(t, err)
	assert.Equal(t, true, decoded)

	_, err = c.Decode(word("02"))
	assert.ErrorIs(t, err, abi.ErrDecoding)

	assert.ErrorIs(t, c.Validate(1), abi.ErrEncoding)
}

func TestAddressCodec(t *testing.T) {
	t.Parallel()

	c := &addressCodec{}
	raw := bytes.Repeat([]byte{0x11}, AddressLength)
	var address Address
	copy(address[:], raw)

	t.Run("accepted inputs", func(t *testing.T) {
		t.Parallel()

		for _, value := range []any{address, &address, [20]byte(address), raw, address.Hex(), strings.TrimPrefix(address.Hex(), "0x")} {
			encoded, err := c.Encode(value)
			require.Nil(t, err)
			assert.Equal(t, word(strings.Repeat("11", AddressLength)), encoded)
		}
	})
	t.Run("rejected inputs", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, c.Validate(raw[:19]), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate("0x1234"), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate("0xzz"), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate(42), abi.ErrEncoding)
		assert.ErrorIs(t, c.Validate((*Address)(nil)), abi.ErrEncoding)
	})
	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode(word(strings.Repeat("11", AddressLength)))
		require.Nil(t, err)
		assert.Equal(t, address, decoded)
		assert.Equal(t, "0x"+strings.Repeat("11", AddressLength), decoded.(Address).String())

		_, err = c.Decode(word("01" + strings.Repeat("11", AddressLength)))
		assert.ErrorIs(t, err, abi.ErrDecoding)
	})
}

func TestFixedBytesCodec(t *testing.T) {
	t.Parallel()

	c := newFixedBytesCodec(4)

	encoded, err := c.Encode([]byte{1, 2})
	require.Nil(t, err)
	expected := make([]byte, 32)
	expected[0], expected[1] = 1, 2
	assert.Equal(t, expected, encoded)

	decoded, err := c.Decode(encoded)
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 0, 0}, decoded)

	encoded, err = c.Encode([4]byte{1, 2, 3, 4})
	require.Nil(t, err)
	decoded, err = c.Decode(encoded)
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, decoded)

	assert.ErrorIs(t, c.Validate([]byte{1, 2, 3, 4, 5}), abi.ErrEncoding)
	assert.ErrorIs(t, c.Validate("abcd"), abi.ErrEncoding)

	encoded[10] = 1
	_, err = c.Decode(encoded)
	assert.ErrorIs(t, err, abi.ErrDecoding)
}

func TestBytesCodec(t *testing.T) {
	t.Parallel()

	c := &bytesCodec{}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		for _, length := range []int{0, 1, 31, 32, 33, 64} {
			value := bytes.Repeat([]byte{0xaa}, length)
			encoded, err := c.Encode(value)
			require.Nil(t, err)
			assert.Equal(t, 32+paddedLength(length), len(encoded))

			decoded, err := c.Decode(encoded)
			require.Nil(t, err)
			assert.Equal(t, value, decoded)
		}
	})
	t.Run("declared length past the buffer should error", func(t *testing.T) {
		t.Parallel()

		data := append(word("40"), make([]byte, 32)...)
		_, err := c.Decode(data)
		assert.ErrorIs(t, err, abi.ErrInsufficientData)
	})
	t.Run("missing padding should error", func(t *testing.T) {
		t.Parallel()

		data := append(word("03"), []byte("dog")...)
		_, err := c.Decode(data)
		assert.ErrorIs(t, err, abi.ErrInsufficientData)
	})
	t.Run("huge declared length should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(ones(32))
		assert.ErrorIs(t, err, abi.ErrDecoding)
	})
	t.Run("dirty padding should error", func(t *testing.T) {
		t.Parallel()

		body := make([]byte, 32)
		copy(body, "dog")
		body[31] = 1
		_, err := c.Decode(append(word("03"), body...))
		assert.ErrorIs(t, err, abi.ErrDecoding)
	})
}

func TestStringCodec(t *testing.T) {
	t.Parallel()

	c := &stringCodec{}

	encoded, err := c.Encode("dog")
	require.Nil(t, err)
	body := make([]byte, 32)
	copy(body, "dog")
	assert.Equal(t, append(word("03"), body...), encoded)

	decoded, err := c.Decode(encoded)
	require.Nil(t, err)
	assert.Equal(t, "dog", decoded)

	assert.ErrorIs(t, c.Validate([]byte("dog")), abi.ErrEncoding)
	assert.ErrorIs(t, c.Validate(string([]byte{0xff, 0xfe})), abi.ErrEncoding)

	invalid := make([]byte, 32)
	invalid[0] = 0xff
	_, err = c.Decode(append(word("01"), invalid...))
	assert.ErrorIs(t, err, abi.ErrDecoding)
}
