package facade

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/leafCodecs"
	"github.com/multiversx/mx-chain-abi-go/abi/parser"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
	"github.com/multiversx/mx-chain-abi-go/common"
	"github.com/multiversx/mx-chain-abi-go/facade/mock"
	"github.com/multiversx/mx-chain-abi-go/statusHandler"
	statusHandlerMock "github.com/multiversx/mx-chain-abi-go/testscommon/statusHandler"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockArguments() ArgAbiFacade {
	return ArgAbiFacade{
		Codec:         &mock.AbiCodecStub{},
		TypeParser:    &mock.TypeParserStub{},
		StatusHandler: statusHandler.NewNilStatusHandler(),
	}
}

func createArgumentsWithRealComponents(t *testing.T) ArgAbiFacade {
	codec, err := abi.NewCodec(abi.ArgsCodec{
		Registry:        leafCodecs.NewRegistry(),
		MaxNestingDepth: 16,
		MaxArrayLength:  1024,
	})
	require.Nil(t, err)

	typeParser, err := parser.NewTypeParser(parser.ArgsTypeParser{
		MaxNestingDepth: 16,
		MaxArrayLength:  1024,
	})
	require.Nil(t, err)

	return ArgAbiFacade{
		Codec:         codec,
		TypeParser:    typeParser,
		StatusHandler: statusHandler.NewNilStatusHandler(),
	}
}

func createRealFacade(t *testing.T) *abiFacade {
	af, err := NewAbiFacade(createArgumentsWithRealComponents(t))
	require.Nil(t, err)

	return af
}

func word(hexValue string) string {
	return strings.Repeat("0", 64-len(hexValue)) + hexValue
}

func textWord(text string) string {
	encoded := hex.EncodeToString([]byte(text))
	return encoded + strings.Repeat("0", 64-len(encoded))
}

func TestNewAbiFacade(t *testing.T) {
	t.Parallel()

	t.Run("nil codec should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.Codec = nil
		af, err := NewAbiFacade(args)
		assert.Equal(t, ErrNilAbiCodec, err)
		assert.True(t, check.IfNil(af))
	})
	t.Run("nil type parser should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.TypeParser = nil
		af, err := NewAbiFacade(args)
		assert.Equal(t, ErrNilTypeParser, err)
		assert.True(t, check.IfNil(af))
	})
	t.Run("nil status handler should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArguments()
		args.StatusHandler = nil
		af, err := NewAbiFacade(args)
		assert.Equal(t, ErrNilStatusHandler, err)
		assert.True(t, check.IfNil(af))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		af, err := NewAbiFacade(createMockArguments())
		assert.Nil(t, err)
		assert.False(t, check.IfNil(af))
	})
}

func TestAbiFacade_EncodeArguments(t *testing.T) {
	t.Parallel()

	af := createRealFacade(t)

	t.Run("json shaped arguments", func(t *testing.T) {
		t.Parallel()

		args, err := UnmarshalArguments([]byte(`[5, "dog"]`))
		require.Nil(t, err)

		encoded, err := af.EncodeArguments([]string{"uint", "string"}, args)
		require.Nil(t, err)
		assert.Equal(t, word("05")+word("40")+word("03")+textWord("dog"), hex.EncodeToString(encoded))
	})
	t.Run("integers as strings and bytes as hex", func(t *testing.T) {
		t.Parallel()

		args, err := UnmarshalArguments([]byte(`["0xff", "-1", "0xcafe", [["1", "a"]]]`))
		require.Nil(t, err)

		encoded, err := af.EncodeArguments([]string{"uint16", "int8", "bytes2", "(uint8,string)[]"}, args)
		require.Nil(t, err)

		decoded, err := af.DecodeArguments([]string{"uint16", "int8", "bytes2", "(uint8,string)[]"}, encoded)
		require.Nil(t, err)
		assert.Equal(t, []any{"255", "-1", "0xcafe", []any{[]any{"1", "a"}}}, decoded)
	})
	t.Run("arity mismatch should error", func(t *testing.T) {
		t.Parallel()

		_, err := af.EncodeArguments([]string{"uint8"}, []any{1, 2})
		assert.ErrorIs(t, err, abi.ErrEncoding)
	})
	t.Run("invalid type should error", func(t *testing.T) {
		t.Parallel()

		_, err := af.EncodeArguments([]string{"uint7"}, []any{1})
		assert.ErrorIs(t, err, abi.ErrParsing)
	})
	t.Run("out of range should error", func(t *testing.T) {
		t.Parallel()

		_, err := af.EncodeArguments([]string{"uint8"}, []any{"256"})
		assert.ErrorIs(t, err, abi.ErrEncoding)
	})
}

func TestAbiFacade_EncodeSingle(t *testing.T) {
	t.Parallel()

	af := createRealFacade(t)

	encoded, err := af.EncodeSingle("string", "dog")
	require.Nil(t, err)
	assert.Equal(t, word("03")+textWord("dog"), hex.EncodeToString(encoded))

	encoded, err = af.EncodeSingle("address", "0x"+strings.Repeat("ab", leafCodecs.AddressLength))
	require.Nil(t, err)
	assert.Equal(t, word(strings.Repeat("ab", leafCodecs.AddressLength)), hex.EncodeToString(encoded))

	_, err = af.EncodeSingle("bytes", "not hex")
	assert.ErrorIs(t, err, abi.ErrEncoding)

	_, err = af.EncodeSingle("fixed128", 1)
	assert.ErrorIs(t, err, abi.ErrUnsupportedType)
}

func TestAbiFacade_IsEncodable(t *testing.T) {
	t.Parallel()

	af := createRealFacade(t)

	encodable, err := af.IsEncodable("uint8", 255)
	assert.Nil(t, err)
	assert.True(t, encodable)

	encodable, err = af.IsEncodable("uint8", 256)
	assert.Nil(t, err)
	assert.False(t, encodable)

	encodable, err = af.IsEncodable("uint8", "twelve")
	assert.Nil(t, err)
	assert.False(t, encodable)

	encodable, err = af.IsEncodable("uint8[", 1)
	assert.ErrorIs(t, err, abi.ErrParsing)
	assert.False(t, encodable)

	encodable, err = af.IsEncodable("fixed128", 1)
	assert.ErrorIs(t, err, abi.ErrUnsupportedType)
	assert.False(t, encodable)
}

func TestAbiFacade_DecodeSingle(t *testing.T) {
	t.Parallel()

	af := createRealFacade(t)

	decoded, err := af.DecodeSingle("string", "0x"+word("03")+textWord("dog"))
	require.Nil(t, err)
	assert.Equal(t, "dog", decoded)

	decoded, err = af.DecodeSingle("address", word(strings.Repeat("ab", leafCodecs.AddressLength)))
	require.Nil(t, err)
	assert.Equal(t, "0x"+strings.Repeat("ab", leafCodecs.AddressLength), decoded)

	_, err = af.DecodeSingle("string", "dog")
	assert.ErrorIs(t, err, abi.ErrInvalidInputShape)
}

func TestAbiFacade_CanonicalType(t *testing.T) {
	t.Parallel()

	af := createRealFacade(t)

	canonical, err := af.CanonicalType(" (uint,bytes)[2] ")
	require.Nil(t, err)
	assert.Equal(t, "(uint256,bytes)[2]", canonical)

	_, err = af.CanonicalType("(uint")
	assert.ErrorIs(t, err, abi.ErrParsing)
}

func TestAbiFacade_ReportsMetrics(t *testing.T) {
	t.Parallel()

	counters := make(map[string]uint64)
	args := createArgumentsWithRealComponents(t)
	args.StatusHandler = &statusHandlerMock.AppStatusHandlerStub{
		IncrementHandler: func(key string) {
			counters[key]++
		},
		AddUint64Handler: func(key string, value uint64) {
			counters[key] += value
		},
	}
	af, err := NewAbiFacade(args)
	require.Nil(t, err)

	_, err = af.EncodeArguments([]string{"uint256", "string"}, []any{5, "dog"})
	require.Nil(t, err)
	_, _ = af.EncodeSingle("uint8", 256)
	_, _ = af.DecodeArguments([]string{"string"}, []byte{1})
	_, _ = af.CanonicalType("uint7")
	_, _ = af.IsEncodable("bool", true)

	assert.Equal(t, uint64(2), counters[common.MetricEncodeCalls])
	assert.Equal(t, uint64(1), counters[common.MetricEncodeErrors])
	assert.Equal(t, uint64(128), counters[common.MetricEncodedBytes])
	assert.Equal(t, uint64(1), counters[common.MetricDecodeCalls])
	assert.Equal(t, uint64(1), counters[common.MetricDecodeErrors])
	assert.Equal(t, uint64(1), counters[common.MetricCanonicalTypeCalls])
	assert.Equal(t, uint64(1), counters[common.MetricParseErrors])
	assert.Equal(t, uint64(1), counters[common.MetricIsEncodableCalls])
}

func TestAbiFacade_CodecErrorsArePropagated(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("expected error")
	args := createMockArguments()
	args.Codec = &mock.AbiCodecStub{
		DecodeTupleCalled: func(descriptors []types.Descriptor, data []byte) ([]any, error) {
			return nil, expectedErr
		},
		IsEncodableCalled: func(descriptor types.Descriptor, value any) (bool, error) {
			return false, expectedErr
		},
	}
	af, err := NewAbiFacade(args)
	require.Nil(t, err)

	_, err = af.DecodeArguments([]string{"uint256"}, nil)
	assert.Equal(t, expectedErr, err)

	_, err = af.IsEncodable("uint256", 1)
	assert.Equal(t, expectedErr, err)
}
