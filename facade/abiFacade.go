package facade

import (
	"errors"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
	"github.com/multiversx/mx-chain-abi-go/common"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("facade")

// ArgAbiFacade represents the DTO structure used in the abi facade constructor
type ArgAbiFacade struct {
	Codec         AbiCodecHandler
	TypeParser    TypeParserHandler
	StatusHandler core.AppStatusHandler
}

// abiFacade exposes the codec operations on type strings and JSON shaped arguments
type abiFacade struct {
	codec         AbiCodecHandler
	typeParser    TypeParserHandler
	statusHandler core.AppStatusHandler
}

// NewAbiFacade creates a new abi facade instance
func NewAbiFacade(args ArgAbiFacade) (*abiFacade, error) {
	if check.IfNil(args.Codec) {
		return nil, ErrNilAbiCodec
	}
	if check.IfNil(args.TypeParser) {
		return nil, ErrNilTypeParser
	}
	if check.IfNil(args.StatusHandler) {
		return nil, ErrNilStatusHandler
	}

	return &abiFacade{
		codec:         args.Codec,
		typeParser:    args.TypeParser,
		statusHandler: args.StatusHandler,
	}, nil
}

// EncodeSingle encodes one argument. Dynamic values are returned without a leading offset.
func (af *abiFacade) EncodeSingle(typeString string, arg any) ([]byte, error) {
	af.statusHandler.Increment(common.MetricEncodeCalls)

	descriptor, err := af.parse(typeString)
	if err != nil {
		return nil, err
	}

	value, err := convertArgument(descriptor, arg)
	if err != nil {
		return nil, af.encodeFailed(err)
	}

	encoded, err := af.codec.EncodeValue(descriptor, value)
	if err != nil {
		return nil, af.encodeFailed(err)
	}

	af.statusHandler.AddUint64(common.MetricEncodedBytes, uint64(len(encoded)))

	return encoded, nil
}

// EncodeArguments encodes the arguments of a call as one tuple
func (af *abiFacade) EncodeArguments(typeStrings []string, args []any) ([]byte, error) {
	af.statusHandler.Increment(common.MetricEncodeCalls)

	descriptors, err := af.parseAll(typeStrings)
	if err != nil {
		return nil, err
	}

	values, err := convertArguments(descriptors, args)
	if err != nil {
		return nil, af.encodeFailed(err)
	}

	encoded, err := af.codec.EncodeTuple(descriptors, values)
	if err != nil {
		return nil, af.encodeFailed(err)
	}

	af.statusHandler.AddUint64(common.MetricEncodedBytes, uint64(len(encoded)))
	log.Debug("abiFacade.EncodeArguments", "types", len(descriptors), "encoded", len(encoded))

	return encoded, nil
}

// IsEncodable returns true if the argument can be encoded under the provided type. Parse errors and unsupported
// types are returned as errors.
func (af *abiFacade) IsEncodable(typeString string, arg any) (bool, error) {
	af.statusHandler.Increment(common.MetricIsEncodableCalls)

	descriptor, err := af.parse(typeString)
	if err != nil {
		return false, err
	}

	value, err := convertArgument(descriptor, arg)
	if errors.Is(err, abi.ErrEncoding) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return af.codec.IsEncodable(descriptor, value)
}

// DecodeSingle decodes one value. The input can be raw bytes or a hex encoded string.
func (af *abiFacade) DecodeSingle(typeString string, input any) (any, error) {
	af.statusHandler.Increment(common.MetricDecodeCalls)

	descriptor, err := af.parse(typeString)
	if err != nil {
		return nil, err
	}

	value, err := af.codec.DecodeValue(descriptor, input)
	if err != nil {
		af.statusHandler.Increment(common.MetricDecodeErrors)
		return nil, err
	}

	return toJSONValue(value), nil
}

// DecodeArguments decodes the arguments of a call from one tuple
func (af *abiFacade) DecodeArguments(typeStrings []string, data []byte) ([]any, error) {
	af.statusHandler.Increment(common.MetricDecodeCalls)

	descriptors, err := af.parseAll(typeStrings)
	if err != nil {
		return nil, err
	}

	values, err := af.codec.DecodeTuple(descriptors, data)
	if err != nil {
		af.statusHandler.Increment(common.MetricDecodeErrors)
		return nil, err
	}

	log.Debug("abiFacade.DecodeArguments", "types", len(descriptors), "data", len(data))

	return toJSONValue(values).([]any), nil
}

// CanonicalType returns the canonical form of the type string, e.g. "(uint,string)[]" becomes
// "(uint256,string)[]"
func (af *abiFacade) CanonicalType(typeString string) (string, error) {
	af.statusHandler.Increment(common.MetricCanonicalTypeCalls)

	descriptor, err := af.parse(typeString)
	if err != nil {
		return "", err
	}

	return descriptor.String(), nil
}

func (af *abiFacade) parse(typeString string) (types.Descriptor, error) {
	descriptor, err := af.typeParser.Parse(typeString)
	if err != nil {
		af.statusHandler.Increment(common.MetricParseErrors)
		return nil, err
	}

	return descriptor, nil
}

func (af *abiFacade) parseAll(typeStrings []string) ([]types.Descriptor, error) {
	descriptors, err := af.typeParser.ParseAll(typeStrings)
	if err != nil {
		af.statusHandler.Increment(common.MetricParseErrors)
		return nil, err
	}

	return descriptors, nil
}

func (af *abiFacade) encodeFailed(err error) error {
	af.statusHandler.Increment(common.MetricEncodeErrors)
	log.Trace("abiFacade: encoding failed", "error", err.Error())

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (af *abiFacade) IsInterfaceNil() bool {
	return af == nil
}
