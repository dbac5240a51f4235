package facade

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

const hexPrefix = "0x"

// UnmarshalArguments reads a JSON array of arguments keeping the numbers as json.Number
func UnmarshalArguments(data []byte) ([]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	args := make([]any, 0)
	err := decoder.Decode(&args)
	if err != nil {
		return nil, fmt.Errorf("%w: arguments must be a JSON array: %v", abi.ErrInvalidInputShape, err)
	}
	if hasTrailingData(decoder) {
		return nil, fmt.Errorf("%w: trailing data after the arguments array", abi.ErrInvalidInputShape)
	}

	return args, nil
}

// UnmarshalArgument reads one JSON value keeping the numbers as json.Number
func UnmarshalArgument(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var arg any
	err := decoder.Decode(&arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", abi.ErrInvalidInputShape, err)
	}
	if hasTrailingData(decoder) {
		return nil, fmt.Errorf("%w: trailing data after the JSON value", abi.ErrInvalidInputShape)
	}

	return arg, nil
}

// hasTrailingData reports whether anything besides whitespace follows the value already decoded.
// More alone misses a stray closing bracket.
func hasTrailingData(decoder *json.Decoder) bool {
	if decoder.More() {
		return true
	}

	_, err := decoder.Token()
	return !errors.Is(err, io.EOF)
}

// convertArgument adapts a JSON shaped argument to the value expected by the codec for the provided type.
// Integers can be given as JSON numbers, decimal strings or 0x prefixed hex strings, byte kinds as hex strings.
// Values that do not need a conversion are passed through unchanged so the codec can report them.
func convertArgument(descriptor types.Descriptor, arg any) (any, error) {
	switch desc := descriptor.(type) {
	case *types.Base:
		return convertBase(desc, arg)
	case *types.FixedArray:
		return convertItems(arg, func(_ int) types.Descriptor {
			return desc.Elem()
		})
	case *types.DynamicArray:
		return convertItems(arg, func(_ int) types.Descriptor {
			return desc.Elem()
		})
	case *types.Tuple:
		items, ok := arg.([]any)
		if !ok || len(items) != desc.Len() {
			return arg, nil
		}

		return convertItems(items, desc.Elem)
	default:
		return arg, nil
	}
}

func convertArguments(descriptors []types.Descriptor, args []any) ([]any, error) {
	if len(descriptors) != len(args) {
		return nil, fmt.Errorf("%w: arity mismatch, %d types and %d values", abi.ErrEncoding, len(descriptors), len(args))
	}

	values := make([]any, len(args))
	for i := range args {
		value, err := convertArgument(descriptors[i], args[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		values[i] = value
	}

	return values, nil
}

func convertItems(arg any, elemAt func(index int) types.Descriptor) (any, error) {
	items, ok := arg.([]any)
	if !ok {
		return arg, nil
	}

	converted := make([]any, len(items))
	for i, item := range items {
		value, err := convertArgument(elemAt(i), item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		converted[i] = value
	}

	return converted, nil
}

func convertBase(base *types.Base, arg any) (any, error) {
	switch base.Name() {
	case types.NameUint, types.NameInt:
		return convertInteger(arg)
	case types.NameBytes:
		text, ok := arg.(string)
		if !ok {
			return arg, nil
		}

		decoded, err := hex.DecodeString(trimHexPrefix(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a hex string, got %q", abi.ErrEncoding, base.String(), text)
		}

		return decoded, nil
	default:
		return arg, nil
	}
}

func convertInteger(arg any) (any, error) {
	switch value := arg.(type) {
	case json.Number:
		return parseInteger(value.String())
	case string:
		return parseInteger(value)
	case float64:
		if math.IsInf(value, 0) || math.IsNaN(value) || math.Trunc(value) != value {
			return nil, fmt.Errorf("%w: %v is not an integer", abi.ErrEncoding, value)
		}

		result, _ := big.NewFloat(value).Int(nil)
		return result, nil
	default:
		return arg, nil
	}
}

func parseInteger(text string) (*big.Int, error) {
	digits := strings.TrimPrefix(text, "-")
	negative := len(digits) != len(text)

	base := 10
	if hasHexPrefix(digits) {
		base = 16
		digits = digits[len(hexPrefix):]
	}

	if len(digits) == 0 || digits[0] == '-' || digits[0] == '+' {
		return nil, fmt.Errorf("%w: %q is not an integer", abi.ErrEncoding, text)
	}

	result, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", abi.ErrEncoding, text)
	}
	if negative {
		result.Neg(result)
	}

	return result, nil
}

func hasHexPrefix(text string) bool {
	return len(text) >= len(hexPrefix) && strings.EqualFold(text[:len(hexPrefix)], hexPrefix)
}

func trimHexPrefix(text string) string {
	if hasHexPrefix(text) {
		return text[len(hexPrefix):]
	}

	return text
}

// toJSONValue converts a decoded value into a form that survives JSON serialization: integers become decimal
// strings and byte kinds 0x prefixed hex strings
func toJSONValue(value any) any {
	switch v := value.(type) {
	case *big.Int:
		return v.String()
	case []byte:
		return hexPrefix + hex.EncodeToString(v)
	case []any:
		converted := make([]any, len(v))
		for i := range v {
			converted[i] = toJSONValue(v[i])
		}

		return converted
	case fmt.Stringer:
		return v.String()
	default:
		return value
	}
}
