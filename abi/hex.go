package abi

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	wordHexLength    = 64
	addressHexLength = 40
)

// IsHexEncoded decides whether a text decode input should be treated as hex encoded bytes. The input, after
// stripping an optional 0x prefix, must be made only of hex characters and its length must be a multiple of either
// 64 or 40 characters.
func IsHexEncoded(value string) bool {
	if value == "" {
		return false
	}

	stripped := removeHexPrefix(value)
	for i := 0; i < len(stripped); i++ {
		if !isHexChar(stripped[i]) {
			return false
		}
	}

	// the 40 characters branch matches 20-byte addresses, not the word layout
	return len(stripped)%wordHexLength == 0 || len(stripped)%addressHexLength == 0
}

// normalizeDecodeInput converts the input accepted by DecodeValue into raw bytes
func normalizeDecodeInput(input any) ([]byte, error) {
	switch data := input.(type) {
	case []byte:
		return data, nil
	case string:
		if !IsHexEncoded(data) {
			return nil, fmt.Errorf("%w, got a string that is not hex encoded", ErrInvalidInputShape)
		}

		decoded, err := hex.DecodeString(removeHexPrefix(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInputShape, err)
		}

		return decoded, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidInputShape, input)
	}
}

func removeHexPrefix(value string) string {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return value[2:]
	}

	return value
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
