package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// HexStringToBytes converts a hex string to a byte slice. Spaces, colons and 0x prefixes are ignored
// so "7F 27 35", "0x7F 0x27 0x35" and "7F2735" are all accepted.
func HexStringToBytes(s string) ([]byte, error) {
	s = strings.NewReplacer("0x", "", "0X", "", " ", "", ":", "").Replace(s)

	// Ensure the string has an even length
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hex string has an odd length: %v", s)
	}

	data := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		byteVal, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing hex byte at position %d: %w", i, err)
		}
		data[i/2] = byte(byteVal)
	}

	return data, nil
}

// ParseByte reads a single hex byte, with or without a 0x prefix ("0x27", "27").
func ParseByte(s string) (byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("parsing byte %q: %w", s, err)
	}
	return byte(v), nil
}

// ParseCANID reads an 11-bit identifier in hex ("7E8", "0x7E8").
func ParseCANID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("parsing can id %q: %w", s, err)
	}
	if v > 0x7FF {
		return 0, fmt.Errorf("can id 0x%X is not an 11-bit identifier", v)
	}
	return uint16(v), nil
}
