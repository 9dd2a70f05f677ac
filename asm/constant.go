package asm

import (
	"strconv"
	"strings"
)

// ParseConstant parses an immediate token. Accepted forms are
// decimal, 0x hexadecimal, 0b binary, and 'c' character literals.
// The value must fit the 16-bit data path.
func ParseConstant(token string) (uint16, error) {
	if token == "" {
		return 0, ErrConstantInvalid
	}
	if len(token) == 3 && token[0] == '\'' && token[2] == '\'' {
		return uint16(token[1]), nil
	}

	var value uint64
	var err error
	switch {
	case strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X"):
		value, err = strconv.ParseUint(token[2:], 16, 64)
	case strings.HasPrefix(token, "0b") || strings.HasPrefix(token, "0B"):
		value, err = strconv.ParseUint(token[2:], 2, 64)
	default:
		value, err = strconv.ParseUint(token, 10, 64)
	}
	if err != nil {
		return 0, ErrConstantInvalid
	}
	if value > 0xFFFF {
		return 0, ErrConstantRange
	}
	return uint16(value), nil
}

// looksNumeric reports whether a token can only be a constant,
// never a label. Used to pick an error when parsing fails.
func looksNumeric(token string) bool {
	if token == "" {
		return false
	}
	c := token[0]
	return c >= '0' && c <= '9' || c == '\''
}
