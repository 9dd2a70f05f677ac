package isa

import (
	"strconv"
)

// ParseRegister parses a register token ("X0".."X7", case insensitive)
// and returns its index, or -1 if the token is not a register.
func ParseRegister(token string) int {
	if len(token) < 2 {
		return -1
	}
	if token[0] != 'X' && token[0] != 'x' {
		return -1
	}
	reg, err := strconv.Atoi(token[1:])
	if err != nil || reg < 0 || reg >= RegisterCount {
		return -1
	}
	return reg
}
