// Package romgen builds the fixed lookup tables the gate computer
// hardware loads at design time: the branch condition truth table,
// the instruction decoder flags, and the hex display glyph maps.
// Every table is 256 words of 16 bits.
package romgen

import "github.com/gatecomputer/lsasm/isa"

const tableSize = 256

// BranchCond evaluates every flag and condition combination. The
// address is NZCV in bits 7-4 and the condition code in bits 3-0;
// the word is all ones when the branch is taken, all zeros when not.
func BranchCond() []uint16 {
	table := make([]uint16, tableSize)
	for addr := range table {
		nzcv := addr >> 4 & 0xF
		n := nzcv>>3&1 == 1
		z := nzcv>>2&1 == 1
		c := nzcv>>1&1 == 1
		v := nzcv&1 == 1

		cond := isa.Cond(addr & 0xF)
		if cond.Taken(n, z, c, v) {
			table[addr] = 0xFFFF
		}
	}
	return table
}

// OpcodeFlags builds the instruction decoder table, indexed by
// opcode. Opcodes outside the catalogue decode to zero, which the
// hardware treats as invalid.
func OpcodeFlags(spec *isa.Spec) []uint16 {
	table := make([]uint16, tableSize)
	for addr := range table {
		if entry := spec.ByOpcode(uint8(addr)); entry != nil {
			table[addr] = entry.DecodeWord()
		}
	}
	return table
}

// HexNibble maps a 4-bit value to its upper-case ASCII hex digit.
// Addresses past 15 map to zero.
func HexNibble() []uint16 {
	table := make([]uint16, tableSize)
	for i := range 16 {
		table[i] = uint16(hexDigit(uint8(i), true))
	}
	return table
}

// HexByte maps a byte to the two ASCII digits of its hex form,
// upper nibble in the high byte.
func HexByte(upper bool) []uint16 {
	table := make([]uint16, tableSize)
	for addr := range table {
		hi := hexDigit(uint8(addr>>4&0xF), upper)
		lo := hexDigit(uint8(addr&0xF), upper)
		table[addr] = uint16(hi)<<8 | uint16(lo)
	}
	return table
}

func hexDigit(nibble uint8, upper bool) uint8 {
	if nibble < 10 {
		return '0' + nibble
	}
	if upper {
		return 'A' + nibble - 10
	}
	return 'a' + nibble - 10
}
