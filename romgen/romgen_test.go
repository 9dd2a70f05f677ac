package romgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatecomputer/lsasm/isa"
)

func TestBranchCond(t *testing.T) {
	table := BranchCond()
	require.Len(t, table, 256)

	// Unconditional branch is taken under any flags.
	for nzcv := 0; nzcv < 16; nzcv++ {
		assert.Equal(t, uint16(0xFFFF), table[nzcv<<4])
	}

	// BEQ (cond 1) follows the Z flag, bit 2 of the nibble.
	assert.Equal(t, uint16(0x0000), table[0x01])
	assert.Equal(t, uint16(0xFFFF), table[0x41])

	// Condition 15 is unassigned.
	for nzcv := 0; nzcv < 16; nzcv++ {
		assert.Equal(t, uint16(0x0000), table[nzcv<<4|0xF])
	}

	// Every entry agrees with the condition evaluator.
	for addr, word := range table {
		nzcv := addr >> 4
		taken := isa.Cond(addr&0xF).Taken(
			nzcv&8 != 0, nzcv&4 != 0, nzcv&2 != 0, nzcv&1 != 0)
		if taken {
			assert.Equal(t, uint16(0xFFFF), word, "addr %#02x", addr)
		} else {
			assert.Equal(t, uint16(0x0000), word, "addr %#02x", addr)
		}
	}
}

func TestOpcodeFlags(t *testing.T) {
	spec := isa.Default()
	table := OpcodeFlags(spec)
	require.Len(t, table, 256)

	// ALU register format: valid, type 0, reads A and B, writes.
	assert.Equal(t, uint16(0xE001), table[0x04])

	// ALU immediate format adds the immediate and override-B bits.
	assert.Equal(t, uint16(0xB021), table[0x14])

	// MOVE_I: valid, type 2, immediate, override write and B, reads A, writes.
	assert.Equal(t, uint16(0xB825), table[0x41])

	// An opcode the catalogue does not define decodes to zero.
	assert.Zero(t, table[0x80])

	for addr, word := range table {
		if spec.ByOpcode(uint8(addr)) == nil {
			assert.Zero(t, word, "addr %#02x", addr)
		} else {
			assert.NotZero(t, word&1, "addr %#02x", addr)
		}
	}
}

func TestHexNibble(t *testing.T) {
	table := HexNibble()
	require.Len(t, table, 256)
	assert.Equal(t, uint16('0'), table[0])
	assert.Equal(t, uint16('9'), table[9])
	assert.Equal(t, uint16('A'), table[10])
	assert.Equal(t, uint16('F'), table[15])
	assert.Zero(t, table[16])
	assert.Zero(t, table[255])
}

func TestHexByte(t *testing.T) {
	lower, upper := HexByte(false), HexByte(true)
	require.Len(t, lower, 256)

	assert.Equal(t, uint16('a')<<8|uint16('b'), lower[0xAB])
	assert.Equal(t, uint16('A')<<8|uint16('B'), upper[0xAB])
	assert.Equal(t, uint16('0')<<8|uint16('0'), lower[0x00])
	assert.Equal(t, uint16('f')<<8|uint16('f'), lower[0xFF])
	assert.Equal(t, uint16('1')<<8|uint16('e'), lower[0x1E])
}
