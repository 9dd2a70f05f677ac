package asm

import (
	"iter"

	"github.com/gatecomputer/lsasm/isa"
)

// Instruction is one assembled word and where it came from.
type Instruction struct {
	LineNo int
	Source string
	Word   isa.Word
}

// Program is the result of an assembly run. Lines that failed to
// assemble are collected in Issues; the surviving instructions are
// packed contiguously from address zero.
type Program struct {
	Instructions []Instruction
	Issues       []*LineError
}

// Words iterates the assembled words in address order.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(int, isa.Word) bool) {
		for addr, inst := range prog.Instructions {
			if !yield(addr, inst.Word) {
				return
			}
		}
	}
}

// Alpha returns the ALPHA bank, the high 16 bits of every word,
// zero padded to the full memory size.
func (prog *Program) Alpha() []uint16 {
	bank := make([]uint16, isa.MemorySize)
	for addr, word := range prog.Words() {
		bank[addr] = word.High()
	}
	return bank
}

// Beta returns the BETA bank, the low 16 bits of every word,
// zero padded to the full memory size.
func (prog *Program) Beta() []uint16 {
	bank := make([]uint16, isa.MemorySize)
	for addr, word := range prog.Words() {
		bank[addr] = word.Low()
	}
	return bank
}
