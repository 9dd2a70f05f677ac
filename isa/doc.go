// Package isa describes the instruction set of the LS gate computer.
//
// The machine executes 32-bit instruction words out of a 256-word
// instruction ROM, with eight 16-bit general purpose registers (X0-X7)
// and a 256-word data memory. The package carries the instruction
// catalogue consumed by the assembler and the decoder, the branch
// condition truth functions, and the bit-level word constructors.
package isa
