package isa

// Word is one encoded 32-bit instruction. The opcode always occupies
// the lowest-order byte; field placement above it depends on the format:
//
//	R:  DST [8-10], A [12-14], B [16-18]
//	I:  DST [8-10], A [12-14], IMM [16-31]
//	J:  condition [8-11], target register [16-19]
//	JI: condition [8-11], IMM address [16-31]
//
// PRINT variants reuse the A field for data and place an immediate
// position in [16-23] and a constant data byte in [24-31].
type Word uint32

// ExitWord is the all-ones service word that halts the machine.
const ExitWord = Word(0xFFFFFFFF)

const (
	shiftDst  = 8
	shiftCond = 8
	shiftA    = 12
	shiftB    = 16
	shiftImm  = 16
	shiftPos  = 16
	shiftData = 24
)

// MakeReg packs a register-format word.
func MakeReg(op uint8, dst, a, b int) Word {
	return Word(op) |
		Word(dst&0x7)<<shiftDst |
		Word(a&0x7)<<shiftA |
		Word(b&0x7)<<shiftB
}

// MakeImm packs an immediate-format word.
func MakeImm(op uint8, dst, a int, imm uint16) Word {
	return Word(op) |
		Word(dst&0x7)<<shiftDst |
		Word(a&0x7)<<shiftA |
		Word(imm)<<shiftImm
}

// MakeJump packs a branch-to-register word.
func MakeJump(op uint8, cond Cond, reg int) Word {
	return Word(op) |
		Word(cond&0xF)<<shiftCond |
		Word(reg&0xF)<<shiftB
}

// MakeJumpImm packs a branch-to-immediate word.
func MakeJumpImm(op uint8, cond Cond, addr uint16) Word {
	return Word(op) |
		Word(cond&0xF)<<shiftCond |
		Word(addr)<<shiftImm
}

// MakePrintPos packs a print word with register data and immediate
// screen position.
func MakePrintPos(op uint8, dataReg int, pos uint8) Word {
	return Word(op) |
		Word(dataReg&0x7)<<shiftA |
		Word(pos)<<shiftPos
}

// MakePrintConst packs a print word with constant data and a position
// register.
func MakePrintConst(op uint8, data uint8, posReg int) Word {
	return Word(op) |
		Word(posReg&0x7)<<shiftB |
		Word(data)<<shiftData
}

// MakePrintConstImm packs a print word with constant data and immediate
// screen position.
func MakePrintConstImm(op uint8, data uint8, pos uint8) Word {
	return Word(op) |
		Word(pos)<<shiftPos |
		Word(data)<<shiftData
}

// Opcode returns the low byte of the word.
func (w Word) Opcode() uint8 {
	return uint8(w)
}

// High returns the upper half of the word (the ALPHA bank value).
func (w Word) High() uint16 {
	return uint16(w >> 16)
}

// Low returns the lower half of the word (the BETA bank value).
func (w Word) Low() uint16 {
	return uint16(w)
}

// Dst returns the destination register field.
func (w Word) Dst() int {
	return int(w>>shiftDst) & 0x7
}

// A returns the A register field.
func (w Word) A() int {
	return int(w>>shiftA) & 0x7
}

// B returns the B register field.
func (w Word) B() int {
	return int(w>>shiftB) & 0x7
}

// Imm returns the 16-bit immediate field.
func (w Word) Imm() uint16 {
	return uint16(w >> shiftImm)
}

// Cond returns the branch condition field.
func (w Word) Cond() Cond {
	return Cond(w>>shiftCond) & 0xF
}

// PrintPos returns the immediate screen position field.
func (w Word) PrintPos() uint8 {
	return uint8(w >> shiftPos)
}

// PrintData returns the constant data field.
func (w Word) PrintData() uint8 {
	return uint8(w >> shiftData)
}
