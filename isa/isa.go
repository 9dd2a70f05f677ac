package isa

import (
	"fmt"
)

// Architecture parameters.
const (
	InstructionWidth = 32  // Bits per instruction word.
	RegisterCount    = 8   // General purpose registers X0..X7.
	RegisterWidth    = 16  // Bits per register.
	MemorySize       = 256 // Data memory words.
	MaxProgram       = 256 // Instruction ROM capacity; also the branch address space.
)

// Format is the bit-layout family an instruction belongs to.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FormatR  = Format(0) // R
	FormatI  = Format(1) // I
	FormatJ  = Format(2) // J
	FormatJI = Format(3) // JI
)

// Type is the functional class of an instruction.
type Type int

//go:generate go tool stringer -linecomment -type=Type
const (
	TypeAlu        = Type(0) // alu
	TypeFpu        = Type(1) // fpu
	TypeMove       = Type(2) // move
	TypeCmp        = Type(3) // cmp
	TypeBranch     = Type(4) // branch
	TypeMemory     = Type(5) // memory
	TypePrintReg   = Type(6) // print-reg
	TypePrintConst = Type(7) // print-const
	TypeService    = Type(8) // service
)

// Flags describe how the execution unit treats an opcode.
type Flags uint16

const (
	FlagValid = Flags(1 << iota)
	FlagTryWrite
	FlagTryReadA
	FlagTryReadB
	FlagOverrideB
	FlagOverrideWrite
	FlagImmediate
)

// Has reports whether every bit of f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Entry is one row of the instruction catalogue.
type Entry struct {
	TechName string // Technical name, e.g. "ALU_ADD_I".
	Mnemonic string // Assembly mnemonic, e.g. "ADD".
	Opcode   uint8
	Format   Format
	Type     Type
	Flags    Flags
}

// Decoder ROM word layout. Bits 6-10 are unused.
const (
	decValid         = 1 << 0
	decTypeShift     = 1 // Bits 1-4.
	decImmediate     = 1 << 5
	decOverrideWrite = 1 << 11
	decOverrideB     = 1 << 12
	decTryReadA      = 1 << 13
	decTryReadB      = 1 << 14
	decTryWrite      = 1 << 15
)

// DecodeWord serializes the entry into the 16-bit word the hardware
// instruction decoder ROM holds for its opcode. The Type constants
// are the decoder's type codes.
func (e *Entry) DecodeWord() uint16 {
	word := uint16(decValid) | uint16(e.Type)<<decTypeShift
	if e.Flags.Has(FlagImmediate) {
		word |= decImmediate
	}
	if e.Flags.Has(FlagOverrideWrite) {
		word |= decOverrideWrite
	}
	if e.Flags.Has(FlagOverrideB) {
		word |= decOverrideB
	}
	if e.Flags.Has(FlagTryReadA) {
		word |= decTryReadA
	}
	if e.Flags.Has(FlagTryReadB) {
		word |= decTryReadB
	}
	if e.Flags.Has(FlagTryWrite) {
		word |= decTryWrite
	}
	return word
}

// Spec is the immutable instruction catalogue. Build one with Default()
// and share it read-only between assembler invocations.
type Spec struct {
	Version string
	Entries []Entry

	byOpcode map[uint8]*Entry
	byTech   map[string]*Entry
	byMnem   map[string][]*Entry
}

// The sixteen ALU operation slots. Slots 0x0E and 0x0F are reserved.
var aluNames = []string{
	"AND", "OR", "XOR", "NOT", "ADD", "SUB", "LSL", "LSR",
	"BCDL", "BCDH", "UMUL_L", "UMUL_H", "MUL_L", "MUL_H", "NUL0E", "NUL0F",
}

// Default builds the v2.0 catalogue.
func Default() (spec *Spec) {
	spec = &Spec{Version: "2.0"}

	aluReg := FlagValid | FlagTryWrite | FlagTryReadA | FlagTryReadB
	aluImm := FlagValid | FlagTryWrite | FlagTryReadA | FlagOverrideB | FlagImmediate

	// ALU slots: register format at 0x00+i, immediate format at 0x10+i.
	for i, name := range aluNames {
		spec.add(Entry{"ALU_" + name, name, uint8(0x00 + i), FormatR, TypeAlu, aluReg})
		spec.add(Entry{"ALU_" + name + "_I", name, uint8(0x10 + i), FormatI, TypeAlu, aluImm})
	}

	// FPU slots are reserved but decodable: 0x20+i (R), 0x30+i (I).
	for i := range 16 {
		spec.add(Entry{fmt.Sprintf("FPU_NUL%d", 0x20+i), fmt.Sprintf("FNUL%d", i),
			uint8(0x20 + i), FormatR, TypeFpu, aluReg})
		spec.add(Entry{fmt.Sprintf("FPU_NUL%d_I", 0x30+i), fmt.Sprintf("FNUL%d", i),
			uint8(0x30 + i), FormatI, TypeFpu, aluImm})
	}

	spec.add(Entry{"MOVE", "MOV", 0x40, FormatR, TypeMove,
		FlagValid | FlagTryWrite | FlagTryReadA | FlagTryReadB})
	spec.add(Entry{"MOVE_I", "MOV", 0x41, FormatI, TypeMove,
		FlagValid | FlagTryWrite | FlagTryReadA | FlagOverrideB | FlagOverrideWrite | FlagImmediate})

	spec.add(Entry{"CMP", "CMP", 0x42, FormatR, TypeCmp,
		FlagValid | FlagTryReadA | FlagTryReadB})
	spec.add(Entry{"CMP_I", "CMP", 0x43, FormatI, TypeCmp,
		FlagValid | FlagTryReadA | FlagOverrideB | FlagImmediate})

	spec.add(Entry{"BRANCH", "B", 0x44, FormatJ, TypeBranch,
		FlagValid | FlagTryReadB})
	spec.add(Entry{"BRANCH_I", "B", 0x45, FormatJI, TypeBranch,
		FlagValid | FlagOverrideB | FlagImmediate})

	spec.add(Entry{"READ", "READ", 0x46, FormatR, TypeMemory,
		FlagValid | FlagTryWrite | FlagTryReadB})
	spec.add(Entry{"READ_I", "READ", 0x47, FormatI, TypeMemory,
		FlagValid | FlagTryWrite | FlagOverrideB | FlagImmediate})

	spec.add(Entry{"WRITE", "WRITE", 0x48, FormatR, TypeMemory,
		FlagValid | FlagTryReadA | FlagTryReadB})
	spec.add(Entry{"WRITE_I", "WRITE", 0x49, FormatI, TypeMemory,
		FlagValid | FlagTryReadA | FlagOverrideB | FlagImmediate})

	spec.add(Entry{"PRINT_REG", "PRINT", 0x4A, FormatR, TypePrintReg,
		FlagValid | FlagTryReadA | FlagTryReadB})
	spec.add(Entry{"PRINT_REG_I", "PRINT", 0x4B, FormatI, TypePrintReg,
		FlagValid | FlagTryReadA | FlagOverrideB | FlagImmediate})

	spec.add(Entry{"PRINT_CNS", "PRINT", 0x4C, FormatR, TypePrintConst,
		FlagValid | FlagTryReadB | FlagOverrideWrite})
	spec.add(Entry{"PRINT_CNS_I", "PRINT", 0x4D, FormatI, TypePrintConst,
		FlagValid | FlagOverrideB | FlagOverrideWrite | FlagImmediate})

	spec.add(Entry{"EXIT", "EXIT", 0xFF, FormatR, TypeService, FlagValid})

	spec.index()
	return
}

func (spec *Spec) add(entry Entry) {
	spec.Entries = append(spec.Entries, entry)
}

// index builds the lookup maps. Entries must not grow afterwards,
// since the maps point into the slice.
func (spec *Spec) index() {
	spec.byOpcode = make(map[uint8]*Entry, len(spec.Entries))
	spec.byTech = make(map[string]*Entry, len(spec.Entries))
	spec.byMnem = make(map[string][]*Entry)
	for i := range spec.Entries {
		e := &spec.Entries[i]
		spec.byOpcode[e.Opcode] = e
		spec.byTech[e.TechName] = e
		spec.byMnem[e.Mnemonic] = append(spec.byMnem[e.Mnemonic], e)
	}
}

// ByOpcode returns the catalogue entry for an opcode, or nil.
func (spec *Spec) ByOpcode(op uint8) *Entry {
	return spec.byOpcode[op]
}

// ByTechName returns the catalogue entry with a technical name, or nil.
func (spec *Spec) ByTechName(name string) *Entry {
	return spec.byTech[name]
}

// Lookup selects an entry by mnemonic, type, and immediate-vs-register
// shape. It returns nil when the catalogue has no such entry.
func (spec *Spec) Lookup(mnemonic string, typ Type, immediate bool) *Entry {
	for _, e := range spec.byMnem[mnemonic] {
		if e.Type == typ && e.Flags.Has(FlagImmediate) == immediate {
			return e
		}
	}
	return nil
}

// LookupMnemonic selects the first entry matching mnemonic and shape,
// regardless of type.
func (spec *Spec) LookupMnemonic(mnemonic string, immediate bool) *Entry {
	for _, e := range spec.byMnem[mnemonic] {
		if e.Flags.Has(FlagImmediate) == immediate {
			return e
		}
	}
	return nil
}

// IsAlu reports whether a mnemonic names an ALU operation.
func (spec *Spec) IsAlu(mnemonic string) bool {
	for _, e := range spec.byMnem[mnemonic] {
		if e.Type == TypeAlu {
			return true
		}
	}
	return false
}

// HasMnemonic reports whether a name collides with any instruction
// mnemonic, including the branch condition mnemonics.
func (spec *Spec) HasMnemonic(name string) bool {
	if len(spec.byMnem[name]) > 0 {
		return true
	}
	_, isBranch := CondOf(name)
	return isBranch
}
