package isa

// Cond is a branch condition code, evaluated against the NZCV flags.
type Cond uint8

const (
	CondAlways = Cond(0)  // B
	CondEQ     = Cond(1)  // BEQ (Z set)
	CondNE     = Cond(2)  // BNE (Z clear)
	CondLT     = Cond(3)  // BLT (N != V, signed less than)
	CondLE     = Cond(4)  // BLE (Z set or N != V)
	CondGT     = Cond(5)  // BGT (Z clear and N == V)
	CondGE     = Cond(6)  // BGE (N == V)
	CondCS     = Cond(7)  // BCS (C set, unsigned >=)
	CondCC     = Cond(8)  // BCC (C clear, unsigned <)
	CondMI     = Cond(9)  // BMI (N set)
	CondPL     = Cond(10) // BPL (N clear)
	CondVS     = Cond(11) // BVS (V set)
	CondVC     = Cond(12) // BVC (V clear)
	CondHI     = Cond(13) // BHI (C set and Z clear, unsigned higher)
	CondLS     = Cond(14) // BLS (C clear or Z set, unsigned lower or same)
)

// Branch describes one branch condition mnemonic.
type Branch struct {
	Mnemonic string
	Code     Cond
	Name     string
}

// Branches lists every branch mnemonic in condition-code order.
var Branches = []Branch{
	{"B", CondAlways, "Unconditional"},
	{"BEQ", CondEQ, "Equal"},
	{"BNE", CondNE, "Not Equal"},
	{"BLT", CondLT, "Less Than"},
	{"BLE", CondLE, "Less or Equal"},
	{"BGT", CondGT, "Greater Than"},
	{"BGE", CondGE, "Greater or Equal"},
	{"BCS", CondCS, "Carry Set"},
	{"BCC", CondCC, "Carry Clear"},
	{"BMI", CondMI, "Minus"},
	{"BPL", CondPL, "Plus"},
	{"BVS", CondVS, "Overflow Set"},
	{"BVC", CondVC, "Overflow Clear"},
	{"BHI", CondHI, "Higher"},
	{"BLS", CondLS, "Lower or Same"},
}

var condByMnemonic = func() map[string]Cond {
	m := make(map[string]Cond, len(Branches))
	for _, b := range Branches {
		m[b.Mnemonic] = b.Code
	}
	return m
}()

// CondOf maps a branch mnemonic to its condition code.
func CondOf(mnemonic string) (cond Cond, ok bool) {
	cond, ok = condByMnemonic[mnemonic]
	return
}

// Taken evaluates a condition code against the NZCV flags. Unassigned
// codes never branch.
func (c Cond) Taken(n, z, carry, overflow bool) bool {
	switch c {
	case CondAlways:
		return true
	case CondEQ:
		return z
	case CondNE:
		return !z
	case CondLT:
		return n != overflow
	case CondLE:
		return z || n != overflow
	case CondGT:
		return !z && n == overflow
	case CondGE:
		return n == overflow
	case CondCS:
		return carry
	case CondCC:
		return !carry
	case CondMI:
		return n
	case CondPL:
		return !n
	case CondVS:
		return overflow
	case CondVC:
		return !overflow
	case CondHI:
		return carry && !z
	case CondLS:
		return !carry || z
	}
	return false
}
