package asm

import (
	"bufio"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/gatecomputer/lsasm/isa"
)

// Assembler turns ls assembly text into machine words in two passes.
// Pass one walks the source collecting labels and register aliases;
// pass two encodes every instruction line against the catalogue.
type Assembler struct {
	// Verbose enables progress logging.
	Verbose bool

	// Spec is the instruction catalogue. isa.Default() when nil.
	Spec *isa.Spec

	// Labels maps label names to instruction addresses (pass one).
	Labels map[string]int

	// Aliases maps alias names to register tokens (pass one).
	Aliases map[string]string
}

// Assemble reads a whole source stream and assembles it. Lines that
// fail to assemble become Issues on the returned Program; only a
// read error on input aborts the run.
func (a *Assembler) Assemble(input io.Reader) (*Program, error) {
	if a.Spec == nil {
		a.Spec = isa.Default()
	}

	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	prog := &Program{}
	a.resolve(lines, prog)
	a.encode(lines, prog)

	if a.Verbose {
		log.Printf("%v", f("%d labels, %d aliases, %d instructions",
			len(a.Labels), len(a.Aliases), len(prog.Instructions)))
	}
	return prog, nil
}

// resolve is pass one. The program counter advances only on
// instruction lines, so labels name the address of the next
// instruction below them. The walk stops at capacity; a label past
// the last addressable word stays undefined, and pass two rejects
// any branch to it.
func (a *Assembler) resolve(lines []string, prog *Program) {
	a.Labels = make(map[string]int)
	a.Aliases = make(map[string]string)

	var st Stripper
	pc := 0
	for n, raw := range lines {
		if pc >= isa.MaxProgram {
			break
		}
		line := st.Strip(raw)
		switch Classify(line) {
		case LineBlank, LineComment:
		case LineDirective:
			if err := a.defineAlias(line); err != nil {
				a.report(prog, n+1, line, err)
			}
		case LineLabel:
			a.defineLabel(labelName(line), pc)
		case LineInstruction:
			pc++
		}
	}
}

// encode is pass two. Instruction lines past the memory size are
// still parsed but their words are dropped; the cap is not an error.
func (a *Assembler) encode(lines []string, prog *Program) {
	var st Stripper
	dropped := 0
	for n, raw := range lines {
		line := st.Strip(raw)
		if Classify(line) != LineInstruction {
			continue
		}
		word, err := a.encodeLine(line, len(prog.Instructions))
		if len(prog.Instructions) >= isa.MaxProgram {
			dropped++
			continue
		}
		if err != nil {
			a.report(prog, n+1, line, err)
			continue
		}
		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: n + 1,
			Source: strings.TrimSpace(line),
			Word:   word,
		})
	}
	if dropped > 0 && a.Verbose {
		log.Printf("%v", f("%d instructions past capacity dropped", dropped))
	}
}

func (a *Assembler) report(prog *Program, lineno int, line string, err error) {
	le := &LineError{LineNo: lineno, Line: strings.TrimSpace(line), Err: err}
	prog.Issues = append(prog.Issues, le)
	log.Printf("%v", f("warning: %v", le))
}

// lookup selects a catalogue entry by shape, failing the line when
// the catalogue has none.
func (a *Assembler) lookup(mnemonic string, typ isa.Type, immediate bool) (*isa.Entry, error) {
	entry := a.Spec.Lookup(mnemonic, typ, immediate)
	if entry == nil {
		return nil, ErrCatalogueMiss
	}
	return entry, nil
}

// encodeLine assembles one instruction line. index is the address
// the word will occupy, which LR encodes as its immediate.
func (a *Assembler) encodeLine(line string, index int) (isa.Word, error) {
	line, err := a.expandExprs(line)
	if err != nil {
		return 0, err
	}

	mnemonic, tokens := splitOperands(line)
	mnemonic = strings.ToUpper(mnemonic)
	for i, token := range tokens {
		tokens[i] = a.resolveAlias(token)
	}

	if _, ok := isa.CondOf(mnemonic); ok {
		return a.encodeBranch(mnemonic, tokens)
	}
	switch mnemonic {
	case "LR":
		return a.encodeLoadIndex(tokens, index)
	case "EXIT":
		if len(tokens) != 0 {
			return 0, ErrOperandCount
		}
		return isa.ExitWord, nil
	case "NOT":
		return a.encodeNot(tokens)
	case "MOV":
		return a.encodeMove(tokens)
	case "CMP":
		return a.encodeCompare(tokens)
	case "READ":
		return a.encodeRead(tokens)
	case "WRITE":
		return a.encodeWrite(tokens)
	case "PRINT":
		return a.encodePrint(tokens)
	}
	if a.Spec.IsAlu(mnemonic) {
		return a.encodeAlu(mnemonic, tokens)
	}
	return 0, ErrMnemonicUnknown
}

// encodeAlu handles both the three-operand form and the two-operand
// shorthand, where the destination doubles as the first source.
func (a *Assembler) encodeAlu(mnemonic string, tokens []string) (isa.Word, error) {
	var dst, src1 int
	var last string
	switch len(tokens) {
	case 3:
		dst = isa.ParseRegister(tokens[0])
		src1 = isa.ParseRegister(tokens[1])
		last = tokens[2]
	case 2:
		dst = isa.ParseRegister(tokens[0])
		src1 = dst
		last = tokens[1]
	default:
		return 0, ErrOperandCount
	}
	if dst < 0 || src1 < 0 {
		return 0, ErrRegisterInvalid
	}

	if src2 := isa.ParseRegister(last); src2 >= 0 {
		entry, err := a.lookup(mnemonic, isa.TypeAlu, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, dst, src1, src2), nil
	}
	imm, err := ParseConstant(last)
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup(mnemonic, isa.TypeAlu, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, dst, src1, imm), nil
}

// encodeNot is the one-operand bit inversion, NOT Xd.
func (a *Assembler) encodeNot(tokens []string) (isa.Word, error) {
	if len(tokens) != 1 {
		return 0, ErrOperandCount
	}
	dst := isa.ParseRegister(tokens[0])
	if dst < 0 {
		return 0, ErrRegisterInvalid
	}
	entry, err := a.lookup("NOT", isa.TypeAlu, false)
	if err != nil {
		return 0, err
	}
	return isa.MakeReg(entry.Opcode, dst, 0, 0), nil
}

func (a *Assembler) encodeMove(tokens []string) (isa.Word, error) {
	if len(tokens) != 2 {
		return 0, ErrOperandCount
	}
	dst := isa.ParseRegister(tokens[0])
	if dst < 0 {
		return 0, ErrRegisterInvalid
	}
	if src := isa.ParseRegister(tokens[1]); src >= 0 {
		entry, err := a.lookup("MOV", isa.TypeMove, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, dst, src, 0), nil
	}
	imm, err := ParseConstant(tokens[1])
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup("MOV", isa.TypeMove, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, dst, 0, imm), nil
}

func (a *Assembler) encodeCompare(tokens []string) (isa.Word, error) {
	if len(tokens) != 2 {
		return 0, ErrOperandCount
	}
	srcA := isa.ParseRegister(tokens[0])
	if srcA < 0 {
		return 0, ErrRegisterInvalid
	}
	if srcB := isa.ParseRegister(tokens[1]); srcB >= 0 {
		entry, err := a.lookup("CMP", isa.TypeCmp, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, 0, srcA, srcB), nil
	}
	imm, err := ParseConstant(tokens[1])
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup("CMP", isa.TypeCmp, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, 0, srcA, imm), nil
}

// encodeBranch classifies its single operand as a register, a
// numeric address, or a label, in that order.
func (a *Assembler) encodeBranch(mnemonic string, tokens []string) (isa.Word, error) {
	if len(tokens) != 1 {
		return 0, ErrOperandCount
	}
	cond, _ := isa.CondOf(mnemonic)
	target := tokens[0]

	if reg := isa.ParseRegister(target); reg >= 0 {
		entry, err := a.lookup("B", isa.TypeBranch, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeJump(entry.Opcode, cond, reg), nil
	}

	var addr uint16
	if looksNumeric(target) {
		value, err := ParseConstant(target)
		if err != nil {
			return 0, err
		}
		addr = value
	} else {
		value, ok := a.Labels[target]
		if !ok {
			return 0, ErrLabelMissing(target)
		}
		addr = uint16(value)
	}
	entry, err := a.lookup("B", isa.TypeBranch, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeJumpImm(entry.Opcode, cond, addr), nil
}

func (a *Assembler) encodeRead(tokens []string) (isa.Word, error) {
	if len(tokens) != 2 {
		return 0, ErrOperandCount
	}
	dst := isa.ParseRegister(tokens[0])
	if dst < 0 {
		return 0, ErrRegisterInvalid
	}
	if addrReg := isa.ParseRegister(tokens[1]); addrReg >= 0 {
		entry, err := a.lookup("READ", isa.TypeMemory, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, dst, 0, addrReg), nil
	}
	addr, err := ParseConstant(tokens[1])
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup("READ", isa.TypeMemory, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, dst, 0, addr), nil
}

func (a *Assembler) encodeWrite(tokens []string) (isa.Word, error) {
	if len(tokens) != 2 {
		return 0, ErrOperandCount
	}
	data := isa.ParseRegister(tokens[0])
	if data < 0 {
		return 0, ErrRegisterInvalid
	}
	if addrReg := isa.ParseRegister(tokens[1]); addrReg >= 0 {
		entry, err := a.lookup("WRITE", isa.TypeMemory, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, 0, data, addrReg), nil
	}
	addr, err := ParseConstant(tokens[1])
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup("WRITE", isa.TypeMemory, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, 0, data, addr), nil
}

// encodePrint has four shapes depending on whether the display
// position and the character come from registers or constants.
// Constants in either role must fit eight bits.
func (a *Assembler) encodePrint(tokens []string) (isa.Word, error) {
	if len(tokens) != 2 {
		return 0, ErrOperandCount
	}
	posReg := isa.ParseRegister(tokens[0])
	dataReg := isa.ParseRegister(tokens[1])

	switch {
	case posReg >= 0 && dataReg >= 0:
		entry, err := a.lookup("PRINT", isa.TypePrintReg, false)
		if err != nil {
			return 0, err
		}
		return isa.MakeReg(entry.Opcode, 0, dataReg, posReg), nil

	case posReg < 0 && dataReg >= 0:
		pos, err := parseByte(tokens[0])
		if err != nil {
			return 0, err
		}
		entry, err := a.lookup("PRINT", isa.TypePrintReg, true)
		if err != nil {
			return 0, err
		}
		return isa.MakePrintPos(entry.Opcode, dataReg, pos), nil

	case posReg >= 0:
		data, err := parseByte(tokens[1])
		if err != nil {
			return 0, err
		}
		entry, err := a.lookup("PRINT", isa.TypePrintConst, false)
		if err != nil {
			return 0, err
		}
		return isa.MakePrintConst(entry.Opcode, data, posReg), nil
	}

	pos, err := parseByte(tokens[0])
	if err != nil {
		return 0, err
	}
	data, err := parseByte(tokens[1])
	if err != nil {
		return 0, err
	}
	entry, err := a.lookup("PRINT", isa.TypePrintConst, true)
	if err != nil {
		return 0, err
	}
	return isa.MakePrintConstImm(entry.Opcode, data, pos), nil
}

// encodeLoadIndex is the LR pseudo-instruction: a move of the
// address of the word it assembles into.
func (a *Assembler) encodeLoadIndex(tokens []string, index int) (isa.Word, error) {
	if len(tokens) != 1 {
		return 0, ErrOperandCount
	}
	dst := isa.ParseRegister(tokens[0])
	if dst < 0 {
		return 0, ErrRegisterInvalid
	}
	entry, err := a.lookup("MOV", isa.TypeMove, true)
	if err != nil {
		return 0, err
	}
	return isa.MakeImm(entry.Opcode, dst, 0, uint16(index)), nil
}

func parseByte(token string) (uint8, error) {
	value, err := ParseConstant(token)
	if err != nil {
		return 0, err
	}
	if value > 0xFF {
		return 0, ErrConstantRange
	}
	return uint8(value), nil
}

// splitOperands breaks a line into its mnemonic and operand tokens.
// Commas and whitespace both separate operands.
func splitOperands(line string) (string, []string) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
