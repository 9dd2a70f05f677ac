package asm

import (
	"strings"

	"github.com/gatecomputer/lsasm/isa"
)

// defineLabel records the address of a label. The first definition
// of a name wins; later duplicates are ignored.
func (a *Assembler) defineLabel(name string, addr int) {
	if _, ok := a.Labels[name]; !ok {
		a.Labels[name] = addr
	}
}

// defineAlias parses a "#ALIAS Xn name" directive line and records
// the mapping. Redefining a name replaces the earlier binding.
func (a *Assembler) defineAlias(line string) error {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed[len(aliasDirective):])
	if len(fields) != 2 {
		return ErrDirectiveSyntax
	}
	register, name := fields[0], fields[1]
	if isa.ParseRegister(register) < 0 {
		return ErrAliasRegister
	}
	if !validAliasName(name) {
		return ErrAliasName
	}
	if a.Spec.HasMnemonic(strings.ToUpper(name)) {
		return ErrAliasReserved
	}
	a.Aliases[name] = register
	return nil
}

// resolveAlias maps an aliased operand token back to its register.
// Tokens without a binding pass through unchanged.
func (a *Assembler) resolveAlias(token string) string {
	if register, ok := a.Aliases[token]; ok {
		return register
	}
	return token
}

func validAliasName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
