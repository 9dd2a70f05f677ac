package asm

import (
	"errors"

	"github.com/gatecomputer/lsasm/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrOperandCount    = errors.New(f("wrong operand count"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrConstantInvalid = errors.New(f("constant invalid"))
	ErrConstantRange   = errors.New(f("constant out of range"))

	// Catalogue errors
	ErrMnemonicUnknown = errors.New(f("unknown mnemonic"))
	ErrCatalogueMiss   = errors.New(f("no instruction for operand shape"))

	// Directive errors
	ErrDirectiveSyntax = errors.New(f("#ALIAS syntax"))
	ErrAliasRegister   = errors.New(f("#ALIAS register invalid"))
	ErrAliasName       = errors.New(f("#ALIAS name must be alphanumeric or underscore"))
	ErrAliasReserved   = errors.New(f("#ALIAS name shadows an instruction mnemonic"))
)

// ErrLabelMissing is a branch target that no label defines.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrExpression is a $() expression that failed to evaluate.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// LineError is a per-line diagnostic. A LineError never aborts
// assembly; the offending line is dropped and the run continues.
type LineError struct {
	LineNo int
	Line   string
	Err    error
}

func (err *LineError) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *LineError) Unwrap() error {
	return err.Err
}
