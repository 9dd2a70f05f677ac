package asm

import (
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var parenRE = regexp.MustCompile(`\$\([^\$]*\)`)

// expandExprs replaces every $(expr) on a line with the decimal
// value of expr. Labels are in scope as integer variables, so
// $(loop + 1) names the word after loop.
func (a *Assembler) expandExprs(line string) (string, error) {
	if !strings.Contains(line, "$(") {
		return line, nil
	}
	var err error
	out := parenRE.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := a.evalExpr(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	return out, err
}

func (a *Assembler) evalExpr(expr string) (int64, error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	predeclared := starlark.StringDict{}
	for name, addr := range a.Labels {
		predeclared[name] = starlark.MakeInt(addr)
	}
	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		return 0, ErrExpression(expr)
	}
	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		return 0, ErrExpression(expr)
	}
	value, ok := rc.Int64()
	if !ok {
		return 0, ErrExpression(expr)
	}
	return value, nil
}
