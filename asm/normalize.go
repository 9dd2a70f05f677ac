package asm

import "strings"

// Stripper removes comments from source lines. Block comments may
// span lines, so the open state is carried from one Strip call to
// the next. Stripping is idempotent.
type Stripper struct {
	inBlock bool
}

// Strip returns line with // and /* */ comments replaced by nothing.
// Text inside an open block comment from a previous line is removed
// until the closing */ is seen.
func (st *Stripper) Strip(line string) string {
	var out strings.Builder
	for i := 0; i < len(line); i++ {
		if st.inBlock {
			if line[i] == '*' && i+1 < len(line) && line[i+1] == '/' {
				st.inBlock = false
				i++
			}
			continue
		}
		if line[i] == '/' && i+1 < len(line) {
			switch line[i+1] {
			case '/':
				return out.String()
			case '*':
				st.inBlock = true
				i++
				continue
			}
		}
		out.WriteByte(line[i])
	}
	return out.String()
}

// Reset closes any open block comment.
func (st *Stripper) Reset() {
	st.inBlock = false
}

// LineKind classifies a stripped source line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineDirective
	LineLabel
	LineInstruction
)

const aliasDirective = "#ALIAS"

// Classify decides what a stripped line is. Directive lines are
// recognized before comment lines so that #ALIAS survives the
// leading-# comment rule.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case strings.HasPrefix(trimmed, aliasDirective):
		return LineDirective
	case trimmed[0] == ';' || trimmed[0] == '#':
		return LineComment
	case isLabel(trimmed):
		return LineLabel
	}
	return LineInstruction
}

func isLabel(trimmed string) bool {
	colon := strings.IndexByte(trimmed, ':')
	if colon < 1 {
		return false
	}
	c := trimmed[0]
	return c == '_' || c == '.' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// labelName extracts the symbol from a label line.
func labelName(line string) string {
	trimmed := strings.TrimSpace(line)
	colon := strings.IndexByte(trimmed, ':')
	return strings.TrimSpace(trimmed[:colon])
}
