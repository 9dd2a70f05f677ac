// Package rom writes 16-bit memory images as text, one value per
// line, in the formats the logic simulator imports.
package rom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gatecomputer/lsasm/translate"
)

var f = translate.From

var ErrFormatUnknown = errors.New(f("unknown rom format"))

// Format selects the textual encoding of each 16-bit value.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	Hex    = Format(0) // hex
	Uint   = Format(1) // uint
	Int    = Format(2) // int
	Binary = Format(3) // binary
)

// ParseFormat maps a format name from the command line.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "hex":
		return Hex, nil
	case "uint":
		return Uint, nil
	case "int":
		return Int, nil
	case "binary":
		return Binary, nil
	}
	return 0, ErrFormatUnknown
}

// Write emits one value per line. Hex is four upper-case digits,
// int reinterprets each value as a signed 16-bit quantity, and
// binary is sixteen ASCII bits, most significant first.
func Write(w io.Writer, values []uint16, format Format) error {
	bw := bufio.NewWriter(w)
	for _, value := range values {
		var err error
		switch format {
		case Hex:
			_, err = fmt.Fprintf(bw, "%04X\n", value)
		case Uint:
			_, err = fmt.Fprintf(bw, "%d\n", value)
		case Int:
			_, err = fmt.Fprintf(bw, "%d\n", int16(value))
		case Binary:
			_, err = fmt.Fprintf(bw, "%016b\n", value)
		default:
			err = ErrFormatUnknown
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a memory image to path, creating parent
// directories as needed.
func WriteFile(path string, values []uint16, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, values, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
