// lsrom generates the fixed hardware lookup tables.
//
// Usage:
//
//	lsrom [-f format] [-o dir] table
//
// where table is one of branchcond, opcodeflags, or hexdisplay.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gatecomputer/lsasm/isa"
	"github.com/gatecomputer/lsasm/rom"
	"github.com/gatecomputer/lsasm/romgen"
)

func main() {
	formatName := flag.String("f", "hex", "output format: hex, uint, int, binary")
	outDir := flag.String("o", ".", "output directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-f format] [-o dir] branchcond|opcodeflags|hexdisplay\n", os.Args[0])
		os.Exit(1)
	}

	format, err := rom.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("-f %s: %v", *formatName, err)
	}

	var tables map[string][]uint16
	switch table := flag.Arg(0); table {
	case "branchcond":
		tables = map[string][]uint16{
			"BRANCH_CONDITION.out": romgen.BranchCond(),
		}
	case "opcodeflags":
		tables = map[string][]uint16{
			"OPCODE_FLAGS.out": romgen.OpcodeFlags(isa.Default()),
		}
	case "hexdisplay":
		tables = map[string][]uint16{
			"HEX_4_ASCII.out":       romgen.HexNibble(),
			"HEX_8_ASCII_LOWER.out": romgen.HexByte(false),
			"HEX_8_ASCII_UPPER.out": romgen.HexByte(true),
		}
	default:
		log.Fatalf("unknown table %q", table)
	}

	for name, values := range tables {
		path := filepath.Join(*outDir, name)
		if err := rom.WriteFile(path, values, format); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
