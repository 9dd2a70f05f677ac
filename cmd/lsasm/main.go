// lsasm assembles ls assembly source into the split ALPHA and BETA
// instruction ROM images the gate computer loads.
//
// Usage:
//
//	lsasm [-f format] [-v] input.ls output-base
//
// writes output-base_ALPHA.out and output-base_BETA.out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gatecomputer/lsasm/asm"
	"github.com/gatecomputer/lsasm/rom"
)

func main() {
	formatName := flag.String("f", "hex", "output format: hex, uint, int, binary")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-f format] [-v] input.ls output-base\n", os.Args[0])
		os.Exit(1)
	}
	input, base := flag.Arg(0), flag.Arg(1)

	format, err := rom.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("-f %s: %v", *formatName, err)
	}

	file, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer file.Close()

	a := asm.Assembler{Verbose: *verbose}
	prog, err := a.Assemble(file)
	if err != nil {
		log.Fatalf("%s: %v", input, err)
	}

	if err := rom.WriteFile(base+"_ALPHA.out", prog.Alpha(), format); err != nil {
		log.Fatalf("%v", err)
	}
	if err := rom.WriteFile(base+"_BETA.out", prog.Beta(), format); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("Compiled %d instructions\n", len(prog.Instructions))
	if len(prog.Issues) > 0 {
		fmt.Printf("%d lines failed\n", len(prog.Issues))
	}
}
