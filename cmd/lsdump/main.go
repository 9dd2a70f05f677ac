// lsdump assembles a source file and dumps the annotated listing
// for inspection instead of writing ROM images.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/gatecomputer/lsasm/asm"
	"github.com/gatecomputer/lsasm/isa"
)

type listing struct {
	Addr   int
	Word   string
	Op     string
	Format string
	Source string
	Line   int
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] input.ls\n", os.Args[0])
		os.Exit(1)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer file.Close()

	spec := isa.Default()
	a := asm.Assembler{Verbose: *verbose, Spec: spec}
	prog, err := a.Assemble(file)
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}

	dump := make([]listing, 0, len(prog.Instructions))
	for addr, inst := range prog.Instructions {
		op, format := "?", "?"
		if entry := spec.ByOpcode(inst.Word.Opcode()); entry != nil {
			op = entry.TechName
			format = entry.Format.String()
		}
		dump = append(dump, listing{
			Addr:   addr,
			Word:   fmt.Sprintf("%08X", uint32(inst.Word)),
			Op:     op,
			Format: format,
			Source: inst.Source,
			Line:   inst.LineNo,
		})
	}
	pp.Println(dump)

	if len(prog.Issues) > 0 {
		pp.Println(prog.Issues)
	}
}
