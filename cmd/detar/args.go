package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/moycat/detar"
)

type algorithmArg struct {
	value detar.Algorithm
}

func (arg *algorithmArg) String() string {
	return arg.value.String()
}

func (arg *algorithmArg) Set(s string) error {
	switch strings.ToLower(s) {
	case "":
		arg.value = detar.NoAlgorithm
	case "gzip":
		arg.value = detar.GzipAlgorithm
	case "lz4":
		arg.value = detar.LZ4Algorithm
	default:
		return fmt.Errorf("unknown algorithm '%s'", s)
	}
	return nil
}

func parseArgs() *command {
	c := &command{
		algorithm: algorithmArg{value: detar.NoAlgorithm},
	}
	set := flag.NewFlagSet("detar", flag.ExitOnError)
	set.Var(&c.algorithm, "c", "optional, compression algorithm (gzip or lz4)")
	set.BoolVar(&c.binary, "b", false, "optional, allow binary entry contents")
	set.BoolVar(&c.verify, "k", false, "optional, verify header checksums")
	_ = set.Parse(os.Args[1:])
	reportAndExit := func(errMsg string) {
		fmt.Println(errMsg)
		fmt.Println()
		set.Usage()
		os.Exit(2)
	}
	// Parse the operation.
	args := set.Args()
	switch len(args) {
	case 0:
		reportAndExit("Operation is missing: l/list or x/cat")
	case 1:
		reportAndExit("Archive file name is missing.")
	}
	c.archivePath = args[1]
	switch op := strings.ToLower(args[0]); op {
	case "l", "list":
		if len(args) > 2 {
			reportAndExit("Too many arguments for listing.")
		}
		c.operation = "list"
	case "x", "cat":
		if len(args) != 3 {
			reportAndExit("Entry name is missing for cat.")
		}
		c.operation = "cat"
		c.entryName = args[2]
	default:
		reportAndExit(fmt.Sprintf("Unknown operation %s\nSupported operations: l/list or x/cat", op))
	}
	return c
}
