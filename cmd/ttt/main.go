package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "table":
		if err := table(args); err != nil {
			fail(err)
		}
	case "eq":
		if err := eq(args); err != nil {
			fail(err)
		}
	case "reduce":
		if err := reduce(args); err != nil {
			fail(err)
		}
	case "prove":
		if err := prove(args); err != nil {
			fail(err)
		}
	case "history":
		if err := history(args); err != nil {
			fail(err)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("ttt version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`ttt - truth table tool for boolean expressions

Usage:
  ttt <command> [options] [expression]

Commands:
  table      Print the truth table of an expression
  eq         Check whether two expressions are equivalent
  reduce     Minimize an expression (Quine-McCluskey)
  prove      Prove knowledge of a satisfying assignment (zero-knowledge)
  history    Show recent runs from the cache database
  help       Show this help message
  version    Show version information

Expressions use 'and', 'or', 'not', 'xor', '->' and parentheses; the symbols
∧ ∨ ¬ ⊕ → && || ! are accepted too. With no expression arguments, input is
read from stdin (eq reads two lines).

Examples:
  ttt table "a and b or not c"
  ttt eq "a -> b" "not a or b"
  ttt reduce -o json "a and b or a and not b"
  ttt prove --set a=T,b=F "a xor b"

Caching:
  --cache <path> (or TTT_CACHE) enables a SQLite database that memoizes
  truth tables and records run history.

For command-specific help, run:
  ttt <command> --help`)
}
