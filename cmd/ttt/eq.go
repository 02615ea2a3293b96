package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/format"
)

func eq(args []string) error {
	fs := flag.NewFlagSet("eq", flag.ExitOnError)
	var outputName, cachePath string
	fs.StringVar(&outputName, "output", "table", "output format: table, json, csv or nuon")
	fs.StringVar(&outputName, "o", "table", "shorthand for --output")
	fs.StringVar(&cachePath, "cache", "", "SQLite cache database path (default $TTT_CACHE)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ttt eq [options] <left> <right>

Check whether two boolean expressions are equivalent, listing the
assignments where they differ. Reads two lines from stdin when no
arguments are given.

Examples:
  ttt eq "a -> b" "not a or b"
  ttt eq -o json "a xor b" "a or b"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := format.ParseFormat(outputName)
	if err != nil {
		return err
	}

	leftSrc, rightSrc, err := expressionPair(fs.Args())
	if err != nil {
		return err
	}
	left, err := parseExpr(leftSrc)
	if err != nil {
		return fmt.Errorf("left expression: %w", err)
	}
	right, err := parseExpr(rightSrc)
	if err != nil {
		return fmt.Errorf("right expression: %w", err)
	}

	result, err := eval.CheckEquivalence(left, right)
	if err != nil {
		return err
	}

	store, err := openStore(cachePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if _, err := store.RecordRun("eq", leftSrc+" ; "+rightSrc, f.String()); err != nil {
			return err
		}
	}

	out, err := format.New(f).Equivalence(result, leftSrc, rightSrc)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
