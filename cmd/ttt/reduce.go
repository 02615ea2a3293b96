package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rfaulhaber/ttt/format"
	"github.com/rfaulhaber/ttt/qm"
)

func reduce(args []string) error {
	fs := flag.NewFlagSet("reduce", flag.ExitOnError)
	var outputName, cachePath string
	fs.StringVar(&outputName, "output", "table", "output format: table, json, csv or nuon")
	fs.StringVar(&outputName, "o", "table", "shorthand for --output")
	fs.StringVar(&cachePath, "cache", "", "SQLite cache database path (default $TTT_CACHE)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ttt reduce [options] <expression>

Minimize a boolean expression with the Quine-McCluskey method. Reads the
expression from stdin when no argument is given.

Examples:
  ttt reduce "a and b or a and not b"
  ttt reduce -o json "(a or b) and (a or not b)"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := format.ParseFormat(outputName)
	if err != nil {
		return err
	}

	src, err := expressionArg(fs.Args())
	if err != nil {
		return err
	}
	e, err := parseExpr(src)
	if err != nil {
		return err
	}

	result, err := qm.Reduce(e)
	if err != nil {
		return err
	}

	store, err := openStore(cachePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if _, err := store.RecordRun("reduce", src, f.String()); err != nil {
			return err
		}
	}

	out, err := format.New(f).Reduction(result)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
