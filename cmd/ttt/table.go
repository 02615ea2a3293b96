package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/format"
)

func table(args []string) error {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	var outputName, cachePath string
	fs.StringVar(&outputName, "output", "table", "output format: table, json, csv or nuon")
	fs.StringVar(&outputName, "o", "table", "shorthand for --output")
	fs.StringVar(&cachePath, "cache", "", "SQLite cache database path (default $TTT_CACHE)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ttt table [options] <expression>

Print the truth table of a boolean expression. Reads the expression from
stdin when no argument is given.

Examples:
  ttt table "a and b or not c"
  ttt table -o csv "p -> q"
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

	store, err := openStore(cachePath)
	if err != nil {
		return err
	}

	var t *eval.TruthTable
	if store != nil {
		defer store.Close()
		t, err = store.GetOrCompute(e, func() (*eval.TruthTable, error) {
			return eval.Table(e)
		})
		if err == nil {
			_, err = store.RecordRun("table", src, f.String())
		}
	} else {
		t, err = eval.Table(e)
	}
	if err != nil {
		return err
	}

	out, err := format.New(f).TruthTable(t)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
