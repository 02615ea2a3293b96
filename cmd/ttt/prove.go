package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/zk"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	var set, cachePath string
	fs.StringVar(&set, "set", "", "variable assignment, e.g. a=T,b=F")
	fs.StringVar(&cachePath, "cache", "", "SQLite cache database path (default $TTT_CACHE)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ttt prove --set <assignment> <expression>

Generate and verify a Groth16 proof that the given assignment evaluates
the expression to its public output, without revealing the assignment.

Examples:
  ttt prove --set a=T,b=F "a xor b"
  ttt prove --set p=T,q=T "p -> q"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	assignment, err := parseAssignment(set)
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

	prover := zk.NewProver()
	proof, err := prover.Prove(e, assignment)
	if err != nil {
		return err
	}
	if err := prover.Verify(proof); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	store, err := openStore(cachePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if _, err := store.RecordRun("prove", src, "table"); err != nil {
			return err
		}
	}

	fmt.Printf("Expression: %s\n", proof.Expression)
	fmt.Printf("Public output: %s\n", boolWord(proof.Output))
	fmt.Printf("Constraints: %d\n", proof.Constraints)
	fmt.Println("✓ Proof verified")
	return nil
}

// parseAssignment parses "a=T,b=F" style variable bindings.
func parseAssignment(s string) (eval.Assignment, error) {
	assignment := make(eval.Assignment)
	if s == "" {
		return assignment, nil
	}
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("bad assignment %q (want name=T or name=F)", part)
		}
		name = strings.TrimSpace(name)
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "t", "true", "1":
			assignment[name] = true
		case "f", "false", "0":
			assignment[name] = false
		default:
			return nil, fmt.Errorf("bad value %q for %s (want T or F)", value, name)
		}
	}
	return assignment, nil
}

func boolWord(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
