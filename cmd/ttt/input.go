package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// expressionArg returns the expression text for a one-expression command:
// the positional arguments joined, or a line read from stdin when there are
// none.
func expressionArg(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	lines, err := readLines(1)
	if err != nil {
		return "", err
	}
	return lines[0], nil
}

// expressionPair returns the two expressions for eq: exactly two positional
// arguments, or two stdin lines when there are none.
func expressionPair(args []string) (string, string, error) {
	switch len(args) {
	case 0:
		lines, err := readLines(2)
		if err != nil {
			return "", "", err
		}
		return lines[0], lines[1], nil
	case 2:
		return args[0], args[1], nil
	}
	return "", "", fmt.Errorf("expected two expressions, got %d", len(args))
}

// readLines collects n non-blank lines from stdin.
func readLines(n int) ([]string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	lines := make([]string, 0, n)
	for len(lines) < n && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(lines) < n {
		return nil, fmt.Errorf("expected %d expression(s) on stdin, got %d", n, len(lines))
	}
	return lines, nil
}
