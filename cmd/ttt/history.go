package main

import (
	"flag"
	"fmt"
	"os"
)

func history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	var cachePath string
	var limit int
	fs.StringVar(&cachePath, "cache", "", "SQLite cache database path (default $TTT_CACHE)")
	fs.IntVar(&limit, "n", 10, "number of runs to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ttt history [options]

Show recent runs recorded in the cache database.

Examples:
  ttt history --cache ttt.db
  TTT_CACHE=ttt.db ttt history -n 25
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(cachePath)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("no cache database configured (use --cache or TTT_CACHE)")
	}
	defer store.Close()

	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %-7s %-6s %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Command, r.Format, r.Expression)
	}
	return nil
}
