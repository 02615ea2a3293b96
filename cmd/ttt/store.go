package main

import (
	"os"

	"github.com/rfaulhaber/ttt/cache"
)

// openStore opens the cache database named by the --cache flag or the
// TTT_CACHE environment variable. Returns nil when neither is set.
func openStore(path string) (*cache.Store, error) {
	if path == "" {
		path = os.Getenv("TTT_CACHE")
	}
	if path == "" {
		return nil, nil
	}
	return cache.Open(path)
}
