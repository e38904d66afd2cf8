// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfind search server and its interactive REPL.

wordfind answers "which words complete or approximate this query" against a
newline-delimited word list. Prefix matches come from a trie; when they run
short, close spellings found by Levenshtein distance fill the remaining
slots. Queries prefixed for fuzzy mode skip the trie entirely.

The word list is read once, lazily, on the first query and kept for the
life of the process. A missing or unreadable list leaves an empty
dictionary: every query then returns no matches instead of failing.

# Usage

Serve JSON over HTTP:

	wordfind http --addr :8080 --words data/wordlist.txt

Serve msgpack over stdin/stdout for editor integrations:

	wordfind ipc -d

Try queries interactively:

	wordfind repl --limit 5

# Configuration

Runtime configuration lives in a TOML file, created with defaults when
missing:

	[server]
	max_limit = 100
	default_limit = 10
	max_query_len = 60
	http_addr = ":8080"

	[search]
	default_max_distance = 2
	supplement_min_length = 3
	supplement_max_distance = 1
	index = "node"

	[dict]
	path = "data/wordlist.txt"

The file is watched while a server runs; [server] limits apply to the next
request after a save.

# HTTP

	GET /api/words/search?query=ca&limit=10&fuzzy=false&maxDistance=2
	GET /health
	GET /metrics

# IPC

See package server for the msgpack message shapes.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordfind"
	gh      = "https://github.com/bastiangx/wordfind"
)

// sigHandler returns a context cancelled on SIGINT or SIGTERM so servers can
// shut down cleanly.
func sigHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(c)
		select {
		case <-c:
			fmt.Fprintf(os.Stderr, "\nExiting...\n")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func main() {
	ctx, cancel := sigHandler()
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		cancel()
		os.Exit(1)
	}
}
