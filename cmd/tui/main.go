// Package main provides the PlayTrack terminal client.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/playtrackapp/playtrack-server/internal/tui"
)

func main() {
	server := flag.String("server", "", "PlayTrack server URL (default: http://localhost:4000)")
	flag.Parse()

	url := *server
	if url == "" {
		url = os.Getenv("PLAYTRACK_SERVER")
	}
	if url == "" {
		url = "http://localhost:4000"
	}

	if err := tui.Run(tui.Options{ServerURL: url}); err != nil {
		fmt.Fprintf(os.Stderr, "playtrack: %v\n", err)
		os.Exit(1)
	}
}
