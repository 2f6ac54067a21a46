// Package main provides the entry point for the persondir CLI tool.
package main

import (
	"github.com/agentstation/persondir/cmd/persondir/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
