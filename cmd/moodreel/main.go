// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package main is the moodreel command line tool.
//
// moodreel ranks a small reference catalog of movies against a set of
// selected genres and the viewer's mood. Every subcommand works offline
// against the built-in catalog or a YAML catalog given with --catalog.
//
//	moodreel recommend -g Action -g Sci-Fi -m Excited
//	moodreel recommend --genre Drama --mood Sad --k 3 --json
//	moodreel genres
//	moodreel serve
//
// serve runs the HTTP API under a suture supervisor tree and stops
// gracefully on SIGINT or SIGTERM. Its configuration is layered with koanf:
// built-in defaults, then a YAML file (--config, CONFIG_PATH or
// moodreel.yaml), then environment variables. See internal/config for the
// full list.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/tomtom215/moodreel/internal/recommend"
)

// Build metadata, set with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// noGenresMessage is shown when recommend runs with no genre selected.
const noGenresMessage = "Please select at least one genre."

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	errColor := color.New(color.FgRed, color.Bold)
	if errors.Is(err, recommend.ErrNoGenres) {
		_, _ = errColor.Fprintln(w, noGenresMessage)
		return
	}
	_, _ = errColor.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err)
}
