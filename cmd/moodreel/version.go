// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := collectVersion()
			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout(), payload)
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), payload)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func collectVersion() versionPayload {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}
	return versionPayload{
		Tool:      "moodreel",
		Version:   v,
		GitCommit: strings.TrimSpace(commit),
		BuildDate: strings.TrimSpace(buildDate),
		GoVersion: runtime.Version(),
	}
}

func renderVersionPretty(out io.Writer, p versionPayload) {
	_, _ = fmt.Fprintf(out, "moodreel %s (%s)\n", p.Version, p.GoVersion)
	if p.GitCommit != "" {
		_, _ = fmt.Fprintf(out, "commit: %s\n", p.GitCommit)
	}
	if p.BuildDate != "" {
		_, _ = fmt.Fprintf(out, "built:  %s\n", p.BuildDate)
	}
}
