// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the fetch command line tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd returns the fetch command with a subcommand for each HTTP
// verb.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "fetch",
		Short:   "Issue HTTP requests from the command line",
		Version: version,
		Long: `fetch composes a URL from a base address, path segments, and query
parameters, issues a single HTTP request, and prints the response.

A status outside the 2XX range, other than 304, is reported as an error
after the response is printed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newVerbCmd("get", "GET", false),
		newVerbCmd("head", "HEAD", false),
		newVerbCmd("options", "OPTIONS", false),
		newVerbCmd("delete", "DELETE", false),
		newVerbCmd("post", "POST", true),
		newVerbCmd("put", "PUT", true),
	)
	return root
}

// Execute runs the fetch command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
