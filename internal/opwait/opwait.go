// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package opwait implements the opwait command-line interface: commands to
// wait for, describe and cancel long-running Google Cloud operations.
package opwait

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Version is the opwait binary version.
const Version = "0.1.0"

// Run executes the opwait CLI with the given command-line arguments.
func Run(ctx context.Context, args []string) error {
	cmd := newRootCommand()
	slog.Debug("opwait", slog.Any("arguments", args))
	return cmd.Run(ctx, args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "opwait",
		Usage: "wait for long-running Google Cloud operations",
		Commands: []*cli.Command{
			newWaitCommand(),
			newDescribeCommand(),
			newCancelCommand(),
			newCollectionsCommand(),
			newVersionCommand(),
		},
	}
}
