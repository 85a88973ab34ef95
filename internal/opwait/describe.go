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

package opwait

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

func newDescribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "fetch and print the current state of an operation",
		UsageText: "opwait describe --collection=NAME [flags] OPERATION",
		Flags: []cli.Flag{
			flagCollection(),
			flagProject(),
			flagLocation(),
			flagParent(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFromCommand(cmd)
			ref, col, err := resolveRef(cmd, cfg)
			if err != nil {
				return err
			}
			poller, closeClients, err := newPoller(ctx, col, cfg)
			if err != nil {
				return err
			}
			defer closeClients()
			snap, err := poller.Poll(ctx, ref)
			if err != nil {
				return err
			}
			return printSnapshot(os.Stdout, snap)
		},
	}
}
