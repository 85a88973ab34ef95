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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/googleapis/opwait/internal/config"
	"github.com/googleapis/opwait/internal/gcb"
	"github.com/googleapis/opwait/internal/operation"
	"github.com/googleapis/opwait/internal/registry"
	"github.com/googleapis/opwait/internal/waiter"
	"github.com/urfave/cli/v3"
)

func newWaitCommand() *cli.Command {
	return &cli.Command{
		Name:      "wait",
		Usage:     "block until an operation reaches a terminal state",
		UsageText: "opwait wait --collection=NAME [flags] OPERATION",
		Flags: append([]cli.Flag{
			flagCollection(),
			flagProject(),
			flagLocation(),
			flagParent(),
		}, waitPolicyFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFromCommand(cmd)
			ref, col, err := resolveRef(cmd, cfg)
			if err != nil {
				return err
			}
			if cfg.Async {
				fmt.Fprintln(os.Stdout, ref.String())
				return nil
			}
			poller, closeClients, err := newPoller(ctx, col, cfg)
			if err != nil {
				return err
			}
			defer closeClients()
			return runWait(ctx, os.Stdout, poller, ref, cfg)
		},
	}
}

// resolveRef builds the operation reference from the command line and
// checks it against the collection registry.
func resolveRef(cmd *cli.Command, cfg *config.Config) (operation.Ref, *registry.Collection, error) {
	if err := cfg.SetDefaults(); err != nil {
		return operation.Ref{}, nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if _, err := cfg.IsValid(); err != nil {
		return operation.Ref{}, nil, fmt.Errorf("failed to validate config: %w", err)
	}
	name := cmd.Args().First()
	if name == "" {
		return operation.Ref{}, nil, fmt.Errorf("no operation name given")
	}
	col, err := registry.Lookup(cfg.Collection)
	if err != nil {
		return operation.Ref{}, nil, err
	}
	ref := operation.Ref{Name: name, Collection: col.Name}
	if err := ref.Validate(); err != nil {
		return operation.Ref{}, nil, err
	}
	return ref, col, nil
}

// runWait drives the wait loop and prints the result. Each invocation gets
// a wait id so log lines from overlapping waits can be told apart.
func runWait(ctx context.Context, w io.Writer, poller waiter.Poller, ref operation.Ref, cfg *config.Config) error {
	logger := slog.With(
		slog.String("waitId", uuid.NewString()),
		slog.String("operation", ref.String()),
	)
	waitCfg := cfg.WaitConfig()
	polls := 0
	waitCfg.Progress = func(ref operation.Ref, snap *operation.Snapshot) {
		polls++
		logger.Info("still waiting", slog.Int("polls", polls))
	}

	logger.Info("waiting for operation")
	var result any
	var err error
	if buildPoller, ok := poller.(*gcb.Poller); ok && cfg.TailLogs {
		result, err = buildPoller.WaitWithLogs(ctx, ref, waitCfg)
	} else {
		result, err = waiter.Wait(ctx, poller, ref, waitCfg)
	}
	if err != nil {
		return err
	}
	logger.Info("operation complete", slog.Int("polls", polls+1))
	return printResult(w, result)
}
