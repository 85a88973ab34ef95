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
	"log/slog"

	"github.com/googleapis/opwait/internal/lro"
	"github.com/googleapis/opwait/internal/registry"
	"github.com/urfave/cli/v3"
)

func newCancelCommand() *cli.Command {
	return &cli.Command{
		Name:      "cancel",
		Usage:     "ask the server to cancel an operation",
		UsageText: "opwait cancel --collection=NAME OPERATION",
		Flags: []cli.Flag{
			flagCollection(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFromCommand(cmd)
			ref, col, err := resolveRef(cmd, cfg)
			if err != nil {
				return err
			}
			if col.Kind == registry.KindBuild {
				return fmt.Errorf("collection %q does not use the operations surface; cancel the build instead", col.Name)
			}
			client, err := newOperationsClient(ctx, col)
			if err != nil {
				return err
			}
			defer client.Close()
			if err := lro.NewPoller(client).Cancel(ctx, ref); err != nil {
				return err
			}
			slog.Info("cancellation requested", slog.String("operation", ref.String()))
			return nil
		},
	}
}
