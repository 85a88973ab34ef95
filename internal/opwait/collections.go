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
	"os"
	"text/tabwriter"

	"github.com/googleapis/opwait/internal/registry"
	"github.com/urfave/cli/v3"
)

func newCollectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "collections",
		Usage: "list the registered operation collections",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tHOST\tDESCRIPTION")
			for _, col := range registry.Collections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", col.Name, col.Kind, col.Host, col.Description)
			}
			return w.Flush()
		},
	}
}
