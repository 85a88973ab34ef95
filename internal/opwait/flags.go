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
	"github.com/googleapis/opwait/internal/config"
	"github.com/googleapis/opwait/internal/waiter"
	"github.com/urfave/cli/v3"
)

func flagCollection() cli.Flag {
	return &cli.StringFlag{
		Name:     "collection",
		Usage:    "registered collection the operation belongs to (see `opwait collections`)",
		Required: true,
	}
}

func flagProject() cli.Flag {
	return &cli.StringFlag{
		Name:  "project",
		Usage: "project the operation runs in",
	}
}

func flagLocation() cli.Flag {
	return &cli.StringFlag{
		Name:  "location",
		Usage: "region of the operation, or \"global\"",
		Value: "global",
	}
}

func flagParent() cli.Flag {
	return &cli.StringFlag{
		Name:  "parent",
		Usage: "scope bulk results are listed under; derived from --project and --location when unset",
	}
}

func waitPolicyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-retries",
			Usage: "maximum number of status polls before giving up",
			Value: waiter.DefaultMaxRetries,
		},
		&cli.DurationFlag{
			Name:  "interval",
			Usage: "fixed pause between polls",
			Value: waiter.DefaultInterval,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "total wall-clock cap on waiting; 0 waits until max-retries is spent",
		},
		&cli.BoolFlag{
			Name:  "exponential-backoff",
			Usage: "grow the pause between polls instead of using a fixed interval",
		},
		&cli.IntFlag{
			Name:  "transient-retries",
			Usage: "number of transient transport failures to tolerate while polling",
		},
		&cli.BoolFlag{
			Name:  "async",
			Usage: "print the operation reference and return without waiting",
		},
		&cli.BoolFlag{
			Name:  "tail-logs",
			Usage: "report build status transitions while waiting (Cloud Build collections only)",
		},
	}
}

func configFromCommand(cmd *cli.Command) *config.Config {
	return &config.Config{
		Collection:         cmd.String("collection"),
		Project:            cmd.String("project"),
		Location:           cmd.String("location"),
		Parent:             cmd.String("parent"),
		MaxRetries:         int(cmd.Int("max-retries")),
		Interval:           cmd.Duration("interval"),
		Timeout:            cmd.Duration("timeout"),
		ExponentialBackoff: cmd.Bool("exponential-backoff"),
		TransientRetries:   int(cmd.Int("transient-retries")),
		Async:              cmd.Bool("async"),
		TailLogs:           cmd.Bool("tail-logs"),
	}
}
