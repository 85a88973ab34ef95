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

package gcb

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/cloudbuild/apiv1/v2/cloudbuildpb"
	"github.com/googleapis/opwait/internal/operation"
	"github.com/googleapis/opwait/internal/waiter"
	"golang.org/x/sync/errgroup"
)

// Tailer reports build status transitions while a wait is in progress. It
// runs on its own goroutine and is stopped before the final wait outcome
// is reported, so tail output never interleaves with the terminal message.
type Tailer struct {
	client   BuildsClient
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

// NewTailer returns a tailer that checks the build every interval.
func NewTailer(client BuildsClient, interval time.Duration) *Tailer {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Tailer{
		client:   client,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Stop signals the tailer to exit. Safe to call more than once.
func (t *Tailer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Run tails the build until Stop is called or ctx is done. Transport
// failures are logged and skipped; the main wait loop owns error policy.
func (t *Tailer) Run(ctx context.Context, ref operation.Ref) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var last cloudbuildpb.Build_Status
	for {
		select {
		case <-t.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		build, err := t.client.GetBuild(ctx, &cloudbuildpb.GetBuildRequest{Name: ref.Name})
		if err != nil {
			slog.Debug("log tailer fetch failed", slog.String("build", ref.Name), slog.Any("err", err))
			continue
		}
		if build.GetStatus() != last {
			last = build.GetStatus()
			slog.Info("build status",
				slog.String("build", ref.Name),
				slog.String("status", last.String()),
				slog.String("logUrl", build.GetLogUrl()),
			)
		}
	}
}

// WaitWithLogs runs the wait loop with a companion tailer. The tailer is
// stopped and joined before the result is returned.
func (p *Poller) WaitWithLogs(ctx context.Context, ref operation.Ref, cfg waiter.Config) (any, error) {
	tailer := NewTailer(p.client, cfg.Interval)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tailer.Run(gctx, ref)
	})

	result, err := waiter.Wait(ctx, p, ref, cfg)

	tailer.Stop()
	if tailErr := g.Wait(); tailErr != nil && err == nil && ctx.Err() == nil {
		slog.Warn("log tailer stopped early", slog.Any("err", tailErr))
	}
	return result, err
}
