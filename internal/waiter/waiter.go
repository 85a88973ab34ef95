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

// Package waiter implements the blocking wait loop used to watch a
// long-running operation until it reaches a terminal state.
//
// The loop owns the retry policy: how often to poll, how many polls to
// attempt, and whether transient transport failures are tolerated. What a
// single poll means for a given API family is supplied by a Poller
// implementation, so one loop serves every API shape.
package waiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/googleapis/opwait/internal/operation"
	"google.golang.org/grpc/codes"
)

// Default retry policy: 720 polls at 5 second intervals, roughly an hour
// of waiting.
const (
	DefaultMaxRetries = 720
	DefaultInterval   = 5 * time.Second
)

// A Poller performs one status round trip for a single API family, and
// extracts the final result once the operation is done. Implementations
// must not retry internally; the wait loop owns retry policy.
type Poller interface {
	// Poll fetches a fresh snapshot of the operation.
	Poll(ctx context.Context, ref operation.Ref) (*operation.Snapshot, error)
	// GetResult returns the final result for a done operation. Depending on
	// the API family this may read the snapshot's embedded response, fetch
	// the target resource, or list the resources under a parent scope.
	GetResult(ctx context.Context, ref operation.Ref, snap *operation.Snapshot) (any, error)
}

// Config parametrizes one wait. The zero value waits with the default
// fixed-interval policy and no wall-clock cap.
type Config struct {
	// MaxRetries bounds the number of polls. Defaults to DefaultMaxRetries.
	MaxRetries int
	// Interval is the fixed pause between polls. Ignored when Backoff is
	// set. Defaults to DefaultInterval.
	Interval time.Duration
	// Backoff, when non-nil, selects capped exponential backoff between
	// polls instead of a fixed interval. The struct is copied before use,
	// so a Config may be reused across waits.
	Backoff *gax.Backoff
	// Timeout caps the total wall-clock time spent waiting. Zero means no
	// cap; MaxRetries still applies.
	Timeout time.Duration
	// Progress, if set, is invoked once per poll that leaves the operation
	// pending. It must not block.
	Progress func(ref operation.Ref, snap *operation.Snapshot)
	// TransientRetries is the number of transport failures during Poll that
	// are tolerated (treated as "still pending") before the failure
	// propagates. Zero, the default, propagates the first failure.
	TransientRetries int
	// IsTransient classifies a Poll failure as transient. Defaults to
	// IsTransientAPIError. Only consulted when TransientRetries > 0.
	IsTransient func(error) bool

	// Sleep and Now exist so tests can simulate the passage of time.
	// They default to gax.Sleep and time.Now.
	Sleep func(ctx context.Context, d time.Duration) error
	Now   func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.IsTransient == nil {
		c.IsTransient = IsTransientAPIError
	}
	if c.Sleep == nil {
		c.Sleep = gax.Sleep
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// IsTransientAPIError reports whether err looks like a transient transport
// failure: HTTP 5xx or the retryable gRPC codes.
func IsTransientAPIError(err error) bool {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.HTTPCode() {
	case 500, 502, 503, 504:
		return true
	}
	if st := apiErr.GRPCStatus(); st != nil {
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded:
			return true
		}
	}
	return false
}

// Wait polls ref through p until the operation reaches a terminal state or
// the retry budget runs out.
//
// On done it returns the poller's result. On a server-reported failure it
// returns *operation.Error immediately, with no further polling. When the
// budget is exhausted while still pending it returns
// *operation.TimeoutError; the operation may still complete server-side.
// Transport failures during Poll propagate wrapped unless cfg opts into
// tolerating them.
func Wait(ctx context.Context, p Poller, ref operation.Ref, cfg Config) (any, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	var backoff *gax.Backoff
	if cfg.Backoff != nil {
		b := *cfg.Backoff
		backoff = &b
	}

	start := cfg.Now()
	transientBudget := cfg.TransientRetries
	for attempt := 1; ; attempt++ {
		snap, err := p.Poll(ctx, ref)
		if err != nil {
			if transientBudget <= 0 || !cfg.IsTransient(err) {
				return nil, fmt.Errorf("polling operation %q: %w", ref.Name, err)
			}
			// Tolerated transport failure: treat the attempt as a pending
			// poll and keep going.
			transientBudget--
			snap = nil
		} else {
			switch operation.Classify(snap) {
			case operation.StatusDone:
				result, err := p.GetResult(ctx, ref, snap)
				if err != nil {
					return nil, fmt.Errorf("fetching result of operation %q: %w", ref.Name, err)
				}
				return result, nil
			case operation.StatusFailed:
				return nil, operation.NewError(snap)
			}
		}

		if cfg.Progress != nil {
			cfg.Progress(ref, snap)
		}
		elapsed := cfg.Now().Sub(start)
		if attempt >= cfg.MaxRetries || (cfg.Timeout > 0 && elapsed >= cfg.Timeout) {
			return nil, &operation.TimeoutError{Name: ref.Name, Attempts: attempt, Elapsed: elapsed}
		}

		pause := cfg.Interval
		if backoff != nil {
			pause = backoff.Pause()
		}
		if err := cfg.Sleep(ctx, pause); err != nil {
			return nil, err
		}
	}
}
