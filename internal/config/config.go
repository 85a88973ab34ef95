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

// Package config holds the settings a single opwait invocation runs with.
package config

import (
	"fmt"
	"time"

	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/opwait/internal/waiter"
)

// Exponential backoff bounds used when the caller asks for backoff mode
// instead of a fixed interval.
const (
	backoffInitial    = 1 * time.Second
	backoffMax        = 30 * time.Second
	backoffMultiplier = 2.0
)

// Config collects everything a command invocation needs: which operation
// family to poll, where it lives, and the retry policy. Populated from
// command-line flags; not mutated after SetDefaults.
type Config struct {
	// Collection is the registered collection name, e.g. "cloudbuild.builds".
	Collection string
	// Project is the project the operation runs in.
	Project string
	// Location is the region or "global".
	Location string
	// Parent overrides the scope bulk results are listed under. When empty
	// it is derived from Project and Location.
	Parent string

	// MaxRetries bounds the number of polls.
	MaxRetries int
	// Interval is the fixed pause between polls.
	Interval time.Duration
	// Timeout caps total wall-clock waiting; zero means no cap.
	Timeout time.Duration
	// ExponentialBackoff switches from a fixed interval to capped
	// exponential backoff between polls.
	ExponentialBackoff bool
	// TransientRetries is the number of transient transport failures to
	// tolerate while polling. Zero propagates the first failure.
	TransientRetries int
	// Async skips waiting entirely; the operation reference is printed and
	// the command returns.
	Async bool
	// TailLogs runs a companion log tailer while waiting. Only meaningful
	// for Cloud Build collections.
	TailLogs bool
}

// SetDefaults fills in the default retry policy.
func (c *Config) SetDefaults() error {
	if c.MaxRetries == 0 {
		c.MaxRetries = waiter.DefaultMaxRetries
	}
	if c.Interval == 0 {
		c.Interval = waiter.DefaultInterval
	}
	if c.Location == "" {
		c.Location = "global"
	}
	if c.Parent == "" && c.Project != "" {
		c.Parent = fmt.Sprintf("projects/%s/locations/%s", c.Project, c.Location)
	}
	return nil
}

// IsValid reports whether the configuration can drive a wait.
func (c *Config) IsValid() (bool, error) {
	if c.Collection == "" {
		return false, fmt.Errorf("no collection specified")
	}
	if c.MaxRetries < 0 {
		return false, fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries)
	}
	if c.Interval < 0 {
		return false, fmt.Errorf("poll interval must not be negative, got %s", c.Interval)
	}
	if c.Timeout < 0 {
		return false, fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.TransientRetries < 0 {
		return false, fmt.Errorf("transient retries must not be negative, got %d", c.TransientRetries)
	}
	return true, nil
}

// WaitConfig translates the invocation settings into the wait loop's
// configuration.
func (c *Config) WaitConfig() waiter.Config {
	cfg := waiter.Config{
		MaxRetries:       c.MaxRetries,
		Interval:         c.Interval,
		Timeout:          c.Timeout,
		TransientRetries: c.TransientRetries,
	}
	if c.ExponentialBackoff {
		cfg.Backoff = &gax.Backoff{
			Initial:    backoffInitial,
			Max:        backoffMax,
			Multiplier: backoffMultiplier,
		}
	}
	return cfg
}
