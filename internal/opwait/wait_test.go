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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/opwait/internal/config"
	"github.com/googleapis/opwait/internal/operation"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
)

var testRef = operation.Ref{Name: "operations/abc", Collection: "longrunning.operations"}

type fakePoller struct {
	snaps  []*operation.Snapshot
	polls  int
	result any
}

func (p *fakePoller) Poll(ctx context.Context, ref operation.Ref) (*operation.Snapshot, error) {
	i := p.polls
	p.polls++
	if i >= len(p.snaps) {
		i = len(p.snaps) - 1
	}
	return p.snaps[i], nil
}

func (p *fakePoller) GetResult(ctx context.Context, ref operation.Ref, snap *operation.Snapshot) (any, error) {
	return p.result, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{Collection: testRef.Collection, Interval: time.Nanosecond}
	if err := cfg.SetDefaults(); err != nil {
		panic(err)
	}
	return cfg
}

func TestRunWaitSuccess(t *testing.T) {
	poller := &fakePoller{
		snaps: []*operation.Snapshot{
			{Name: testRef.Name},
			{Name: testRef.Name, Done: true},
		},
		result: "all done",
	}
	var out bytes.Buffer

	if err := runWait(context.Background(), &out, poller, testRef, testConfig()); err != nil {
		t.Fatalf("runWait() returned error: %v", err)
	}
	if diff := cmp.Diff(2, poller.polls); diff != "" {
		t.Errorf("poll count mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "all done") {
		t.Errorf("output %q does not contain result", out.String())
	}
}

func TestRunWaitOperationError(t *testing.T) {
	poller := &fakePoller{
		snaps: []*operation.Snapshot{
			{
				Name:  testRef.Name,
				Done:  true,
				Error: &statuspb.Status{Code: 7, Message: "Permission denied"},
			},
		},
	}

	err := runWait(context.Background(), &bytes.Buffer{}, poller, testRef, testConfig())
	var opErr *operation.Error
	if !errors.As(err, &opErr) {
		t.Fatalf("runWait() = %v, want *operation.Error", err)
	}
	if !strings.Contains(err.Error(), "Permission denied") {
		t.Errorf("error %q does not preserve server message", err.Error())
	}
}

func TestRunWaitTimeout(t *testing.T) {
	poller := &fakePoller{snaps: []*operation.Snapshot{{Name: testRef.Name}}}
	cfg := testConfig()
	cfg.MaxRetries = 2

	err := runWait(context.Background(), &bytes.Buffer{}, poller, testRef, cfg)
	var timeoutErr *operation.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("runWait() = %v, want *operation.TimeoutError", err)
	}
	if diff := cmp.Diff(2, poller.polls); diff != "" {
		t.Errorf("poll count mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand()
	want := []string{"wait", "describe", "cancel", "collections", "version"}
	var got []string
	for _, cmd := range root.Commands {
		got = append(got, cmd.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("command tree mismatch (-want +got):\n%s", diff)
	}
}
