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
	"testing"
	"time"

	"cloud.google.com/go/cloudbuild/apiv1/v2/cloudbuildpb"
	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/opwait/internal/waiter"
)

func TestTailerStops(t *testing.T) {
	tailer := NewTailer(&mockBuildsClient{builds: []*cloudbuildpb.Build{build(cloudbuildpb.Build_WORKING)}}, time.Millisecond)

	errCh := make(chan error, 1)
	go func() {
		errCh <- tailer.Run(context.Background(), testRef)
	}()
	tailer.Stop()
	// Stop is idempotent.
	tailer.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run() returned error after Stop(): %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tailer did not stop")
	}
}

func TestTailerContextCancel(t *testing.T) {
	tailer := NewTailer(&mockBuildsClient{builds: []*cloudbuildpb.Build{build(cloudbuildpb.Build_WORKING)}}, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tailer.Run(ctx, testRef); err == nil {
		t.Fatal("Run() with canceled context returned nil, want error")
	}
}

func TestWaitWithLogs(t *testing.T) {
	client := &mockBuildsClient{builds: []*cloudbuildpb.Build{
		build(cloudbuildpb.Build_WORKING),
		build(cloudbuildpb.Build_SUCCESS),
	}}
	poller := NewPoller(client)
	cfg := waiter.Config{
		Interval: time.Millisecond,
		Sleep:    func(ctx context.Context, d time.Duration) error { return nil },
	}

	result, err := poller.WaitWithLogs(context.Background(), testRef, cfg)
	if err != nil {
		t.Fatalf("WaitWithLogs() returned error: %v", err)
	}
	got, ok := result.(*cloudbuildpb.Build)
	if !ok {
		t.Fatalf("WaitWithLogs() = %T, want *cloudbuildpb.Build", result)
	}
	if diff := cmp.Diff(cloudbuildpb.Build_SUCCESS, got.GetStatus()); diff != "" {
		t.Errorf("build status mismatch (-want +got):\n%s", diff)
	}
}
