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

// Package gcb adapts Cloud Build to the waiter's Poller interface.
//
// Cloud Build operations do not populate the generic operation response
// payload, so the poller works against the build resource directly: Poll
// reads the build and derives the terminal state from its status, and
// GetResult re-fetches the build rather than trusting an embedded payload.
package gcb

import (
	"context"
	"fmt"

	"cloud.google.com/go/cloudbuild/apiv1/v2/cloudbuildpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/opwait/internal/operation"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
)

// BuildsClient is the subset of the generated Cloud Build client the
// poller needs. *cloudbuild.Client satisfies it.
type BuildsClient interface {
	GetBuild(ctx context.Context, req *cloudbuildpb.GetBuildRequest, opts ...gax.CallOption) (*cloudbuildpb.Build, error)
}

// Poller polls a build by its resource name
// (projects/{p}/locations/{l}/builds/{b}).
type Poller struct {
	client BuildsClient
}

// NewPoller returns a poller backed by the given builds client.
func NewPoller(client BuildsClient) *Poller {
	return &Poller{client: client}
}

// Poll fetches the build and derives an operation snapshot from its status.
func (p *Poller) Poll(ctx context.Context, ref operation.Ref) (*operation.Snapshot, error) {
	build, err := p.client.GetBuild(ctx, &cloudbuildpb.GetBuildRequest{Name: ref.Name})
	if err != nil {
		return nil, err
	}
	return Snapshot(build), nil
}

// GetResult re-fetches the build. The final snapshot is derived state, not
// the resource itself, so callers get the fresh build back.
func (p *Poller) GetResult(ctx context.Context, ref operation.Ref, snap *operation.Snapshot) (any, error) {
	build, err := p.client.GetBuild(ctx, &cloudbuildpb.GetBuildRequest{Name: ref.Name})
	if err != nil {
		return nil, fmt.Errorf("fetching build %q: %w", ref.Name, err)
	}
	return build, nil
}

// Snapshot derives an operation snapshot from a build's status.
func Snapshot(build *cloudbuildpb.Build) *operation.Snapshot {
	snap := &operation.Snapshot{
		Name: build.GetName(),
		Done: terminal(build.GetStatus()),
	}
	if snap.Done && build.GetStatus() != cloudbuildpb.Build_SUCCESS {
		snap.Error = &statuspb.Status{
			Code:    int32(failureCode(build.GetStatus())),
			Message: failureMessage(build),
		}
	}
	return snap
}

func terminal(status cloudbuildpb.Build_Status) bool {
	switch status {
	case cloudbuildpb.Build_SUCCESS,
		cloudbuildpb.Build_FAILURE,
		cloudbuildpb.Build_INTERNAL_ERROR,
		cloudbuildpb.Build_TIMEOUT,
		cloudbuildpb.Build_CANCELLED,
		cloudbuildpb.Build_EXPIRED:
		return true
	}
	return false
}

func failureCode(status cloudbuildpb.Build_Status) codes.Code {
	switch status {
	case cloudbuildpb.Build_TIMEOUT, cloudbuildpb.Build_EXPIRED:
		return codes.DeadlineExceeded
	case cloudbuildpb.Build_CANCELLED:
		return codes.Canceled
	case cloudbuildpb.Build_INTERNAL_ERROR:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

func failureMessage(build *cloudbuildpb.Build) string {
	if detail := build.GetStatusDetail(); detail != "" {
		return detail
	}
	if info := build.GetFailureInfo(); info.GetDetail() != "" {
		return info.GetDetail()
	}
	return fmt.Sprintf("build finished with status %s", build.GetStatus())
}
