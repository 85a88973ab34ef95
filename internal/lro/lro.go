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

// Package lro adapts the standard google.longrunning operations surface to
// the waiter's Poller interface. APIs that follow the LRO convention embed
// the final result in the operation's response payload, so GetResult reads
// the snapshot instead of issuing another call.
package lro

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/opwait/internal/operation"
)

// OperationsClient is the subset of the generated operations client the
// poller needs. *longrunning.OperationsClient satisfies it.
type OperationsClient interface {
	GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest, opts ...gax.CallOption) (*longrunningpb.Operation, error)
	CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest, opts ...gax.CallOption) error
}

// Poller polls a google.longrunning operation by name.
type Poller struct {
	client OperationsClient
}

// NewPoller returns a poller backed by the given operations client.
func NewPoller(client OperationsClient) *Poller {
	return &Poller{client: client}
}

// Poll fetches the operation and converts it to a snapshot.
func (p *Poller) Poll(ctx context.Context, ref operation.Ref) (*operation.Snapshot, error) {
	op, err := p.client.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: ref.Name})
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched operation", slog.String("name", op.GetName()), slog.Bool("done", op.GetDone()))
	return Snapshot(op), nil
}

// GetResult returns the operation's embedded response payload.
func (p *Poller) GetResult(ctx context.Context, ref operation.Ref, snap *operation.Snapshot) (any, error) {
	if snap == nil || !snap.Done {
		return nil, fmt.Errorf("operation %q is not done", ref.Name)
	}
	return snap.Response, nil
}

// Cancel asks the server to cancel the operation. Cancellation is best
// effort; the operation may still complete.
func (p *Poller) Cancel(ctx context.Context, ref operation.Ref) error {
	if err := p.client.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{Name: ref.Name}); err != nil {
		return fmt.Errorf("canceling operation %q: %w", ref.Name, err)
	}
	return nil
}

// Snapshot converts a wire operation into the client-side snapshot.
func Snapshot(op *longrunningpb.Operation) *operation.Snapshot {
	return &operation.Snapshot{
		Name:     op.GetName(),
		Done:     op.GetDone(),
		Error:    op.GetError(),
		Response: op.GetResponse(),
		Metadata: op.GetMetadata(),
	}
}
