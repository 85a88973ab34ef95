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

// Package gar adapts Artifact Registry bulk operations to the waiter's
// Poller interface.
//
// A bulk operation (such as an import) acts on many resources at once, so
// there is no single target to fetch when it completes. GetResult instead
// lists the repositories under the parent scope the operation ran against.
package gar

import (
	"context"
	"fmt"
	"iter"

	"cloud.google.com/go/artifactregistry/apiv1/artifactregistrypb"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/opwait/internal/lro"
	"github.com/googleapis/opwait/internal/operation"
)

// RepositoriesLister lists repositories under a parent scope.
type RepositoriesLister interface {
	ListRepositories(ctx context.Context, req *artifactregistrypb.ListRepositoriesRequest, opts ...gax.CallOption) iter.Seq2[*artifactregistrypb.Repository, error]
}

// Poller polls a bulk Artifact Registry operation. Status checks go
// through the standard operations surface; the final result is the set of
// repositories under the parent scope.
type Poller struct {
	operations *lro.Poller
	lister     RepositoriesLister
	parent     string
}

// NewPoller returns a poller for a bulk operation scoped to parent, e.g.
// "projects/p/locations/us".
func NewPoller(operations lro.OperationsClient, lister RepositoriesLister, parent string) *Poller {
	return &Poller{operations: lro.NewPoller(operations), lister: lister, parent: parent}
}

// Poll fetches the operation through the generic operations surface.
func (p *Poller) Poll(ctx context.Context, ref operation.Ref) (*operation.Snapshot, error) {
	return p.operations.Poll(ctx, ref)
}

// GetResult lists the repositories under the parent scope.
func (p *Poller) GetResult(ctx context.Context, ref operation.Ref, snap *operation.Snapshot) (any, error) {
	req := &artifactregistrypb.ListRepositoriesRequest{Parent: p.parent}
	var repos []*artifactregistrypb.Repository
	for repo, err := range p.lister.ListRepositories(ctx, req) {
		if err != nil {
			return nil, fmt.Errorf("listing repositories under %q: %w", p.parent, err)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
