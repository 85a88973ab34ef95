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

	artifactregistry "cloud.google.com/go/artifactregistry/apiv1"
	cloudbuild "cloud.google.com/go/cloudbuild/apiv1/v2"
	longrunning "cloud.google.com/go/longrunning/autogen"
	"github.com/googleapis/opwait/internal/config"
	"github.com/googleapis/opwait/internal/gar"
	"github.com/googleapis/opwait/internal/gcb"
	"github.com/googleapis/opwait/internal/lro"
	"github.com/googleapis/opwait/internal/registry"
	"github.com/googleapis/opwait/internal/waiter"
	"google.golang.org/api/option"
)

// newPoller builds the poller for a collection, plus a close function for
// the underlying clients.
func newPoller(ctx context.Context, col *registry.Collection, cfg *config.Config) (waiter.Poller, func() error, error) {
	endpoint := option.WithEndpoint(col.Host + ":443")
	switch col.Kind {
	case registry.KindLRO:
		client, err := longrunning.NewOperationsClient(ctx, endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("creating operations client for %q: %w", col.Name, err)
		}
		return lro.NewPoller(client), client.Close, nil
	case registry.KindBuild:
		client, err := cloudbuild.NewClient(ctx, endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("creating cloudbuild client: %w", err)
		}
		return gcb.NewPoller(client), client.Close, nil
	case registry.KindBulk:
		operations, err := longrunning.NewOperationsClient(ctx, endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("creating operations client for %q: %w", col.Name, err)
		}
		client, err := artifactregistry.NewClient(ctx, endpoint)
		if err != nil {
			operations.Close()
			return nil, nil, fmt.Errorf("creating artifactregistry client: %w", err)
		}
		closeAll := func() error {
			err := operations.Close()
			if cerr := client.Close(); err == nil {
				err = cerr
			}
			return err
		}
		return gar.NewPoller(operations, gar.ClientLister{Client: client}, cfg.Parent), closeAll, nil
	default:
		return nil, nil, fmt.Errorf("collection %q has unsupported kind %q", col.Name, col.Kind)
	}
}

// newOperationsClient builds the plain operations client used by commands
// that act on the operations surface directly, such as cancel.
func newOperationsClient(ctx context.Context, col *registry.Collection) (*longrunning.OperationsClient, error) {
	client, err := longrunning.NewOperationsClient(ctx, option.WithEndpoint(col.Host+":443"))
	if err != nil {
		return nil, fmt.Errorf("creating operations client for %q: %w", col.Name, err)
	}
	return client, nil
}
