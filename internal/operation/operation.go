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

// Package operation defines the client-side model of a long-running
// operation: the reference used to re-fetch it, the snapshot read on each
// poll, and the classification of a snapshot into pending, done or failed.
package operation

import (
	"fmt"

	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// Ref identifies a long-running operation: the server-assigned name plus
// the collection used to route status fetches to the right API family.
// A Ref is immutable once created.
type Ref struct {
	// Name is the opaque server-assigned operation name, e.g.
	// "projects/p/locations/us/operations/abc123".
	Name string
	// Collection is the API family the operation belongs to, as registered
	// in the collection registry.
	Collection string
}

// Validate reports whether the reference is usable for polling.
func (r Ref) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("operation reference has no name")
	}
	if r.Collection == "" {
		return fmt.Errorf("operation reference %q has no collection", r.Name)
	}
	return nil
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s", r.Collection, r.Name)
}

// Snapshot is a point-in-time read of an operation resource. The server
// owns the resource; a Snapshot is never written back.
//
// A zero Done with no Error is the not-yet-finished state. A resource
// missing the done field entirely decodes to the zero value and is
// therefore classified as pending, so polling continues rather than
// failing on minor schema drift.
type Snapshot struct {
	Name     string
	Done     bool
	Error    *statuspb.Status
	Response *anypb.Any
	Metadata *anypb.Any
}

// Status is the classification of a Snapshot.
type Status int

const (
	// StatusPending means the operation has not reached a terminal state.
	StatusPending Status = iota
	// StatusDone means the operation finished successfully.
	StatusDone
	// StatusFailed means the operation finished and reported an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusDone:
		return "DONE"
	case StatusFailed:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether no further polling should occur.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusFailed
}

// Classify derives the status of a snapshot. It is a pure function of its
// input: the error field is ignored while the operation is not done, and
// done with a non-nil error always classifies as failed.
func Classify(snap *Snapshot) Status {
	if snap == nil || !snap.Done {
		return StatusPending
	}
	if snap.Error != nil {
		return StatusFailed
	}
	return StatusDone
}
