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

package operation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
)

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		name string
		snap *Snapshot
		want Status
	}{
		{
			name: "not done is pending",
			snap: &Snapshot{Name: "op", Done: false},
			want: StatusPending,
		},
		{
			name: "error ignored while not done",
			snap: &Snapshot{Name: "op", Done: false, Error: &statuspb.Status{Message: "transient"}},
			want: StatusPending,
		},
		{
			name: "done without error",
			snap: &Snapshot{Name: "op", Done: true},
			want: StatusDone,
		},
		{
			name: "done with error",
			snap: &Snapshot{Name: "op", Done: true, Error: &statuspb.Status{Message: "boom"}},
			want: StatusFailed,
		},
		{
			name: "malformed resource fails open to pending",
			snap: &Snapshot{},
			want: StatusPending,
		},
		{
			name: "nil snapshot is pending",
			snap: nil,
			want: StatusPending,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Classify(test.snap)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
			// Classification is a pure function: a second call on the same
			// unmodified snapshot yields the same answer.
			if again := Classify(test.snap); again != got {
				t.Errorf("Classify() not stable: first %v, second %v", got, again)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, test := range []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusDone, true},
		{StatusFailed, true},
	} {
		if got := test.status.Terminal(); got != test.want {
			t.Errorf("%v.Terminal() = %v, want %v", test.status, got, test.want)
		}
	}
}

func TestRefValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		ref     Ref
		wantErr bool
	}{
		{
			name: "valid",
			ref:  Ref{Name: "operations/abc", Collection: "longrunning.operations"},
		},
		{
			name:    "missing name",
			ref:     Ref{Collection: "longrunning.operations"},
			wantErr: true,
		},
		{
			name:    "missing collection",
			ref:     Ref{Name: "operations/abc"},
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.ref.Validate()
			if diff := cmp.Diff(test.wantErr, err != nil); diff != "" {
				t.Errorf("Validate() = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

func TestRefString(t *testing.T) {
	ref := Ref{Name: "operations/abc", Collection: "cloudbuild.builds"}
	if diff := cmp.Diff("cloudbuild.builds/operations/abc", ref.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}
