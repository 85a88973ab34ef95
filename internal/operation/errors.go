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
	"fmt"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
)

// Error is returned when an operation reaches a terminal state with a
// server-reported failure. The server's message and structured details are
// preserved verbatim so the user can act on them.
type Error struct {
	// Name is the operation name the failure was reported for.
	Name string
	// Status is the server-reported failure, as read from the operation's
	// error field.
	Status *statuspb.Status
}

// NewError builds an Error from a failed snapshot.
func NewError(snap *Snapshot) *Error {
	return &Error{Name: snap.Name, Status: snap.Error}
}

func (e *Error) Error() string {
	st := e.Status
	if st == nil {
		return fmt.Sprintf("operation %q failed", e.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "operation %q failed: %s", e.Name, st.GetMessage())
	if st.GetCode() != 0 {
		fmt.Fprintf(&b, " (code %d)", st.GetCode())
	}
	for _, detail := range st.GetDetails() {
		badRequest := &errdetails.BadRequest{}
		if detail.MessageIs(badRequest) {
			if err := detail.UnmarshalTo(badRequest); err != nil {
				continue
			}
			for _, violation := range badRequest.GetFieldViolations() {
				fmt.Fprintf(&b, "\n  %s: %s", violation.GetField(), violation.GetDescription())
			}
		}
	}
	return b.String()
}

// TimeoutError is returned when the wait loop exhausts its retry or
// wall-clock budget while the operation is still pending. It is distinct
// from Error: the operation may still complete server-side, the client
// has merely stopped watching.
type TimeoutError struct {
	// Name is the operation that was being waited on.
	Name string
	// Attempts is the number of polls performed before giving up.
	Attempts int
	// Elapsed is the wall-clock time spent waiting.
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("gave up waiting for operation %q after %d polls (%s elapsed); the operation may still complete, re-check its status later", e.Name, e.Attempts, e.Elapsed)
}
