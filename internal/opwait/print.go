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
	"fmt"
	"io"
	"reflect"

	"github.com/googleapis/opwait/internal/operation"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

var marshaler = protojson.MarshalOptions{Multiline: true, Indent: "  "}

// printResult writes the final wait result. Generic LRO responses arrive
// as an Any whose embedded type may not be linked into this binary, so
// those are summarized rather than expanded.
func printResult(w io.Writer, result any) error {
	switch v := result.(type) {
	case nil:
		_, err := fmt.Fprintln(w, "done")
		return err
	case *anypb.Any:
		if v == nil {
			_, err := fmt.Fprintln(w, "done")
			return err
		}
		_, err := fmt.Fprintf(w, "response: %s (%d bytes)\n", v.GetTypeUrl(), len(v.GetValue()))
		return err
	case proto.Message:
		data, err := marshaler.Marshal(v)
		if err != nil {
			return fmt.Errorf("formatting result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	rv := reflect.ValueOf(result)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if err := printResult(w, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%v\n", result)
	return err
}

// printSnapshot writes a one-poll view of an operation.
func printSnapshot(w io.Writer, snap *operation.Snapshot) error {
	status := operation.Classify(snap)
	if _, err := fmt.Fprintf(w, "name: %s\nstatus: %s\n", snap.Name, status); err != nil {
		return err
	}
	if snap.Error != nil {
		if _, err := fmt.Fprintf(w, "error: %s (code %d)\n", snap.Error.GetMessage(), snap.Error.GetCode()); err != nil {
			return err
		}
	}
	return nil
}
