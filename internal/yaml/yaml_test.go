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

package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type doc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal[doc]([]byte("name: foo\ncount: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &doc{Name: "foo", Count: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal[doc]([]byte(":\n-")); err == nil {
		t.Fatal("Unmarshal() of invalid yaml succeeded, want error")
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte("name: bar\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Read[doc](path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&doc{Name: "bar"}, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read[doc](filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Read() of missing file succeeded, want error")
	}
}
