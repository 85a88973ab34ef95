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

// Package yaml wraps gopkg.in/yaml.v3 with typed helpers.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Unmarshal decodes data into a freshly allocated T.
func Unmarshal[T any](data []byte) (*T, error) {
	v := new(T)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("unmarshaling yaml: %w", err)
	}
	return v, nil
}

// Read reads the file at path and decodes it into a freshly allocated T.
func Read[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Unmarshal[T](data)
}
