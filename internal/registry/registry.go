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

// Package registry holds the declarative collection definitions that route
// an operation reference to the right API family and polling strategy.
package registry

import (
	_ "embed"
	"fmt"

	"github.com/googleapis/opwait/internal/yaml"
)

// Kind selects the polling strategy for a collection.
type Kind string

const (
	// KindLRO is the standard google.longrunning surface; the result is
	// embedded in the operation's response payload.
	KindLRO Kind = "lro"
	// KindBuild is the Cloud Build surface; status and result come from
	// the build resource itself.
	KindBuild Kind = "build"
	// KindBulk is a bulk operation; the result is a list of the resources
	// under the operation's parent scope.
	KindBulk Kind = "bulk"
)

// Collection describes one API family operations can belong to.
type Collection struct {
	// Name is the identifier used in operation references, e.g.
	// "cloudbuild.builds".
	Name string `yaml:"name"`

	// Kind selects the polling strategy.
	Kind Kind `yaml:"kind"`

	// Host is the service endpoint, e.g. "cloudbuild.googleapis.com".
	Host string `yaml:"host"`

	// Description is a short human-readable summary.
	Description string `yaml:"description,omitempty"`
}

var (
	//go:embed collections.yaml
	collectionsYaml []byte

	// Collections lists every registered collection.
	Collections = unmarshalCollectionsOrPanic()
)

func unmarshalCollectionsOrPanic() []Collection {
	collections, err := yaml.Unmarshal[[]Collection](collectionsYaml)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal collections.yaml: %v", err))
	}
	return *collections
}

// Lookup finds a collection by name.
func Lookup(name string) (*Collection, error) {
	for i := range Collections {
		if Collections[i].Name == name {
			return &Collections[i], nil
		}
	}
	return nil, fmt.Errorf("unknown collection %q", name)
}

// Validate checks a collection definition for the required fields and a
// known kind.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("collection has no name")
	}
	if c.Host == "" {
		return fmt.Errorf("collection %q has no host", c.Name)
	}
	switch c.Kind {
	case KindLRO, KindBuild, KindBulk:
		return nil
	default:
		return fmt.Errorf("collection %q has unknown kind %q", c.Name, c.Kind)
	}
}
