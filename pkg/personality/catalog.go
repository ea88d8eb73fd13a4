// Copyright (c) 2025, The mbti-quiz Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package personality

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
	"github.com/DaRainFlavor/mbti-quiz/pkg/header"
)

const catalogPath = "data/types.yaml"

//go:embed data/types.yaml
var catalogFS embed.FS

var (
	registryOnce      sync.Once
	cachedRegistry    *Registry
	cachedRegistryErr error
)

// catalogFile is the on-disk layout of data/types.yaml.
type catalogFile struct {
	APIVersion string      `yaml:"apiVersion"`
	Kind       header.Kind `yaml:"kind"`
	Types      []Type      `yaml:"types"`
}

// decodeCatalog parses a catalog document and builds a validated Registry.
func decodeCatalog(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to decode personality catalog", err)
	}
	if f.APIVersion != header.APIVersion {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported catalog apiVersion %q, want %q", f.APIVersion, header.APIVersion))
	}
	if !f.Kind.IsValid() {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown document kind %q", f.Kind))
	}
	if f.Kind != header.KindPersonalityCatalog {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected catalog kind %q, want %q", f.Kind, header.KindPersonalityCatalog))
	}
	return newRegistry(f.Types)
}

// loadCatalog decodes content and records the load duration. Failed loads
// are not observed.
func loadCatalog(content []byte) (*Registry, error) {
	start := time.Now()
	reg, err := decodeCatalog(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	registryLoadDuration.Observe(elapsed.Seconds())
	slog.Debug("personality catalog loaded",
		"source", catalogPath,
		"types", reg.Len(),
		"duration", elapsed)
	return reg, nil
}

func loadDefaultRegistry() (*Registry, error) {
	registryOnce.Do(func() {
		content, err := catalogFS.ReadFile(catalogPath)
		if err != nil {
			cachedRegistryErr = cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read embedded personality catalog", err)
			return
		}
		cachedRegistry, cachedRegistryErr = loadCatalog(content)
	})
	return cachedRegistry, cachedRegistryErr
}

// Default returns the process-wide registry built from the embedded catalog.
// The catalog ships with the binary, so a load failure is a build defect and
// panics.
func Default() *Registry {
	r, err := loadDefaultRegistry()
	if err != nil {
		panic(cnserrors.Wrap(cnserrors.ErrCodeInternal, "embedded personality catalog is unusable", err))
	}
	return r
}

// Lookup is Default().Lookup.
func Lookup(code string) (Type, bool) {
	return Default().Lookup(code)
}

// All is Default().All.
func All() []Type {
	return Default().All()
}

// Codes is Default().Codes.
func Codes() []Code {
	return Default().Codes()
}
