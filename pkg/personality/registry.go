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
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
)

const (
	lookupResultHit  = "hit"
	lookupResultMiss = "miss"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Registry is an immutable catalog of personality types keyed by code.
// All methods are safe for concurrent use.
type Registry struct {
	types  []Type
	byCode map[Code]int
}

// newRegistry validates records and builds a Registry over private copies
// of them. The order of records is kept as the enumeration order.
func newRegistry(records []Type) (*Registry, error) {
	want := CanonicalCodes()
	if len(records) != len(want) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("catalog must contain exactly %d types, got %d", len(want), len(records)),
			map[string]any{"count": len(records)})
	}

	r := &Registry{
		types:  make([]Type, 0, len(records)),
		byCode: make(map[Code]int, len(records)),
	}
	for _, rec := range records {
		if err := validateType(rec); err != nil {
			return nil, err
		}
		if _, dup := r.byCode[rec.Code]; dup {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				"duplicate personality type code", map[string]any{"code": rec.Code})
		}
		r.byCode[rec.Code] = len(r.types)
		r.types = append(r.types, rec.Clone())
	}
	return r, nil
}

func validateType(t Type) error {
	invalid := func(reason string) error {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid personality type: "+reason, map[string]any{"code": t.Code})
	}

	if !t.Code.IsValid() {
		return invalid(fmt.Sprintf("code %q is not one of the sixteen canonical codes", t.Code))
	}
	switch {
	case t.Name == "":
		return invalid("name is empty")
	case t.Nickname == "":
		return invalid("nickname is empty")
	case t.Description == "":
		return invalid("description is empty")
	case !colorPattern.MatchString(t.Color):
		return invalid(fmt.Sprintf("color %q is not a #RRGGBB value", t.Color))
	}
	if err := validateWords("traits", t.Traits); err != nil {
		return invalid(err.Error())
	}
	if err := validateWords("strengths", t.Strengths); err != nil {
		return invalid(err.Error())
	}
	return nil
}

func validateWords(field string, words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%s is empty", field)
	}
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("%s[%d] is empty", field, i)
		}
	}
	return nil
}

// normalizeCode upper-cases input with full Unicode case mapping. A Caser
// keeps state, so one is created per call.
func normalizeCode(code string) Code {
	return Code(cases.Upper(language.Und).String(code))
}

// Lookup returns the type whose code equals code after upper-casing.
// Surrounding whitespace is not trimmed. The second result is false when
// nothing matches; this is the only failure mode.
func (r *Registry) Lookup(code string) (Type, bool) {
	idx, ok := r.byCode[normalizeCode(code)]
	if !ok {
		registryLookups.WithLabelValues(lookupResultMiss).Inc()
		return Type{}, false
	}
	registryLookups.WithLabelValues(lookupResultHit).Inc()
	return r.types[idx].Clone(), true
}

// All returns copies of every type in catalog order. The order is stable for
// the life of the process but carries no meaning.
func (r *Registry) All() []Type {
	registryEnumerations.Inc()
	out := make([]Type, len(r.types))
	for i, t := range r.types {
		out[i] = t.Clone()
	}
	return out
}

// Codes returns the codes of every type in catalog order.
func (r *Registry) Codes() []Code {
	out := make([]Code, len(r.types))
	for i, t := range r.types {
		out[i] = t.Code
	}
	return out
}

// Len returns the number of types in the registry.
func (r *Registry) Len() int {
	return len(r.types)
}
