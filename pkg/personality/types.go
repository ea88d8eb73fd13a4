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

import "slices"

// Type is the descriptive record for one of the sixteen personality types.
// Values handed out by the registry are copies; mutating one never changes
// the registry.
type Type struct {
	// Code is the canonical uppercase four-letter code, e.g. "INTJ".
	Code Code `json:"code" yaml:"code"`

	// Name is the archetype label, e.g. "Architect".
	Name string `json:"name" yaml:"name"`

	// Nickname is a secondary label, e.g. "The Mastermind".
	Nickname string `json:"nickname" yaml:"nickname"`

	// Description is a short prose summary.
	Description string `json:"description" yaml:"description"`

	// Traits are short trait words in display order.
	Traits []string `json:"traits" yaml:"traits"`

	// Strengths are short strength words in display order.
	Strengths []string `json:"strengths" yaml:"strengths"`

	// Color is the display color as a #RRGGBB hex string.
	Color string `json:"color" yaml:"color"`
}

// Clone returns a deep copy of t.
func (t Type) Clone() Type {
	t.Traits = slices.Clone(t.Traits)
	t.Strengths = slices.Clone(t.Strengths)
	return t
}

// Equal reports whether t and o hold the same values in every field.
func (t Type) Equal(o Type) bool {
	return t.Code == o.Code &&
		t.Name == o.Name &&
		t.Nickname == o.Nickname &&
		t.Description == o.Description &&
		t.Color == o.Color &&
		slices.Equal(t.Traits, o.Traits) &&
		slices.Equal(t.Strengths, o.Strengths)
}
