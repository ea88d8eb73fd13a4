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

// Code is a four-letter personality type code such as "INTJ".
type Code string

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// Dichotomy is one of the four letter positions of a Code.
type Dichotomy string

const (
	// DichotomyEnergy is position 1: Extraversion (E) or Introversion (I).
	DichotomyEnergy Dichotomy = "Energy"
	// DichotomyInformation is position 2: Sensing (S) or Intuition (N).
	DichotomyInformation Dichotomy = "Information"
	// DichotomyDecisions is position 3: Thinking (T) or Feeling (F).
	DichotomyDecisions Dichotomy = "Decisions"
	// DichotomyLifestyle is position 4: Judging (J) or Perceiving (P).
	DichotomyLifestyle Dichotomy = "Lifestyle"
)

// Preference is one letter of a Code together with what it stands for.
type Preference struct {
	Letter    string    `json:"letter" yaml:"letter"`
	Name      string    `json:"name" yaml:"name"`
	Dichotomy Dichotomy `json:"dichotomy" yaml:"dichotomy"`
}

// dichotomies lists the letter pairs in code position order. Within a pair
// the letters are kept in alphabetical order so CanonicalCodes comes out sorted.
var dichotomies = [4]struct {
	dichotomy Dichotomy
	pair      [2]Preference
}{
	{DichotomyEnergy, [2]Preference{
		{Letter: "E", Name: "Extraversion", Dichotomy: DichotomyEnergy},
		{Letter: "I", Name: "Introversion", Dichotomy: DichotomyEnergy},
	}},
	{DichotomyInformation, [2]Preference{
		{Letter: "N", Name: "Intuition", Dichotomy: DichotomyInformation},
		{Letter: "S", Name: "Sensing", Dichotomy: DichotomyInformation},
	}},
	{DichotomyDecisions, [2]Preference{
		{Letter: "F", Name: "Feeling", Dichotomy: DichotomyDecisions},
		{Letter: "T", Name: "Thinking", Dichotomy: DichotomyDecisions},
	}},
	{DichotomyLifestyle, [2]Preference{
		{Letter: "J", Name: "Judging", Dichotomy: DichotomyLifestyle},
		{Letter: "P", Name: "Perceiving", Dichotomy: DichotomyLifestyle},
	}},
}

// Dichotomies returns the four dichotomies in code position order.
func Dichotomies() []Dichotomy {
	out := make([]Dichotomy, 0, len(dichotomies))
	for _, d := range dichotomies {
		out = append(out, d.dichotomy)
	}
	return out
}

// CanonicalCodes returns the sixteen valid codes in alphabetical order.
func CanonicalCodes() []Code {
	codes := []Code{""}
	for _, d := range dichotomies {
		next := make([]Code, 0, len(codes)*2)
		for _, prefix := range codes {
			for _, p := range d.pair {
				next = append(next, prefix+Code(p.Letter))
			}
		}
		codes = next
	}
	return codes
}

// Preferences decomposes c into its four preferences in position order.
// It returns false when c is not a canonical code.
func (c Code) Preferences() ([]Preference, bool) {
	if len(c) != len(dichotomies) {
		return nil, false
	}
	prefs := make([]Preference, 0, len(dichotomies))
	for i, d := range dichotomies {
		letter := string(c[i])
		idx := slices.IndexFunc(d.pair[:], func(p Preference) bool {
			return p.Letter == letter
		})
		if idx < 0 {
			return nil, false
		}
		prefs = append(prefs, d.pair[idx])
	}
	return prefs, true
}

// IsValid reports whether c is exactly one of the sixteen canonical codes.
// No case folding is applied.
func (c Code) IsValid() bool {
	_, ok := c.Preferences()
	return ok
}
