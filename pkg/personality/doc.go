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

// Package personality holds the catalog of the sixteen MBTI personality types.
//
// # Overview
//
// The catalog is a fixed table shipped inside the binary (data/types.yaml,
// embedded with go:embed). It is decoded and validated once, on first use,
// and is read-only afterwards. There is no way to add, remove or edit a type
// at runtime.
//
// # Lookup
//
// Lookup upper-cases its argument with full Unicode case mapping and matches
// it exactly against the sixteen codes. It never trims whitespace and never
// returns an error:
//
//	t, ok := personality.Lookup("intj")
//	// ok == true, t.Name == "Architect"
//
//	_, ok = personality.Lookup(" INTJ")
//	// ok == false
//
// # Enumeration
//
// All returns every type in catalog order. The order is stable within a
// process and is meant for display only. Each call returns fresh copies, so
// callers may modify the result freely.
//
// # Codes
//
// A Code decomposes into four Preferences, one per Dichotomy:
//
//	prefs, _ := personality.Code("INTJ").Preferences()
//	// I Introversion, N Intuition, T Thinking, J Judging
//
// CanonicalCodes lists the sixteen valid codes independent of the catalog
// data; the catalog loader uses it to check the data set is complete.
//
// # Metrics
//
// Lookups (by hit/miss), enumerations and the catalog load time are exported
// as Prometheus metrics on the default registerer.
package personality
