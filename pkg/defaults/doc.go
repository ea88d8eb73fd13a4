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

// Package defaults provides centralized configuration constants for the mbti tool.
//
// Output formats, card layout and file permissions used by the CLI live
// here so the commands and their help text agree.
//
// # Usage
//
//	import "github.com/DaRainFlavor/mbti-quiz/pkg/defaults"
//
//	card := render.CardWithWidth(t, prefs, defaults.CardWidth)
package defaults
