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

package defaults

import "os"

// Output defaults for CLI commands.
const (
	// ListFormat is the default --format of `mbti list`.
	ListFormat = "yaml"

	// GetFormat is the default --format of `mbti get`.
	GetFormat = "card"

	// OutputFileMode is the permission of files written with --output.
	OutputFileMode os.FileMode = 0o644
)

// Card layout.
const (
	// CardWidth is the width of a rendered card including its padding.
	CardWidth = 72

	// CardLabelWidth is the width of the label column inside a card.
	CardLabelWidth = 13
)

// LogLevel is the default --log-level.
const LogLevel = "info"
