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

// Package serializer writes mbti documents as JSON, YAML or a flat table.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, two-space indented
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, same field names as JSON
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - FIELD/VALUE rows sorted by key
//   - Nested values flattened into dotted keys named after their json tags,
//     e.g. `types.[0].code`
//
// # Usage
//
//	writer, err := serializer.NewFileWriter(serializer.FormatYAML, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close() // releases the file handle, no-op for stdout
//	if err := writer.Serialize(ctx, doc); err != nil {
//		return err
//	}
//
// An empty path writes to stdout.
package serializer
