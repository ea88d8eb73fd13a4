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

// Package header provides the envelope written in front of every document the
// mbti tool emits.
//
// A Header follows Kubernetes-style conventions with Kind, APIVersion and a
// flat Metadata map:
//
//	apiVersion: mbti.darainflavor.io/v1
//	kind: PersonalityCatalog
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.1.0
//
// The embedded catalog file uses the same apiVersion and kind fields, so the
// output of `mbti list --format yaml` has the same shape as the data it was
// built from.
package header
