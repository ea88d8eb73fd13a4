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

package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/DaRainFlavor/mbti-quiz/pkg/personality"
)

func codesCmd() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "Print the sixteen type codes, one per line",
		Flags: []cli.Flag{
			outputFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			codes := personality.Codes()
			lines := make([]string, len(codes))
			for i, c := range codes {
				lines[i] = c.String()
			}
			return writeText(cmd, strings.Join(lines, "\n"))
		},
	}
}
