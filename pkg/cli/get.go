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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/DaRainFlavor/mbti-quiz/pkg/defaults"
	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
	"github.com/DaRainFlavor/mbti-quiz/pkg/header"
	"github.com/DaRainFlavor/mbti-quiz/pkg/personality"
	"github.com/DaRainFlavor/mbti-quiz/pkg/render"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Print one personality type by its four-letter code",
		ArgsUsage:             "CODE",
		Description: `Look up a personality type by code, e.g. INTJ.

The code is matched case-insensitively but otherwise exactly; extra letters
do not match. The argument parser trims surrounding whitespace from
arguments, so pass the code after -- to have it looked up verbatim.

Examples:
  mbti get intj
  mbti get --format json ESFP
  mbti get -- INTJ`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(defaults.GetFormat, formatCard),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
					"expected exactly one personality type code",
					map[string]any{"args": cmd.Args().Slice()})
			}
			code := cmd.Args().First()

			t, ok := personality.Lookup(code)
			if !ok {
				return cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
					"personality type not found: "+code,
					map[string]any{"code": code, "known": personality.Codes()})
			}
			slog.Debug("personality type found", "input", code, "code", t.Code)

			prefs, _ := t.Code.Preferences()

			if strings.EqualFold(cmd.String("format"), formatCard) {
				return writeText(cmd, render.Card(t, prefs))
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			doc := TypeDocument{Type: t, Preferences: prefs}
			doc.Init(header.KindPersonalityType, version)

			return serialize(ctx, cmd, outFormat, doc)
		},
	}
}
