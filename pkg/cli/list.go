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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/DaRainFlavor/mbti-quiz/pkg/defaults"
	"github.com/DaRainFlavor/mbti-quiz/pkg/header"
	"github.com/DaRainFlavor/mbti-quiz/pkg/personality"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "Print all sixteen personality types",
		Description: `Print every personality type in the catalog.

Types are printed in catalog order. The order is only for display and does
not rank the types.

Examples:
  mbti list
  mbti list --format json --output types.json`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(defaults.ListFormat),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			doc := CatalogDocument{Types: personality.All()}
			doc.Init(header.KindPersonalityCatalog, version,
				header.WithMetadata("count", fmt.Sprint(len(doc.Types))))

			return serialize(ctx, cmd, outFormat, doc)
		},
	}
}
