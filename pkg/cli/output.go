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
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/DaRainFlavor/mbti-quiz/pkg/defaults"
	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
	"github.com/DaRainFlavor/mbti-quiz/pkg/header"
	"github.com/DaRainFlavor/mbti-quiz/pkg/personality"
	"github.com/DaRainFlavor/mbti-quiz/pkg/serializer"
)

// formatCard selects the lipgloss card rendering of `mbti get`.
const formatCard = "card"

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag(defaultFormat string, extra ...string) *cli.StringFlag {
	supported := append(slices.Clone(extra), serializer.SupportedFormats()...)
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   defaultFormat,
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(supported, ", ")),
	}
}

// CatalogDocument is the output of `mbti list`.
type CatalogDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Types []personality.Type `json:"types" yaml:"types"`
}

// TypeDocument is the structured output of `mbti get`.
type TypeDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Type        personality.Type         `json:"type" yaml:"type"`
	Preferences []personality.Preference `json:"preferences" yaml:"preferences"`
}

// parseOutputFormat reads the --format flag as a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// serialize writes v to --output, or to the root command's writer when no
// output path is set.
func serialize(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	var (
		w   *serializer.Writer
		err error
	)
	if path := cmd.String("output"); path != "" {
		w, err = serializer.NewFileWriter(format, path)
		if err != nil {
			return err
		}
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	return w.Serialize(ctx, v)
}

// writeText writes text followed by a newline to --output or the root writer.
func writeText(cmd *cli.Command, text string) error {
	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(text+"\n"), defaults.OutputFileMode); err != nil {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
				"failed to write output file", err, map[string]any{"path": path})
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.Root().Writer, text)
	return err
}
