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

// Package render draws personality types as terminal cards.
//
// Cards are plain strings styled with lipgloss. The record's own color is
// used for the border and title; when stdout is not a terminal lipgloss drops
// the color codes and the card degrades to bordered plain text.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaRainFlavor/mbti-quiz/pkg/defaults"
	"github.com/DaRainFlavor/mbti-quiz/pkg/personality"
)

// DefaultWidth is the card width used by Card.
const DefaultWidth = defaults.CardWidth

const labelWidth = defaults.CardLabelWidth

// Styles groups the lipgloss styles of a card.
type Styles struct {
	Width    int
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
}

// NewStyles returns card styles accented with color, a #RRGGBB string.
func NewStyles(color string, width int) Styles {
	accent := lipgloss.Color(color)
	return Styles{
		Width: width,
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(width),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Italic(true),
		Label: lipgloss.NewStyle().
			Bold(true).
			Width(labelWidth),
		Body: lipgloss.NewStyle(),
	}
}

// Card renders t at DefaultWidth. prefs is usually the result of
// t.Code.Preferences(); a nil slice omits the preference rows.
func Card(t personality.Type, prefs []personality.Preference) string {
	return CardWithWidth(t, prefs, DefaultWidth)
}

// CardWithWidth renders t inside a frame of the given width.
func CardWithWidth(t personality.Type, prefs []personality.Preference, width int) string {
	s := NewStyles(t.Color, width)

	rows := []string{
		s.Title.Render(fmt.Sprintf("%s · %s", t.Code, t.Name)),
		s.Subtitle.Render(t.Nickname),
		"",
		s.Body.Render(t.Description),
		"",
		row(s, "Traits", strings.Join(t.Traits, ", ")),
		row(s, "Strengths", strings.Join(t.Strengths, ", ")),
		row(s, "Color", t.Color),
	}
	if len(prefs) > 0 {
		rows = append(rows, "")
		rows = append(rows, preferenceRows(s, prefs)...)
	}

	return s.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(s Styles, label, value string) string {
	// frame padding is one cell on each side
	valueWidth := max(s.Width-2-labelWidth, 1)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Label.Render(label),
		s.Body.Width(valueWidth).Render(value))
}

// preferenceRows labels each preference with its dichotomy, in code
// position order.
func preferenceRows(s Styles, prefs []personality.Preference) []string {
	rows := make([]string, 0, len(prefs))
	for _, d := range personality.Dichotomies() {
		idx := slices.IndexFunc(prefs, func(p personality.Preference) bool {
			return p.Dichotomy == d
		})
		if idx < 0 {
			continue
		}
		rows = append(rows, row(s, string(d), prefs[idx].Letter+" "+prefs[idx].Name))
	}
	return rows
}
