package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seedbed/namesprout/flower"
	"github.com/seedbed/namesprout/stem"
)

var printCmd = &cobra.Command{
	Use:   "print [name]",
	Short: "Render a name's stem letters to stdout",
	Long: `print renders the same stem-letter garden the interactive mode shows,
once, as styled text. Useful for piping or sharing a design.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		name := stem.Normalize(strings.Join(args, " "))
		fmt.Fprint(cmd.OutOrStdout(), Sprout(name, flower.ForMonth(cfg.Month)))
		return nil
	},
}

// Sprout renders name as a styled multi-line garden. An empty name yields
// an empty string.
func Sprout(name string, f flower.Flower) string {
	letters := stem.Build(name)
	if len(letters) == 0 {
		return ""
	}

	blossom := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Blossom)).Bold(true)
	stemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Stem))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a")).Italic(true)

	var glyphs, row, stalks strings.Builder
	for i, l := range letters {
		if i > 0 {
			glyphs.WriteByte(' ')
			row.WriteByte(' ')
			stalks.WriteByte(' ')
		}
		if l.Anchor {
			glyphs.WriteString(blossom.Render(string(f.Glyph)))
			row.WriteString(blossom.Render(string(l.Rune)))
		} else {
			glyphs.WriteByte(' ')
			row.WriteString(stemStyle.Render(string(l.Rune)))
		}
		stalks.WriteString(stemStyle.Render(string(stalkGlyph(l.Rune))))
	}

	return glyphs.String() + "\n" +
		row.String() + "\n" +
		stalks.String() + "\n" +
		dim.Render(f.Name) + "\n"
}

// stalkGlyph keeps word gaps open: spaces grow no stalk.
func stalkGlyph(r rune) rune {
	if r == ' ' {
		return ' '
	}
	return '│'
}
