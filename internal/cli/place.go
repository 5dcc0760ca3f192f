package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/pipeline"
)

// placeCommand creates the place command, which prints the computed label
// placement without drawing anything.
func (c *CLI) placeCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "place [chart]",
		Short: "Show where each end label lands and why",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := flags.load(cmd, args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			lr, err := runner.ComputeLayout(cmd.Context(), pipeline.Options{Chart: ch, Logger: c.Logger})
			if err != nil {
				return err
			}

			l := lr.Scene.Layout
			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render(placementTitle(ch.Title, args[0])))
			fmt.Fprintln(cmd.OutOrStdout(), placementTable(l))
			fmt.Fprintln(cmd.OutOrStdout(), attemptsLine(l.Placement))
			if l.Sets.FocusMode {
				fmt.Fprintln(cmd.OutOrStdout(), StyleDim.Render("focus: "+strings.Join(renderKeys(l.Sets.Focus), ", ")))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func placementTitle(title, path string) string {
	if title != "" {
		return title
	}
	return path
}

// sortedByTarget returns the placed marks ordered top to bottom by target y.
func sortedByTarget(marks []legend.PlacedMark) []legend.PlacedMark {
	out := slices.Clone(marks)
	slices.SortStableFunc(out, func(a, b legend.PlacedMark) int {
		return cmp.Compare(a.TargetY, b.TargetY)
	})
	return out
}

// placementTable renders one row per label, top to bottom.
func placementTable(l *legend.Layout) string {
	marks := sortedByTarget(l.Placement.Marks)

	rows := make([][]string, 0, len(marks))
	for _, m := range marks {
		label := ""
		if len(m.Mark.Text.Lines) > 0 {
			label = m.Mark.Text.Lines[0]
			if len(m.Mark.Text.Lines) > 1 {
				label += " …"
			}
		}
		overlap := ""
		if m.IsOverlap {
			overlap = "yes"
		}
		rows = append(rows, []string{
			m.Key(),
			label,
			formatPx(m.TargetY),
			formatPx(m.Bounds.CenterY()),
			formatShift(m.Bounds.Y - m.OrigBounds.Y),
			strconv.Itoa(m.Repositions),
			fmt.Sprintf("%d/%d", m.GroupPosition, m.GroupSize),
			overlap,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Label", "Target", "Center", "Shift", "Pushes", "Group", "Overlap").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(marks) {
				return base
			}
			switch {
			case marks[row].IsOverlap:
				return base.Foreground(colorYellow)
			case !marks[row].Moved():
				return base.Foreground(colorGray)
			case col == 0:
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

// attemptsLine summarizes which strategies ran and what each left overlapping.
func attemptsLine(p legend.Placement) string {
	if len(p.Attempts) == 0 {
		return StyleDim.Render("no labels to place")
	}
	parts := make([]string, len(p.Attempts))
	for i, a := range p.Attempts {
		s := fmt.Sprintf("%s: %d overlapping", a.Strategy, a.Overlaps)
		if a.Strategy == p.Strategy {
			s = StyleSuccess.Render(s + " ✓")
		} else {
			s = StyleDim.Render(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, StyleDim.Render("  →  "))
}

func renderKeys(marks []legend.RenderMark) []string {
	keys := make([]string, len(marks))
	for i, m := range marks {
		keys[i] = m.Key
	}
	return keys
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatShift(d float64) string {
	if d == 0 {
		return "0"
	}
	return fmt.Sprintf("%+.1f", d)
}
