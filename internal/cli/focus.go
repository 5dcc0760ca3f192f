package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/pipeline"
)

// focusCommand creates the focus command: an interactive picker that
// searches series by label, toggles them into the focus set and previews
// how the legend splits into focused and background labels.
func (c *CLI) focusCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "focus [chart]",
		Short: "Pick focused series interactively",
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

			model := newFocusModel(ch, lr.Scene.Layout.Placement, legend.Callbacks{
				OnMouseOver: func(key string) { c.Logger.Debug("hover", "key", key) },
				OnClick:     func(key string) { c.Logger.Debug("toggle", "key", key) },
			})
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			m := final.(focusModel)
			if !m.saved {
				printInfo("Focus unchanged")
				return nil
			}
			keys := m.focusKeys()
			if len(keys) == 0 {
				printSuccess("Cleared focus")
			} else {
				printSuccess("Focus: %s", strings.Join(keys, ", "))
			}
			printNextStep("Render with this focus", fmt.Sprintf("%s render %s --focus=%s", appName, args[0], strings.Join(keys, ",")))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// Focus picker styles
var (
	focusSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	focusNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	focusDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	focusOnStyle       = lipgloss.NewStyle().Foreground(colorGreen)
)

const focusMaxResults = 8

// focusState is shared by the model and its callbacks so toggles survive
// bubbletea's value-copy updates.
type focusState struct {
	focus map[string]bool
	hover string
}

// focusModel is the bubbletea model behind the focus command.
type focusModel struct {
	series    []chart.Series
	placement legend.Placement
	callbacks legend.Callbacks

	state   *focusState
	query   string
	results []chart.Match
	cursor  int
	saved   bool
}

// newFocusModel builds a picker over c's series. Extra callbacks run after
// the picker's own handling of each event.
func newFocusModel(c *chart.Chart, p legend.Placement, extra legend.Callbacks) focusModel {
	state := &focusState{focus: make(map[string]bool)}
	for _, k := range c.Focus {
		state.focus[k] = true
	}
	extra = extra.WithDefaults()

	m := focusModel{
		series:    c.Series,
		placement: p,
		state:     state,
		callbacks: legend.Callbacks{
			OnMouseOver: func(key string) {
				state.hover = key
				extra.OnMouseOver(key)
			},
			OnClick: func(key string) {
				if state.focus[key] {
					delete(state.focus, key)
				} else {
					state.focus[key] = true
				}
				extra.OnClick(key)
			},
			OnMouseLeave: func() {
				state.hover = ""
				extra.OnMouseLeave()
			},
		},
	}
	m.search()
	return m
}

// search refreshes the result list for the current query. An empty query
// lists every series in chart order.
func (m *focusModel) search() {
	if strings.TrimSpace(m.query) == "" {
		m.results = make([]chart.Match, len(m.series))
		for i, s := range m.series {
			m.results[i] = chart.Match{Key: s.Key, Label: s.Label}
		}
	} else {
		m.results = chart.Search(m.series, m.query)
	}
	m.cursor = 0
	m.hoverCursor()
}

func (m *focusModel) hoverCursor() {
	if m.cursor < len(m.results) {
		m.callbacks.OnMouseOver(m.results[m.cursor].Key)
		return
	}
	m.callbacks.OnMouseLeave()
}

// focusKeys returns the focused keys in series order.
func (m focusModel) focusKeys() []string {
	keys := make([]string, 0, len(m.state.focus))
	for _, s := range m.series {
		if m.state.focus[s.Key] {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// sets partitions the placement with the current focus keys.
func (m focusModel) sets() legend.RenderSets {
	return legend.Partition(m.placement, m.focusKeys())
}

func (m focusModel) Init() tea.Cmd {
	return nil
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlS:
		m.saved = true
		return m, tea.Quit
	case tea.KeyEsc:
		if m.query == "" {
			return m, tea.Quit
		}
		m.query = ""
		m.search()
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.hoverCursor()
		}
	case tea.KeyDown:
		if m.cursor < len(m.results)-1 {
			m.cursor++
			m.hoverCursor()
		}
	case tea.KeyEnter:
		if m.cursor < len(m.results) {
			m.callbacks.OnClick(m.results[m.cursor].Key)
		}
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m.search()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(key.Runes)
		m.search()
	}
	return m, nil
}

func (m focusModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Focus Series"))
	b.WriteString("\n")
	b.WriteString(focusDimStyle.Render("type to search  ↑/↓ move  ⏎ toggle  ctrl+s save  esc quit"))
	b.WriteString("\n\n")
	b.WriteString(StyleNumber.Render(iconInfo) + " " + m.query + focusDimStyle.Render("▏"))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(focusDimStyle.Render("  no matching series"))
		b.WriteString("\n")
	}
	for i, r := range m.results {
		if i == focusMaxResults {
			b.WriteString(focusDimStyle.Render(fmt.Sprintf("  … %d more", len(m.results)-focusMaxResults)))
			b.WriteString("\n")
			break
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := focusDimStyle.Render("○")
		if m.state.focus[r.Key] {
			mark = focusOnStyle.Render("●")
		}
		line := fmt.Sprintf("%s %-20s %s", mark, r.Label, focusDimStyle.Render(r.Key))
		if i == m.cursor {
			b.WriteString(focusSelectedStyle.Render(cursor) + line)
		} else {
			b.WriteString(cursor + focusNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.previewView())
	return b.String()
}

// previewView lists which labels would be drawn as focus and which as
// background with the current selection.
func (m focusModel) previewView() string {
	sets := m.sets()
	var b strings.Builder
	b.WriteString(focusDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	mode := "off"
	if sets.FocusMode {
		mode = "on"
	}
	b.WriteString(fmt.Sprintf("focus mode %s  %s\n",
		StyleValue.Render(mode),
		focusDimStyle.Render(fmt.Sprintf("%d focus · %d background", len(sets.Focus), len(sets.Background)))))

	for _, rm := range sets.Focus {
		label := strings.Join(rm.Lines, " ")
		style := focusNormalStyle
		if rm.Color != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(rm.Color))
		}
		if rm.Key == m.state.hover {
			style = style.Bold(true).Underline(true)
		}
		b.WriteString("  " + style.Render(label))
		if rm.IsOverlap {
			b.WriteString(" " + StyleWarning.Render("overlapping"))
		}
		b.WriteString("\n")
	}
	if sets.FocusMode && len(sets.Background) > 0 {
		keys := renderKeys(sets.Background)
		slices.Sort(keys)
		b.WriteString(focusDimStyle.Render("  dimmed: " + strings.Join(keys, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
