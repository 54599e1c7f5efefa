// Path: internal/tui/view.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/internal/view"
)

const statBarMax = 30

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.screen {
	case screenLoading:
		return fmt.Sprintf("\n %s Loading catalog...\n\n%s", m.spinner.View(), mutedStyle.Render(" q quit"))
	case screenFailed:
		return renderLoadError(m.loadErr)
	case screenDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func renderLoadError(err error) string {
	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(errorStyle.Render("Error loading data. Restart to try again."))
	if err != nil {
		b.WriteString("\n ")
		b.WriteString(mutedStyle.Render(err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(" q quit"))
	return b.String()
}

func (m *Model) viewList() string {
	listing := view.FromState(m.state)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pokédex"))
	b.WriteString("\n")
	b.WriteString(renderControls(listing.Query))
	b.WriteString("\n")
	if m.input != inputNone {
		label := "search"
		if m.input == inputTypes {
			label = "types"
		}
		b.WriteString(accentStyle.Render(label+": ") + m.textInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(listing.Cards) == 0 {
		b.WriteString(mutedStyle.Render("  No Pokémon match these filters."))
		b.WriteString("\n")
	}
	for i, c := range listing.Cards {
		b.WriteString(renderRow(c, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderPager(listing))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("/ search  g generation  t types  s sort  r reset  ←/→ page  enter details  q quit"))
	return b.String()
}

func renderControls(q view.QueryEcho) string {
	gen := "all"
	if q.Generation != "" {
		gen = q.Generation
	}
	types := "any"
	if len(q.Types) > 0 {
		types = strings.Join(q.Types, "+")
	}
	text := q.Text
	if text == "" {
		text = "-"
	}
	return mutedStyle.Render(fmt.Sprintf("search %s · gen %s · types %s · sort %s", text, gen, types, sortLabel(q.Sort)))
}

func sortLabel(v string) string {
	for _, o := range view.SortOptions() {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

func renderRow(c view.Card, selected bool) string {
	types := make([]string, len(c.Types))
	for i, t := range c.Types {
		types[i] = view.Title(t)
	}
	line := fmt.Sprintf("%-6s %-16s", c.Number, c.Title)
	if selected {
		return accentStyle.Render("> ") + selectedStyle.Render(line) + " " + typeStyle.Render(strings.Join(types, ", "))
	}
	return "  " + rowStyle.Render(line) + " " + typeStyle.Render(strings.Join(types, ", "))
}

func renderPager(l view.Listing) string {
	prev := disabledStyle.Render("← prev")
	if l.HasPrev {
		prev = accentStyle.Render("← prev")
	}
	next := disabledStyle.Render("next →")
	if l.HasNext {
		next = accentStyle.Render("next →")
	}
	return prev + "  " + l.Status + "  " + next
}

func (m *Model) viewDetail() string {
	card := view.NewCard(m.detailFor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(card.Number + " " + card.Title))
	b.WriteString("\n")
	types := make([]string, len(card.Types))
	for i, t := range card.Types {
		types[i] = view.Title(t)
	}
	b.WriteString(typeStyle.Render(strings.Join(types, " · ")))
	b.WriteString("\n")
	if card.SpriteURL != "" {
		b.WriteString(mutedStyle.Render(card.SpriteURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.detailLoading:
		b.WriteString(m.spinner.View() + " Fetching stats...")
	case m.detailErr != nil:
		b.WriteString(errorStyle.Render("Could not load the details for this Pokémon."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.detailErr.Error()))
	case m.detail != nil:
		b.WriteString(cardStyle.Render(renderStats(view.NewDetail(*m.detail))))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("esc back  q quit"))
	return b.String()
}

func renderStats(d view.Detail) string {
	rows := make([]string, 0, len(d.Stats)+1)
	for _, s := range d.Stats {
		rows = append(rows, fmt.Sprintf("%-16s %3d %s", s.Label, s.Base, accentStyle.Render(statBar(s.Base))))
	}
	rows = append(rows, selectedStyle.Render(fmt.Sprintf("%-16s %3d", "Total", d.Total)))
	return strings.Join(rows, "\n")
}

// statBar scales a base stat (at most 255) to statBarMax cells.
func statBar(base int) string {
	n := base * statBarMax / 255
	if n < 0 {
		n = 0
	}
	if n > statBarMax {
		n = statBarMax
	}
	return strings.Repeat("█", n)
}
