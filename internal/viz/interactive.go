package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjun-sk/cellsym/internal/battery"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	paneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// browseEntry is one selectable row: an equation unknown or a derived
// variable.
type browseEntry struct {
	name       string
	isEquation bool
}

// Browser is a bubbletea model for walking a composed model's contents.
type Browser struct {
	model   *battery.Model
	entries []browseEntry
	cursor  int
	width   int
	height  int
}

func NewBrowser(m *battery.Model) *Browser {
	entries := make([]browseEntry, 0, len(m.EquationNames())+len(m.VariableNames()))
	for _, name := range m.EquationNames() {
		entries = append(entries, browseEntry{name: name, isEquation: true})
	}
	for _, name := range m.VariableNames() {
		entries = append(entries, browseEntry{name: name})
	}
	return &Browser{model: m, entries: entries, width: 80, height: 24}
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		case "g":
			b.cursor = 0
		case "G":
			b.cursor = len(b.entries) - 1
		}
	}
	return b, nil
}

func (b *Browser) View() string {
	if len(b.entries) == 0 {
		return dimStyle.Render("empty model")
	}

	var list strings.Builder
	list.WriteString(headerStyle.Render(b.model.Name()) + "\n\n")

	// Keep the cursor visible in a window of rows.
	visible := b.height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if b.cursor >= visible {
		start = b.cursor - visible + 1
	}
	end := start + visible
	if end > len(b.entries) {
		end = len(b.entries)
	}

	for i := start; i < end; i++ {
		e := b.entries[i]
		tag := "var"
		if e.isEquation {
			eq, _ := b.model.Equation(e.name)
			tag = eq.Kind.String()
		}
		line := fmt.Sprintf("[%s] %s", tag, e.name)
		if i == b.cursor {
			list.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			list.WriteString(dimStyle.Render("  "+line) + "\n")
		}
	}

	detail := b.detailPane(b.entries[b.cursor])
	help := dimStyle.Render("\nj/k move · g/G jump · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, list.String(), paneStyle.Render(detail), help)
}

func (b *Browser) detailPane(e browseEntry) string {
	var d strings.Builder

	role, _ := b.model.Provenance(e.name)
	d.WriteString(valueStyle.Render(e.name) + "\n")
	d.WriteString(dimStyle.Render("published by: ") + role + "\n")

	if e.isEquation {
		eq, _ := b.model.Equation(e.name)
		d.WriteString(dimStyle.Render("kind: ") + eq.Kind.String() + "\n")
		d.WriteString(dimStyle.Render("equation: ") + truncate(eq.Expr.String(), b.width-16) + "\n")
		if ic, ok := b.model.InitialCondition(e.name); ok {
			d.WriteString(dimStyle.Render("initial: ") + truncate(ic.String(), b.width-16) + "\n")
		}
		if bc, ok := b.model.BoundaryConditions(e.name); ok {
			d.WriteString(dimStyle.Render("left bc: ") + bc.Left.Kind.String() + " " + truncate(bc.Left.Value.String(), b.width-28) + "\n")
			d.WriteString(dimStyle.Render("right bc: ") + bc.Right.Kind.String() + " " + truncate(bc.Right.Value.String(), b.width-28) + "\n")
		}
	} else if v, ok := b.model.VariableDefinition(e.name); ok {
		d.WriteString(dimStyle.Render("defined as: ") + truncate(v.Expr.String(), b.width-16) + "\n")
	}

	return d.String()
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// RunBrowser starts the interactive browser over a composed model.
func RunBrowser(m *battery.Model) error {
	p := tea.NewProgram(NewBrowser(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
