// Package viz renders composed models for the terminal: a styled summary,
// property plots and an interactive browser.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arjun-sk/cellsym/internal/battery"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	diffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	algStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	roleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true).MarginTop(1)
)

// Summary renders a composed model as a styled multi-section report.
func Summary(m *battery.Model) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.Name()) + "\n\n")

	opts := m.Options()
	optionRows := []struct{ label, value string }{
		{"particle", string(opts.Particle)},
		{"surface form", string(opts.SurfaceForm)},
		{"dimensionality", fmt.Sprintf("%d", opts.Dimensionality)},
		{"convection", string(opts.Convection)},
		{"thermal", string(opts.Thermal)},
		{"current collector", string(opts.CurrentCollector)},
		{"porosity", string(opts.Porosity)},
	}
	for _, row := range optionRows {
		b.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("equations (%d)", len(m.EquationNames()))) + "\n")
	for _, name := range m.EquationNames() {
		eq, _ := m.Equation(name)
		kind := algStyle.Render("[algebraic]   ")
		if eq.Kind == battery.Differential {
			kind = diffStyle.Render("[differential]")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", kind, valueStyle.Render(name), roleStyle.Render("<- "+eq.Role)))
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("derived variables (%d)", len(m.VariableNames()))) + "\n")
	for _, name := range m.VariableNames() {
		v, _ := m.VariableDefinition(name)
		b.WriteString(fmt.Sprintf("  %s %s\n", valueStyle.Render(name), roleStyle.Render("<- "+v.Role)))
	}

	return b.String()
}
