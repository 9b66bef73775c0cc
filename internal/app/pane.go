package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/dockpane/dockpane/internal/theme"
)

// Pane is the stock component instance attached to component leaves. Hosts
// embedding the engine supply their own component builders; dockpane's
// default pane just renders its name, geometry and any lines pushed into it.
type Pane struct {
	Name  string
	Lines []string
}

// NewPane returns a pane for the named component.
func NewPane(name string) *Pane {
	return &Pane{Name: name}
}

// Append adds a line to the pane body, keeping a bounded scrollback.
func (p *Pane) Append(line string) {
	p.Lines = append(p.Lines, line)
	if len(p.Lines) > 200 {
		p.Lines = p.Lines[len(p.Lines)-200:]
	}
}

// Body renders the pane interior at the given content size.
func (p *Pane) Body(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	lines := p.Lines
	if len(lines) == 0 {
		lines = []string{fmt.Sprintf("%s  %dx%d", p.Name, width, height)}
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	style := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Foreground(theme.PaneFg())
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(line)
	}
	return strings.Join(out, "\n")
}

// ComponentBuilder constructs a component instance for a named leaf.
type ComponentBuilder func(name string) any

// defaultComponentBuilder backs every component name with a stock pane.
func defaultComponentBuilder(name string) any {
	return NewPane(name)
}
