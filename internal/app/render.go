package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/dockpane/dockpane/internal/config"
	"github.com/dockpane/dockpane/internal/layout"
	"github.com/dockpane/dockpane/internal/theme"
)

// getBorder maps the configured border style onto a lipgloss border.
func (m *Desk) getBorder() lipgloss.Border {
	switch m.Config.Appearance.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// borderColorFor picks the border color of a component pane.
func (m *Desk) borderColorFor(n *layout.Node, floating bool) color.Color {
	switch {
	case n == m.focused && n.Maximised():
		return theme.BorderMaximised()
	case n == m.focused:
		return theme.BorderFocused()
	case floating:
		return theme.BorderFloating()
	default:
		return theme.BorderUnfocused()
	}
}

// GetCanvas composes the whole screen: docked panes, tab strips, floating
// panes, the status bar and the help overlay.
func (m *Desk) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()
	var layers []*lipgloss.Layer

	layers = append(layers, m.treeLayers(m.Tree.Root(), false, 0)...)
	for _, f := range m.Floating {
		layers = append(layers, m.treeLayers(f.Node, true, f.Z)...)
	}
	layers = append(layers, m.statusBarLayer())
	if m.ShowHelp {
		if l := m.helpLayer(); l != nil {
			layers = append(layers, l)
		}
	}

	canvas.AddLayers(layers...)
	return canvas
}

// treeLayers renders a subtree into layers: one per visible component pane
// and one tab strip per stack.
func (m *Desk) treeLayers(root *layout.Node, floating bool, z int) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	render := func(n *layout.Node) {
		s := surfaceOf(n)
		if s == nil || !s.visible() {
			return
		}
		nodeZ := max(z, s.z)
		switch n.Kind() {
		case layout.KindComponent:
			if l := m.paneLayer(n, s, floating, nodeZ); l != nil {
				layers = append(layers, l)
			}
		case layout.KindStack:
			if l := m.tabStripLayer(n, s, nodeZ); l != nil {
				layers = append(layers, l)
			}
		case layout.KindRoot, layout.KindRow, layout.KindColumn:
			// Pure containers draw nothing themselves.
		}
	}
	render(root)
	root.CallDownwards(render, false, true)
	return layers
}

// paneLayer renders one component pane with its border and title.
func (m *Desk) paneLayer(n *layout.Node, s *paneSurface, floating bool, z int) *lipgloss.Layer {
	rect := s.rect
	if rect.W < 2 || rect.H < 2 {
		return nil
	}

	innerW := rect.W - 2
	innerH := rect.H - 2
	body := ""
	if pane, ok := n.Component().(*Pane); ok {
		body = pane.Body(innerW, innerH)
	} else if n.Component() != nil {
		body = fmt.Sprintf("%v", n.Component())
	}

	box := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxWidth(rect.W).
		MaxHeight(rect.H).
		Background(theme.PaneBg()).
		Border(m.getBorder()).
		BorderForeground(m.borderColorFor(n, floating)).
		Render(body)

	if m.Config.Appearance.ShowTitles && n.Title() != "" {
		box = overlayTitle(box, n.Title(), innerW)
	}

	return lipgloss.NewLayer(box).X(rect.X).Y(rect.Y).Z(z).ID(s.id)
}

// overlayTitle splices the title into the top border row.
func overlayTitle(box, title string, innerW int) string {
	lines := strings.SplitN(box, "\n", 2)
	if len(lines) < 2 {
		return box
	}
	label := " " + title + " "
	if lipgloss.Width(label) > innerW {
		label = label[:max(innerW, 0)]
	}
	styled := lipgloss.NewStyle().
		Foreground(theme.TitleFg()).
		Background(theme.TitleBg()).
		Render(label)
	top := lines[0]
	// Keep the corner plus one border cell before the label.
	prefix := lipgloss.NewStyle().MaxWidth(2).Render(top)
	rest := cutLeft(top, 2+lipgloss.Width(label))
	return prefix + styled + rest + "\n" + lines[1]
}

// cutLeft drops the first w visible cells from a styled line.
func cutLeft(line string, w int) string {
	total := lipgloss.Width(line)
	if w >= total {
		return ""
	}
	// Border rows are plain box-drawing runes, so rune slicing is safe here.
	runes := []rune(line)
	if w > len(runes) {
		return ""
	}
	return string(runes[w:])
}

// tabStripLayer renders a stack's tab row above its body.
func (m *Desk) tabStripLayer(n *layout.Node, s *paneSurface, z int) *lipgloss.Layer {
	rect := s.rect
	if rect.W < 1 || rect.H < 1 {
		return nil
	}

	active := n.ActiveItemIndex()
	activeStyle := lipgloss.NewStyle().
		Foreground(theme.TabActiveFg()).
		Background(theme.TabActiveBg()).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.TabInactiveFg()).
		Background(theme.TabInactiveBg()).
		Padding(0, 1)

	var tabs []string
	for i, c := range n.Children() {
		title := c.Title()
		if title == "" {
			title = fmt.Sprintf("tab %d", i+1)
		}
		if i == active {
			tabs = append(tabs, activeStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveStyle.Render(title))
		}
	}
	strip := lipgloss.NewStyle().
		Width(rect.W).
		MaxWidth(rect.W).
		Background(theme.TabInactiveBg()).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	return lipgloss.NewLayer(strip).X(rect.X).Y(rect.Y).Z(z).ID(s.id + "-tabs")
}

// statusBarLayer renders the bottom status row.
func (m *Desk) statusBarLayer() *lipgloss.Layer {
	focusedTitle := "none"
	if m.focused != nil {
		focusedTitle = m.focused.Title()
	}
	left := fmt.Sprintf(" %s ", focusedTitle)
	if m.LeaderActive {
		left += lipgloss.NewStyle().Foreground(theme.StatusHighlight()).Render("[leader] ")
	}
	if m.status != "" {
		left += m.status + " "
	}
	right := fmt.Sprintf(" %s help ", m.Config.Keybindings.LeaderKey+" ?")
	if theme.IsEnabled() {
		right = lipgloss.NewStyle().Foreground(theme.StatusHighlight()).Render("● ") + right
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := lipgloss.NewStyle().
		Width(m.Width).
		MaxWidth(m.Width).
		Foreground(theme.StatusFg()).
		Background(theme.StatusBg()).
		Render(left + strings.Repeat(" ", gap) + right)

	return lipgloss.NewLayer(bar).X(0).Y(max(m.Height-statusBarHeight, 0)).Z(1000).ID("status")
}

// helpLayer renders the centered keybinding overlay.
func (m *Desk) helpLayer() *lipgloss.Layer {
	sections := config.GetKeybindings(m.Keybinds)

	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey())
	textStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(section.Title))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-16s", binding.Key)),
				textStyle.Render(binding.Description)))
		}
	}

	box := lipgloss.NewStyle().
		Border(m.getBorder()).
		BorderForeground(theme.HelpBorder()).
		Background(theme.HelpBg()).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	x := max((m.Width-w)/2, 0)
	y := max((m.Height-h)/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(2000).ID("help")
}

// View returns the rendered view.
func (m *Desk) View() tea.View {
	var view tea.View

	view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	view.AltScreen = true

	return view
}
