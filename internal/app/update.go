package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/dockpane/dockpane/internal/layout"
)

// framesPerSecond drives the frame queue drain and redraw cadence.
const framesPerSecond = 60

// TickerMsg represents a periodic tick event for updating the UI.
type TickerMsg time.Time

// LayoutReloadMsg carries a freshly loaded layout from the file watcher.
type LayoutReloadMsg struct {
	Root layout.ItemConfig
}

// TickCmd creates a command that generates tick messages at the frame rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// ListenForLayoutChanges converts reloaded layouts from the watcher channel
// into messages.
func ListenForLayoutChanges(ch chan layout.ItemConfig) tea.Cmd {
	return func() tea.Msg {
		rootCfg, ok := <-ch
		if !ok {
			return nil
		}
		return LayoutReloadMsg{Root: rootCfg}
	}
}

// Init starts the frame ticker and the layout reload listener.
func (m *Desk) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(),
		ListenForLayoutChanges(m.LayoutChangeChan),
	)
}

// Update handles all incoming messages and updates the application state.
func (m *Desk) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		// Flush batched layout events once per frame.
		m.Tree.Queue().Drain()
		return m, TickCmd()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.UpdateSize()
		return m, nil

	case LayoutReloadMsg:
		if err := m.ReloadLayout(msg.Root); err != nil {
			m.logger.Error("layout reload failed", "err", err)
			m.setStatus("layout reload failed")
		}
		return m, ListenForLayoutChanges(m.LayoutChangeChan)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey implements the leader-prefixed keybinding scheme: the leader
// key arms the prefix, the next key resolves to an action.
func (m *Desk) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if !m.LeaderActive {
		if key == m.Config.Keybindings.LeaderKey {
			m.LeaderActive = true
		}
		return m, nil
	}

	m.LeaderActive = false
	return m.runAction(m.Keybinds.GetAction(key))
}

// runAction dispatches a resolved keybinding action.
func (m *Desk) runAction(action string) (tea.Model, tea.Cmd) {
	var err error
	switch action {
	case "split_right":
		err = m.SplitFocused(layout.KindRow)
	case "split_down":
		err = m.SplitFocused(layout.KindColumn)
	case "new_tab":
		err = m.NewTab()
	case "close_item":
		err = m.CloseFocused()
	case "next_tab":
		m.CycleTab(1)
	case "prev_tab":
		m.CycleTab(-1)
	case "focus_next":
		m.FocusNext(1)
	case "focus_prev":
		m.FocusNext(-1)
	case "toggle_maximise":
		m.ToggleMaximiseFocused()
	case "popout":
		err = m.PopOutFocused()
	case "save_layout":
		err = m.SaveLayout()
	case "toggle_help":
		m.ShowHelp = !m.ShowHelp
	case "quit":
		return m, tea.Quit
	case "":
		// Unbound key after the leader; swallow it.
		return m, nil
	}
	if err != nil {
		m.logger.Error("action failed", "action", action, "err", err)
		m.setStatus(action + " failed")
	}
	return m, nil
}
