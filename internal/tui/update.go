package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/domain"
	"todolist/internal/editor"
	"todolist/internal/panel"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-12, 5))
		return m, nil

	case fadeTickMsg:
		if m.side.Tick() {
			return m, fadeTickCmd(m.fadeDelay)
		}
		m.panelCursor = itemHigh
		m.picker = nil
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("failed to copy to clipboard: %w", msg.err)
			return m, nil
		}
		m.message = fmt.Sprintf("Copied %q", msg.text)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.side.State() == panel.Open {
			return m.updatePanelMode(msg)
		}

		if m.viewMode == detailView {
			return m.updateDetailMode(msg)
		}

		return m.updateTableMode(msg)
	}

	return m, nil
}

// a left click anywhere off the side panel dismisses it
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.side.State() == panel.Open && !m.onPanel(msg.X, msg.Y) {
		return m, m.closePanel()
	}

	return m, nil
}

func (m Model) updateTableMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.clearStatus()
		if m.side.Open() {
			m.panelCursor = itemHigh
			m.picker = nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if task, ok := m.selectedTask(); ok {
			m.clearStatus()
			m.editor = editor.New(task, m.store, m.logger)
			m.editor.SetClock(m.now)
			m.viewMode = detailView
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if task, ok := m.selectedTask(); ok {
			return m, copyCmd(m.clipboard, task.TaskName)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing() {
		return m.updateEditMode(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.viewMode = tableView
		m.editor = nil
		m.clearStatus()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.clearStatus()
		m.editor.BeginEdit()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clipboard, m.editor.Task().TaskName)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// text field focused: everything but a few keys goes to the textarea
	if m.text.Focused() {
		switch {
		case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.FocusText):
			m.text.Blur()
			return m, nil

		case msg.Type == tea.KeyEnter:
			m.text.Blur()
			return m.confirmEdit()
		}

		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		_ = m.editor.SetText(m.text.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.FocusText):
		_ = m.editor.FocusText()
		buf, _ := m.editor.Buffer()
		m.text.SetValue(buf.Text)
		return m, m.text.Focus()

	case key.Matches(msg, m.keys.ToggleHigh):
		_ = m.editor.ToggleImportance(domain.ImportanceHigh)
		return m, nil

	case key.Matches(msg, m.keys.ToggleLow):
		_ = m.editor.ToggleImportance(domain.ImportanceLow)
		return m, nil

	case key.Matches(msg, m.keys.ConfirmEdit):
		return m.confirmEdit()

	case key.Matches(msg, m.keys.CancelEdit):
		m.editor.CancelEdit()
		m.text.Reset()
		m.clearStatus()
		return m, nil
	}

	return m, nil
}

func (m Model) confirmEdit() (tea.Model, tea.Cmd) {
	if err := m.editor.ConfirmEdit(m.ctx); err != nil {
		m.err = err
		return m, nil
	}

	m.text.Reset()
	m.err = nil
	m.message = "Task updated"
	m.refreshTable()
	return m, nil
}

func (m Model) updatePanelMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m.updatePicker(msg)
	}

	fp := m.side.Panel()

	switch {
	case key.Matches(msg, m.keys.ClosePanel):
		return m, m.closePanel()

	case key.Matches(msg, m.keys.Up):
		if m.panelCursor > 0 {
			m.panelCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.panelCursor < panelItemCount-1 {
			m.panelCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleItem):
		pending, _ := fp.Pending()

		switch m.panelCursor {
		case itemHigh, itemLow, itemNone:
			_ = fp.ToggleImportance(m.panelCursor.importance())

		case itemStart:
			m.picker = newDatePicker(targetStart, pending.Period.Start, m.now())

		case itemEnd:
			m.picker = newDatePicker(targetEnd, pending.Period.End, m.now())

		case itemApply:
			if err := fp.Apply(m.store); err != nil {
				m.err = err
				return m, nil
			}
			m.refreshTable()
			m.message = fmt.Sprintf("Showing %d of %d tasks", len(m.tasks), len(m.store.Tasks()))
			return m, m.closePanel()

		case itemCancel:
			_ = fp.Cancel()
			return m, m.closePanel()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fp := m.side.Panel()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.picker.moveDays(-1)
	case key.Matches(msg, m.keys.Right):
		m.picker.moveDays(1)
	case key.Matches(msg, m.keys.Up):
		m.picker.moveDays(-7)
	case key.Matches(msg, m.keys.Down):
		m.picker.moveDays(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.picker.moveMonths(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.picker.moveMonths(1)

	case key.Matches(msg, m.keys.ClearDate):
		m.setBound("")
		m.picker = nil

	case msg.Type == tea.KeyEnter:
		d, ok := m.picker.selected(fp)
		if !ok {
			// disabled dates are not selectable
			return m, nil
		}
		m.setBound(d)
		m.picker = nil

	case msg.Type == tea.KeyEsc:
		m.picker = nil
	}

	return m, nil
}

func (m *Model) setBound(d domain.Date) {
	fp := m.side.Panel()
	if m.picker.target == targetEnd {
		_ = fp.SetEnd(d)
		return
	}
	_ = fp.SetStart(d)
}

// closePanel starts the fade-out and returns its first tick.
func (m *Model) closePanel() tea.Cmd {
	m.picker = nil
	if !m.side.RequestClose() {
		return nil
	}
	return fadeTickCmd(m.fadeDelay)
}

func (i panelItem) importance() domain.Importance {
	switch i {
	case itemHigh:
		return domain.ImportanceHigh
	case itemLow:
		return domain.ImportanceLow
	default:
		return domain.ImportanceNone
	}
}
