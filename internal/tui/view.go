package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/panel"
	"todolist/internal/store"
)

// renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())

	main := m.renderMain()
	if m.panelVisible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, panelGap, m.renderSidePanel())
	}
	b.WriteString(main)
	b.WriteString("\n")

	// message (success/error)
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(m.styles.Success.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderMain() string {
	if m.viewMode == detailView {
		return m.renderDetailView()
	}
	return m.renderTableView()
}

func (m Model) renderHeader() string {
	return m.styles.TUITitle.Render("  Todo List  ") + "\n" + m.renderFilterSummary() + "\n\n"
}

// onPanel reports whether screen cell (x, y) falls on the side panel as View
// lays it out.
func (m Model) onPanel(x, y int) bool {
	left := lipgloss.Width(m.renderMain()) + lipgloss.Width(panelGap)
	top := strings.Count(m.renderHeader(), "\n")

	sp := m.renderSidePanel()
	return x >= left && x < left+lipgloss.Width(sp) &&
		y >= top && y < top+lipgloss.Height(sp)
}

func (m Model) renderTableView() string {
	if len(m.tasks) == 0 {
		if m.store.Filters().IsZero() {
			return m.styles.Info.Render("No tasks found.")
		}
		return m.styles.Info.Render("No tasks found matching the filters.")
	}
	return m.table.View()
}

func (m Model) renderDetailView() string {
	if m.editor == nil {
		return m.styles.Info.Render("No task selected.")
	}

	task := m.editor.Task()
	buf, editing := m.editor.Buffer()

	content := []string{
		m.renderDetailRow("Status:", m.styles.GetStatusStyle(task.Status).Render(
			fmt.Sprintf("%s %s", display.GetStatusIcon(task.Status), display.GetStatusLabel(task.Status)))),
	}

	if editing {
		name := m.renderDetailRow("Task:", buf.Text)
		if m.text.Focused() {
			name = m.renderDetailRow("Task:", "") + "\n" + m.text.View()
		}
		content = append(content,
			name,
			m.renderDetailRow("Importance:", m.renderImportanceChoice(buf.Importance)),
		)
	} else {
		content = append(content,
			m.renderDetailRow("Task:", task.TaskName),
			m.renderDetailRow("", m.styles.GetImportanceStyle(task.Importance).Render(display.FormatImportance(task.Importance))),
		)
	}

	content = append(content,
		m.renderDetailRow("Created at:", display.FormatDate(task.CreatedAt)),
		m.renderDetailRow("Last update:", display.FormatDate(task.UpdatedAt)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Button.Render(m.editor.Label()),
			" ",
			m.styles.ButtonMuted.Render("DELETE"),
		),
	)

	return m.styles.DetailContainer.Render(strings.Join(content, "\n"))
}

func (m Model) renderDetailRow(label, value string) string {
	return fmt.Sprintf("%-14s %s",
		m.styles.DetailLabel.Render(label),
		m.styles.DetailValue.Render(value))
}

// the editor offers only the two explicit levels; none is the absence of both
func (m Model) renderImportanceChoice(selected domain.Importance) string {
	var parts []string
	for _, imp := range []domain.Importance{domain.ImportanceHigh, domain.ImportanceLow} {
		box := display.Checkbox(selected == imp)
		style := m.styles.Unchecked
		if selected == imp {
			style = m.styles.Checked
		}
		parts = append(parts, style.Render(box+" "+display.GetImportanceLabel(imp)))
	}
	return strings.Join(parts, "  ")
}

// once the session ends the fading panel shows the committed filters
func (m Model) renderSidePanel() string {
	filters := m.store.Filters()
	fp := m.side.Panel()
	if fp != nil {
		if pending, ok := fp.Pending(); ok {
			filters = pending
		}
	}
	open := m.side.State() == panel.Open

	var b strings.Builder
	b.WriteString(m.styles.PanelHeading.Render("Filters"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.TUISubtitle.Render("Importance"))
	b.WriteString("\n")
	for i, imp := range domain.Importances {
		checked := filters.Importance.Has(imp)
		style := m.styles.Unchecked
		if checked {
			style = m.styles.Checked
		}
		line := style.Render(fmt.Sprintf("%s %s", display.Checkbox(checked), display.GetImportanceLabel(imp)))
		b.WriteString(m.panelLine(panelItem(i), line, open))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.TUISubtitle.Render("Created between"))
	b.WriteString("\n")
	b.WriteString(m.panelLine(itemStart, "From: "+display.FormatDate(filters.Period.Start), open))
	b.WriteString(m.panelLine(itemEnd, "To:   "+display.FormatDate(filters.Period.End), open))

	if m.picker != nil && fp != nil {
		bound := filters.Period.Start
		if m.picker.target == targetEnd {
			bound = filters.Period.End
		}
		b.WriteString("\n")
		b.WriteString(m.picker.render(m.styles, fp, bound))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.panelLine(itemApply, "[ Apply ]", open))
	b.WriteString(m.panelLine(itemCancel, "[ Cancel ]", open))

	return m.styles.FadePanel(m.side.Opacity()).
		Width(panelWidth).
		Render(b.String())
}

func (m Model) panelLine(item panelItem, text string, open bool) string {
	if open && m.panelCursor == item && m.picker == nil {
		return m.styles.PanelCursor.Render("▶ "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m Model) renderFilterSummary() string {
	return m.styles.TUISubtitle.Render(
		fmt.Sprintf("%d of %d tasks • %s", len(m.tasks), len(m.store.Tasks()), summarizeFilters(m.store.Filters())))
}

func summarizeFilters(f store.Filters) string {
	if f.IsZero() {
		return "no filters"
	}

	var parts []string
	if !f.Importance.IsNoop() {
		levels := make([]string, 0, 3)
		for _, imp := range f.Importance.Active() {
			levels = append(levels, string(imp))
		}
		parts = append(parts, "importance: "+strings.Join(levels, ", "))
	}
	if !f.Period.IsZero() {
		parts = append(parts, fmt.Sprintf("created: %s → %s",
			display.FormatDate(f.Period.Start), display.FormatDate(f.Period.End)))
	}
	return strings.Join(parts, " | ")
}

func (m Model) renderHelp() string {
	km := m.keys.tableHelp()
	switch {
	case m.picker != nil && m.side.State() == panel.Open:
		km = m.keys.pickerHelp()
	case m.side.State() == panel.Open:
		km = m.keys.panelHelp()
	case m.editing():
		km = m.keys.editHelp()
	case m.viewMode == detailView:
		km = m.keys.detailHelp()
	}
	return m.styles.TUIHelp.Render(m.help.View(km))
}
