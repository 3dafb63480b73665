package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/config"
	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/theme"
)

// SetupModel is the first-run theme picker. The preview renders the seed
// tasks and a filter panel with the highlighted theme.
type SetupModel struct {
	themes   []string
	selected int
	current  *theme.Theme
	keys     keyMap
	confirm  key.Binding
	help     help.Model
	preview  []domain.Task

	width     int
	height    int
	quitting  bool
	confirmed bool
	saveErr   error
}

func NewSetupModel() SetupModel {
	themes := theme.ListThemes()

	return SetupModel{
		themes:  themes,
		current: theme.Resolve(themes[0]),
		keys:    defaultKeyMap(),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use theme"),
		),
		help:    help.New(),
		preview: repository.DefaultSeed(),
		width:   100,
		height:  30,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.confirm):
			// the app still starts with the default theme if this fails
			m.saveErr = config.UpdateTheme(m.themes[m.selected])
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *SetupModel) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.themes) {
		return
	}
	m.selected = next
	m.current = theme.Resolve(m.themes[next])
}

func (m SetupModel) View() string {
	if m.quitting {
		switch {
		case !m.confirmed:
			return "Setup cancelled.\n"
		case m.saveErr != nil:
			return fmt.Sprintf("Warning: failed to save theme: %v\n", m.saveErr)
		default:
			return ""
		}
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.current)

	listWidth := max(m.width/4, 24)
	previewWidth := max(m.width-listWidth-4, 30)

	box := lipgloss.NewStyle().
		Height(m.height-6).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.current.BorderColor)).
		Padding(0, 1)

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		box.Width(listWidth).Render(m.renderThemeList(styles, listWidth)),
		box.Width(previewWidth).Render(m.renderPreview(styles)),
	)

	shortcuts := modeHelp{short: []key.Binding{m.keys.Up, m.keys.Down, m.confirm, m.keys.Quit}}

	return strings.Join([]string{
		styles.TUITitle.Render("Todo List Setup"),
		styles.TUISubtitle.Render("Select a theme to get started"),
		"",
		main,
		styles.TUIHelp.Render(m.help.View(shortcuts)),
	}, "\n")
}

func (m SetupModel) renderThemeList(styles *theme.Styles, width int) string {
	lines := []string{styles.PanelHeading.Render("Themes"), ""}

	for i, name := range m.themes {
		if i == m.selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.current.SelectedFg)).
				Background(lipgloss.Color(m.current.SelectedBg)).
				Bold(true).
				Width(width-2).
				Render("▶ "+name))
			continue
		}
		lines = append(lines, styles.DetailValue.Render("  "+name))
	}

	return strings.Join(lines, "\n")
}

func (m SetupModel) renderPreview(styles *theme.Styles) string {
	var tasks strings.Builder
	for _, task := range m.preview {
		tasks.WriteString(renderTaskPreview(styles, task))
	}

	// a filter panel as it looks with "Important!" checked
	filter := domain.ImportanceFilter{High: true}
	var panel strings.Builder
	panel.WriteString(styles.PanelHeading.Render("Filters"))
	panel.WriteString("\n")
	for _, imp := range domain.Importances {
		style := styles.Unchecked
		if filter.Has(imp) {
			style = styles.Checked
		}
		panel.WriteString(style.Render(display.Checkbox(filter.Has(imp)) + " " + display.GetImportanceLabel(imp)))
		panel.WriteString("\n")
	}
	panel.WriteString(styles.Disabled.Render("From: -"))

	return tasks.String() + styles.Panel.Render(panel.String())
}

func renderTaskPreview(styles *theme.Styles, task domain.Task) string {
	name := fmt.Sprintf("%s %s", display.GetStatusIcon(task.Status), display.Truncate(task.TaskName, 24))
	info := fmt.Sprintf("  %s %s",
		styles.GetImportanceStyle(task.Importance).Render(display.FormatImportance(task.Importance)),
		styles.GetStatusStyle(task.Status).Render(display.GetStatusLabel(task.Status)),
	)
	dates := styles.TUIHelp.Render(fmt.Sprintf("  created %s • updated %s",
		display.FormatDate(task.CreatedAt), display.FormatDate(task.UpdatedAt)))

	return styles.DetailValue.Bold(true).Render(name) + "\n" + info + "\n" + dates + "\n\n"
}
