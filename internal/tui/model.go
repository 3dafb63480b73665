package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/editor"
	"todolist/internal/logging"
	"todolist/internal/panel"
	"todolist/internal/store"
	"todolist/internal/theme"
)

type viewMode int

const (
	tableView viewMode = iota
	detailView
)

// panelItem is a focusable row of the filter side panel.
type panelItem int

const (
	itemHigh panelItem = iota
	itemLow
	itemNone
	itemStart
	itemEnd
	itemApply
	itemCancel
	panelItemCount
)

const (
	panelWidth       = 36
	panelGap         = "  "
	defaultFadeDelay = 60 * time.Millisecond
)

// Options carries the runtime knobs of the TUI. Zero values fall back to
// defaults.
type Options struct {
	Context      context.Context
	Logger       *log.Logger
	FadeFrames   int
	FadeInterval time.Duration

	// Now and Clipboard are replaceable for tests.
	Now       func() time.Time
	Clipboard func(string) error
}

type Model struct {
	store  *store.Store
	tasks  []domain.Task
	table  table.Model
	text   textarea.Model
	help   help.Model
	keys   keyMap
	styles *theme.Styles
	theme  *theme.Theme

	viewMode viewMode
	editor   *editor.Editor

	side        *panel.SidePanel
	panelCursor panelItem
	picker      *datePicker
	fadeDelay   time.Duration

	message  string
	err      error
	width    int
	height   int
	showHelp bool

	ctx       context.Context
	logger    *log.Logger
	now       func() time.Time
	clipboard func(string) error
}

func NewModel(s *store.Store, themeObj *theme.Theme, styles *theme.Styles, opts Options) Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Status", Width: 14},
		{Title: "Task", Width: 34},
		{Title: "Importance", Width: 12},
		{Title: "Created", Width: 11},
		{Title: "Updated", Width: 11},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(themeObj.BorderColor)).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(themeObj.SelectedFg)).
		Background(lipgloss.Color(themeObj.SelectedBg)).
		Bold(true)
	t.SetStyles(ts)

	ta := textarea.New()
	ta.Placeholder = "Task name"
	ta.ShowLineNumbers = false
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(3)
	// enter confirms the edit instead of breaking the line
	ta.KeyMap.InsertNewline.SetEnabled(false)

	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.FadeInterval <= 0 {
		opts.FadeInterval = defaultFadeDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	logger := logging.OrNop(opts.Logger)

	m := Model{
		store:     s,
		table:     t,
		text:      ta,
		help:      help.New(),
		keys:      defaultKeyMap(),
		styles:    styles,
		theme:     themeObj,
		viewMode:  tableView,
		side:      panel.NewSidePanel(s, opts.FadeFrames, logger),
		fadeDelay: opts.FadeInterval,
		ctx:       opts.Context,
		logger:    logger,
		now:       opts.Now,
		clipboard: opts.Clipboard,
	}
	m.refreshTable()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshTable re-derives the visible tasks from the store.
func (m *Model) refreshTable() {
	m.tasks = m.store.Visible()

	rows := make([]table.Row, 0, len(m.tasks))
	for i := range m.tasks {
		rows = append(rows, taskToRow(&m.tasks[i]))
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func taskToRow(task *domain.Task) table.Row {
	return table.Row{
		fmt.Sprintf("%d", task.ID),
		fmt.Sprintf("%s %s", display.GetStatusIcon(task.Status), display.GetStatusLabel(task.Status)),
		display.Truncate(task.TaskName, 33),
		fmt.Sprintf("%s %s", display.GetImportanceIcon(task.Importance), task.Importance),
		display.FormatDate(task.CreatedAt),
		display.FormatDate(task.UpdatedAt),
	}
}

// selectedTask is the store's current copy of the task under the cursor.
func (m *Model) selectedTask() (domain.Task, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.store.Task(m.tasks[c].ID)
}

func (m *Model) panelVisible() bool {
	return m.side.State() != panel.Closed
}

func (m *Model) editing() bool {
	return m.editor != nil && m.editor.Mode() == editor.Editing
}

func (m *Model) clearStatus() {
	m.message = ""
	m.err = nil
}
