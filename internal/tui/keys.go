package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding

	// table
	Filter key.Binding
	Copy   key.Binding

	// detail
	Edit        key.Binding
	FocusText   key.Binding
	ToggleHigh  key.Binding
	ToggleLow   key.Binding
	ConfirmEdit key.Binding
	CancelEdit  key.Binding

	// side panel
	ToggleItem key.Binding
	ClosePanel key.Binding

	// date picker
	PrevMonth key.Binding
	NextMonth key.Binding
	ClearDate key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),

		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "open filters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy task name"),
		),

		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		FocusText: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus/blur text"),
		),
		ToggleHigh: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle important"),
		),
		ToggleLow: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle relaxed"),
		),
		ConfirmEdit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		CancelEdit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),

		ToggleItem: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space/enter", "toggle/select"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("esc", "f"),
			key.WithHelp("esc", "close panel"),
		),

		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		ClearDate: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear date"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// modeHelp adapts a fixed set of bindings to help.KeyMap.
type modeHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h modeHelp) ShortHelp() []key.Binding  { return h.short }
func (h modeHelp) FullHelp() [][]key.Binding { return h.full }

func (k keyMap) tableHelp() help.KeyMap {
	return modeHelp{
		short: []key.Binding{k.Up, k.Down, k.Enter, k.Filter, k.Quit, k.Help},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Enter},
			{k.Filter, k.Copy},
			{k.Quit, k.Help},
		},
	}
}

func (k keyMap) detailHelp() help.KeyMap {
	return modeHelp{
		short: []key.Binding{k.Edit, k.Copy, k.Back, k.Help},
		full: [][]key.Binding{
			{k.Edit, k.Copy},
			{k.Back, k.Quit, k.Help},
		},
	}
}

func (k keyMap) editHelp() help.KeyMap {
	return modeHelp{
		short: []key.Binding{k.FocusText, k.ToggleHigh, k.ToggleLow, k.ConfirmEdit, k.CancelEdit},
		full: [][]key.Binding{
			{k.FocusText, k.ToggleHigh, k.ToggleLow},
			{k.ConfirmEdit, k.CancelEdit},
		},
	}
}

func (k keyMap) panelHelp() help.KeyMap {
	return modeHelp{
		short: []key.Binding{k.Up, k.Down, k.ToggleItem, k.ClosePanel},
		full: [][]key.Binding{
			{k.Up, k.Down},
			{k.ToggleItem, k.ClosePanel},
		},
	}
}

func (k keyMap) pickerHelp() help.KeyMap {
	up := key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week"))
	down := key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week"))
	pick := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close picker"))

	return modeHelp{
		short: []key.Binding{k.Left, k.Right, up, down, pick, k.ClearDate, back},
		full: [][]key.Binding{
			{k.Left, k.Right, up, down},
			{k.PrevMonth, k.NextMonth},
			{pick, k.ClearDate, back},
		},
	}
}
