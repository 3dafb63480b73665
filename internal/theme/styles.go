package theme

import (
	"todolist/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle        lipgloss.Style
	TUISubtitle     lipgloss.Style
	TUIHelp         lipgloss.Style
	DetailContainer lipgloss.Style
	DetailLabel     lipgloss.Style
	DetailValue     lipgloss.Style
	Button          lipgloss.Style
	ButtonMuted     lipgloss.Style

	// side panel
	Panel        lipgloss.Style
	PanelHeading lipgloss.Style
	PanelCursor  lipgloss.Style
	Checked      lipgloss.Style
	Unchecked    lipgloss.Style
	Disabled     lipgloss.Style

	// importance
	HighText lipgloss.Style
	LowText  lipgloss.Style
	NoneText lipgloss.Style

	// status
	NotStartedText lipgloss.Style
	OngoingText    lipgloss.Style
	FinishedText   lipgloss.Style

	muted lipgloss.Color
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextPrimary)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		DetailContainer: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),

		DetailLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		DetailValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Padding(0, 2),

		// unwired actions render but never highlight
		ButtonMuted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Background(lipgloss.Color(t.BgSecondary)).
			Padding(0, 2),

		// side panel
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),

		PanelHeading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)),

		PanelCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)),

		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Unchecked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Strikethrough(true),

		// importance
		HighText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Importance.High)).
			Bold(true),

		LowText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Importance.Low)),

		NoneText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Importance.None)),

		// status
		NotStartedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Status.NotStarted)),

		OngoingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Status.Ongoing)),

		FinishedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Status.Finished)),

		muted: lipgloss.Color(t.TextMuted),
	}
}

func (s *Styles) GetImportanceStyle(importance domain.Importance) lipgloss.Style {
	switch importance {
	case domain.ImportanceHigh:
		return s.HighText
	case domain.ImportanceLow:
		return s.LowText
	case domain.ImportanceNone:
		return s.NoneText
	default:
		return s.DetailValue
	}
}

func (s *Styles) GetStatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusNotStarted:
		return s.NotStartedText
	case domain.StatusOngoing:
		return s.OngoingText
	case domain.StatusFinished:
		return s.FinishedText
	default:
		return s.DetailValue
	}
}

// FadePanel returns the panel style for the given opacity. Terminals have no
// alpha, so the fade steps through faint and then muted text.
func (s *Styles) FadePanel(opacity float64) lipgloss.Style {
	switch {
	case opacity >= 1:
		return s.Panel
	case opacity >= 0.5:
		return s.Panel.Faint(true)
	default:
		return s.Panel.Faint(true).
			Foreground(s.muted).
			BorderForeground(s.muted)
	}
}
