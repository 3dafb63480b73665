package theme

// Theme is a named palette of hex (or ANSI index) colours.
type Theme struct {
	Name string

	Primary   string
	Secondary string
	Success   string
	Error     string
	Info      string

	TextPrimary   string
	TextSecondary string
	TextMuted     string
	BgSecondary   string

	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string

	Importance ImportanceColors
	Status     StatusColors
}

// ImportanceColors tint the importance labels and filter check boxes. High
// must differ from Error.
type ImportanceColors struct {
	High string
	Low  string
	None string
}

type StatusColors struct {
	NotStarted string
	Ongoing    string
	Finished   string
}
