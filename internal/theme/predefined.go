package theme

// builtins lists the predefined themes in display order.
var builtins = []func() *Theme{
	DefaultTheme,
	DarkTheme,
	LightTheme,
	DraculaTheme,
	NordTheme,
	GruvboxTheme,
}

func GetPredefinedThemes() map[string]*Theme {
	themes := make(map[string]*Theme, len(builtins))
	for _, build := range builtins {
		t := build()
		themes[t.Name] = t
	}
	return themes
}

func GetThemeNames() []string {
	names := make([]string, 0, len(builtins))
	for _, build := range builtins {
		names = append(names, build().Name)
	}
	return names
}

func DefaultTheme() *Theme {
	return &Theme{
		Name:          "default",
		Primary:       "#7D56F4",
		Secondary:     "#8AA4EB",
		Success:       "#04B575",
		Error:         "#FF4040",
		Info:          "#0088FF",
		TextPrimary:   "#FAFAFA",
		TextSecondary: "#8A8A8A",
		TextMuted:     "#6C6C6C",
		BgSecondary:   "#1A1A1A",
		BorderColor:   "#7D56F4",
		SelectedBg:    "#7D56F4",
		SelectedFg:    "#FAFAFA",
		HeaderBg:      "#7D56F4",
		HeaderFg:      "#FAFAFA",
		Separator:     "#444444",
		HelpText:      "#8A8A8A",
		SubtitleText:  "#6C6C6C",
		Importance: ImportanceColors{
			High: "#F25C9B",
			Low:  "#5FC9A8",
			None: "#7F7F8C",
		},
		Status: StatusColors{
			NotStarted: "#9E9EAD",
			Ongoing:    "#F5A524",
			Finished:   "#30A46C",
		},
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name:          "dark",
		Primary:       "#BB9AF7",
		Secondary:     "#7AA2F7",
		Success:       "#9ECE6A",
		Error:         "#F7768E",
		Info:          "#7DCFFF",
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",
		BgSecondary:   "#24283B",
		BorderColor:   "#BB9AF7",
		SelectedBg:    "#BB9AF7",
		SelectedFg:    "#1A1B26",
		HeaderBg:      "#BB9AF7",
		HeaderFg:      "#1A1B26",
		Separator:     "#3B4261",
		HelpText:      "#565F89",
		SubtitleText:  "#565F89",
		Importance: ImportanceColors{
			High: "#FF9E64",
			Low:  "#73DACA",
			None: "#737AA2",
		},
		Status: StatusColors{
			NotStarted: "#A9B1D6",
			Ongoing:    "#E0AF68",
			Finished:   "#9ECE6A",
		},
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name:          "light",
		Primary:       "#5B3CC4",
		Secondary:     "#2563EB",
		Success:       "#059669",
		Error:         "#DC2626",
		Info:          "#0284C7",
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",
		BgSecondary:   "#F3F4F6",
		BorderColor:   "#5B3CC4",
		SelectedBg:    "#5B3CC4",
		SelectedFg:    "#FFFFFF",
		HeaderBg:      "#5B3CC4",
		HeaderFg:      "#FFFFFF",
		Separator:     "#D1D5DB",
		HelpText:      "#6B7280",
		SubtitleText:  "#9CA3AF",
		Importance: ImportanceColors{
			High: "#C2185B",
			Low:  "#00796B",
			None: "#78716C",
		},
		Status: StatusColors{
			NotStarted: "#57534E",
			Ongoing:    "#B45309",
			Finished:   "#15803D",
		},
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name:          "dracula",
		Primary:       "#BD93F9",
		Secondary:     "#8BE9FD",
		Success:       "#50FA7B",
		Error:         "#FF5555",
		Info:          "#8BE9FD",
		TextPrimary:   "#F8F8F2",
		TextSecondary: "#6272A4",
		TextMuted:     "#44475A",
		BgSecondary:   "#44475A",
		BorderColor:   "#BD93F9",
		SelectedBg:    "#BD93F9",
		SelectedFg:    "#282A36",
		HeaderBg:      "#BD93F9",
		HeaderFg:      "#282A36",
		Separator:     "#44475A",
		HelpText:      "#6272A4",
		SubtitleText:  "#6272A4",
		Importance: ImportanceColors{
			High: "#FF79C6",
			Low:  "#8BE9FD",
			None: "#6272A4",
		},
		Status: StatusColors{
			NotStarted: "#F8F8F2",
			Ongoing:    "#FFB86C",
			Finished:   "#50FA7B",
		},
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name:          "nord",
		Primary:       "#88C0D0",
		Secondary:     "#81A1C1",
		Success:       "#A3BE8C",
		Error:         "#BF616A",
		Info:          "#5E81AC",
		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",
		BgSecondary:   "#3B4252",
		BorderColor:   "#88C0D0",
		SelectedBg:    "#88C0D0",
		SelectedFg:    "#2E3440",
		HeaderBg:      "#88C0D0",
		HeaderFg:      "#2E3440",
		Separator:     "#434C5E",
		HelpText:      "#4C566A",
		SubtitleText:  "#4C566A",
		Importance: ImportanceColors{
			High: "#D08770",
			Low:  "#8FBCBB",
			None: "#616E88",
		},
		Status: StatusColors{
			NotStarted: "#D8DEE9",
			Ongoing:    "#EBCB8B",
			Finished:   "#A3BE8C",
		},
	}
}

func GruvboxTheme() *Theme {
	return &Theme{
		Name:          "gruvbox",
		Primary:       "#D3869B",
		Secondary:     "#83A598",
		Success:       "#B8BB26",
		Error:         "#FB4934",
		Info:          "#83A598",
		TextPrimary:   "#EBDBB2",
		TextSecondary: "#A89984",
		TextMuted:     "#665C54",
		BgSecondary:   "#3C3836",
		BorderColor:   "#D3869B",
		SelectedBg:    "#D3869B",
		SelectedFg:    "#282828",
		HeaderBg:      "#D3869B",
		HeaderFg:      "#282828",
		Separator:     "#504945",
		HelpText:      "#928374",
		SubtitleText:  "#665C54",
		Importance: ImportanceColors{
			High: "#FE8019",
			Low:  "#8EC07C",
			None: "#928374",
		},
		Status: StatusColors{
			NotStarted: "#BDAE93",
			Ongoing:    "#FABD2F",
			Finished:   "#B8BB26",
		},
	}
}
