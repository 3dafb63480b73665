package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/theme"
	"todolist/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage application theme",
	Long: `Manage application theme settings.

Run without arguments to launch the interactive theme selector TUI.
Use subcommands for direct theme management.

Examples:
  todolist theme              # Launch interactive TUI
  todolist theme set dracula  # Set theme directly
  todolist theme list         # List available themes
  todolist theme show         # Show current theme`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set application theme",
	Long: `Set the application theme.

Available themes:
  - default
  - dark
  - light
  - dracula
  - nord
  - gruvbox

Examples:
  todolist theme set dracula
  todolist theme set nord`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  `List all available themes.`,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// launches theme selector
func runThemeTUI(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel()
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run theme TUI: %w", err)
	}

	// read config to see which theme was selected
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.ThemeName != "" {
		fmt.Println()
		fmt.Printf("✓ Theme set to '%s'\n", cfg.ThemeName)
		fmt.Println()
	}

	return nil
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	t, err := theme.GetTheme(themeName)
	if err != nil {
		return fmt.Errorf("%w. Run 'todolist theme list' to see available themes", err)
	}
	themeName = t.Name

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}

	current, styles := loadTheme(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current.Name {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}

	fmt.Fprintln(out)
	return nil
}

// displays current theme details
func runThemeShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	themeObj, styles := loadTheme(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeObj.Name)))
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Info.Render("Color Palette:"))
	fmt.Fprintln(out)

	colors := []struct {
		name  string
		color string
	}{
		{"Primary", themeObj.Primary},
		{"Success", themeObj.Success},
		{"Error", themeObj.Error},
		{"Text", themeObj.TextPrimary},
		{"Border", themeObj.BorderColor},
		{"High", themeObj.Importance.High},
		{"Low", themeObj.Importance.Low},
		{"None", themeObj.Importance.None},
		{"Not started", themeObj.Status.NotStarted},
		{"Ongoing", themeObj.Status.Ongoing},
		{"Finished", themeObj.Status.Finished},
	}

	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.color)).
			Foreground(lipgloss.Color(c.color)).
			Render("  ████  ")
		fmt.Fprintf(out, "  %-12s %s %s\n", c.name+":", sample, c.color)
	}

	fmt.Fprintln(out)
	return nil
}
