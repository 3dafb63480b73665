package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "Todo List - a terminal todo list with importance and date filters",
	Long: `Todo List keeps a short list of tasks in memory for the length of a session.

Tasks can be filtered by importance and by creation date, and a task's name
and importance can be edited from its detail view. Nothing is written back to
disk: every run starts again from the configured seed list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// check if we need to run initial setup
		return checkAndRunSetup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func displayWelcome() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// fallback to default
		cfg = config.GetDefaultConfig()
	}

	_, styles := loadTheme(cfg)

	title := styles.Title.Render(`
		------------------------------------------------------

		                T O D O   L I S T

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("What matters today, and what can wait")

	fmt.Println()
	fmt.Println(title)
	fmt.Println(subtitle)
	fmt.Println()
	fmt.Println("Run 'todolist tui' to start, or 'todolist --help' to see available commands.")
	fmt.Println()
}

// checks if initial setup is needed and runs it
func checkAndRunSetup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// if theme not set then run initial setup
	if cfg.ThemeName == "" {
		fmt.Println()
		fmt.Println("Welcome to Todo List! Let's set up your theme.")
		fmt.Println()

		p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run setup: %w", err)
		}

		// read config to see which theme was selected
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config after setup: %w", err)
		}

		fmt.Println()
		if cfg.ThemeName != "" {
			fmt.Printf("✓ Theme configured: '%s'\n", cfg.ThemeName)
		} else {
			fmt.Println("Theme configuration complete!")
		}
		fmt.Println()
	}

	return nil
}
