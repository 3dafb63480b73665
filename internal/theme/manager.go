package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

// Manager looks up the predefined themes by case-insensitive name.
type Manager struct {
	themes map[string]*Theme
}

func NewManager() *Manager {
	return &Manager{
		themes: GetPredefinedThemes(),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *Manager) GetTheme(name string) (*Theme, error) {
	t, ok := m.themes[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return t, nil
}

// Resolve returns the named theme, or the default one when name is empty or
// unknown. A config naming a removed theme must not stop the app.
func (m *Manager) Resolve(name string) *Theme {
	if t, err := m.GetTheme(name); err == nil {
		return t
	}
	return DefaultTheme()
}

func (m *Manager) ListThemes() []string {
	return GetThemeNames()
}

func (m *Manager) ThemeExists(name string) bool {
	_, ok := m.themes[normalize(name)]
	return ok
}

var globalManager = NewManager()

// returns theme by name using the global manager
func GetTheme(name string) (*Theme, error) {
	return globalManager.GetTheme(name)
}

// Resolve is Manager.Resolve on the global manager.
func Resolve(name string) *Theme {
	return globalManager.Resolve(name)
}

// returns all available theme names using the global manager
func ListThemes() []string {
	return globalManager.ListThemes()
}

// checks if a theme exists using the global manager
func ThemeExists(name string) bool {
	return globalManager.ThemeExists(name)
}

func GetDefaultTheme() *Theme {
	return DefaultTheme()
}
