// Package settings loads the optional settings.jsonc file that overrides the
// compiled-in look of the calculator.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"

	"calculator/internal/constants"
)

// Theme names accepted in settings.jsonc
const (
	ThemeDark    = "dark"
	ThemeLight   = "light"
	ThemeDefault = "default"
)

// Settings holds user-tunable presentation options.
type Settings struct {
	Theme        string  `json:"theme"`
	InfoText     string  `json:"info_text"`
	MinimumWidth float32 `json:"minimum_width"`
	ButtonSize   float32 `json:"button_size"`
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		Theme:        constants.AppTheme,
		InfoText:     constants.DefaultInfoText,
		MinimumWidth: constants.MinimumWidth,
		ButtonSize:   constants.ButtonSize,
	}
}

// Load reads settings from path. A missing file yields the defaults and no
// error; any other failure yields the defaults and the error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("Load: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("Load: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes JSON-with-comments settings over the defaults. Keys that are
// absent keep their default value.
func Parse(data []byte) (Settings, error) {
	s := Default()
	jsonBytes := jsonc.ToJSON(data)
	if err := json.Unmarshal(jsonBytes, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.normalize(); err != nil {
		return Default(), err
	}
	return s, nil
}

func (s *Settings) normalize() error {
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	switch s.Theme {
	case "":
		s.Theme = constants.AppTheme
	case ThemeDark, ThemeLight, ThemeDefault:
	default:
		return fmt.Errorf("unknown theme %q (want %q, %q or %q)", s.Theme, ThemeDark, ThemeLight, ThemeDefault)
	}
	if s.MinimumWidth <= 0 {
		s.MinimumWidth = constants.MinimumWidth
	}
	if s.ButtonSize <= 0 {
		s.ButtonSize = constants.ButtonSize
	}
	return nil
}
