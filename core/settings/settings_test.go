package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator/internal/constants"
)

// TestParse tests decoding of settings.jsonc content
func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		expected    Settings
	}{
		{
			name: "Full file with comments",
			content: `{
	// appearance
	"theme": "Light",
	"info_text": "History:", /* shown at startup */
	"minimum_width": 320,
	"button_size": 60
}`,
			expected: Settings{Theme: ThemeLight, InfoText: "History:", MinimumWidth: 320, ButtonSize: 60},
		},
		{
			name:     "Partial file keeps defaults",
			content:  `{"theme": "default"}`,
			expected: Settings{Theme: ThemeDefault, InfoText: constants.DefaultInfoText, MinimumWidth: constants.MinimumWidth, ButtonSize: constants.ButtonSize},
		},
		{
			name:     "Non-positive sizes fall back",
			content:  `{"minimum_width": 0, "button_size": -5}`,
			expected: Default(),
		},
		{
			name:        "Unknown theme",
			content:     `{"theme": "solarized"}`,
			expectError: true,
		},
		{
			name:        "Malformed JSON",
			content:     `{"theme": `,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.content))
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, Default(), s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "light"} // trailing`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Theme)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	s, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, Default(), s)
}
