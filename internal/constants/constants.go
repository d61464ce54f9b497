package constants

// Application identity
const (
	AppID    = "com.calculator.desktop"
	AppTitle = "Calculator"
	// AppUserModelID groups the window under its own taskbar icon on Windows.
	AppUserModelID = "Calculator.Desktop.Calculator.1"
)

// File names
const (
	SettingsFileName = "settings.jsonc"
	MainLogFileName  = "calculator.log"
)

// Directory names
const (
	LogsDirName = "logs"
)

// Application version
// Can be overridden at build time using -ldflags="-X calculator/internal/constants.AppVersion=..."
var (
	AppVersion = "v1.0.0"
)

// UI Theme settings
const (
	// Theme options: "dark", "light", or "default" (follows system theme)
	AppTheme = "dark"

	// Initial text of the info label
	DefaultInfoText = "Your account:"
)

// Sizing, in pixels
const (
	BigFontSize    = 40
	MediumFontSize = 24
	SmallFontSize  = 18
	TextMargin     = 15
	MinimumWidth   = 500
	ButtonSize     = 75
)

// Colors of the special (non-digit) buttons
const (
	PrimaryColor         = "#1e81b0"
	DarkerPrimaryColor   = "#16658a"
	DarkestPrimaryColor  = "#115270"
	SpecialButtonTextHex = "#ffffff"
)
