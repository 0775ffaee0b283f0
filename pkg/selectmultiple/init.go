// Package selectmultiple provides a controlled multi-select list for
// graphical applications on embedded Linux devices, particularly handheld
// gaming consoles running custom firmware like Cannoli.
//
// The package handles SDL initialization, input processing and theming, and
// provides the SelectMultiple component plus a Confirm dialog. The component
// never owns the selection: it reports each toggle through
// OnSelectionsChange and draws whatever the owner passes back through
// SetProps.
package selectmultiple

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/locale"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/platform/cannoli"
)

// Options configures the toolkit initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color
	FontPath             string                 // Theme font; defaults to FONT_PATH, then the Cannoli font
	ControllerConfigFile string                 // Path to a JSON controller mapping file
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	LogFilename          string                 // Deprecated: Use LogPath instead. Log filename within "logs" directory.
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	Language             string                 // BCP 47 tag for built-in strings (footer hints, dialogs)
	PowerButton          bool                   // Handle the device power button (ignored in dev mode)
}

var localizer = locale.New()

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other toolkit functions.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv(constants.NitratesEnvVar) != "" || os.Getenv(constants.InputCaptureEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	SetLanguage(options.Language)

	// Set face button flip preference before input mapping is loaded
	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if options.ControllerConfigFile != "" {
		data, err := os.ReadFile(options.ControllerConfigFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to read controller mapping", "path", options.ControllerConfigFile, "error", err)
		} else {
			internal.SetInputMappingBytes(data)
		}
	}

	theme := cannoli.InitCannoliTheme(options.FontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.PowerButton {
		pbc = DefaultPowerButtonConfig()
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// DefaultPowerButtonConfig is the power button setup for supported handhelds.
// TG5050 uses /dev/input/event2, all others use /dev/input/event1.
func DefaultPowerButtonConfig() internal.PowerButtonConfig {
	powerDevicePath := "/dev/input/event1"
	if strings.Contains(strings.ToUpper(os.Getenv("PLATFORM")), "TG5050") {
		powerDevicePath = "/dev/input/event2"
	}

	return internal.PowerButtonConfig{
		ButtonCode:      116,
		DevicePath:      powerDevicePath,
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

// Close releases all SDL resources and shuts down the toolkit.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLanguage selects the language of the toolkit's built-in strings.
// Unsupported languages fall back to English.
func SetLanguage(tag string) {
	if tag == "" {
		localizer = locale.New()
	} else {
		localizer = locale.New(tag)
	}
	internal.GetInternalLogger().Debug("Language selected", "requested", tag, "using", localizer.Tag().String())
}

// Localizer returns the localizer used for built-in strings, so hosts can
// phrase their own prompts consistently.
func Localizer() *locale.Localizer {
	return localizer
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogFilename sets the filename for the log file within the "logs" directory.
// Deprecated: Use SetLogPath instead for full path support.
// Call before Init() to take effect during initialization.
func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInputMappingBytes loads a custom input mapping from JSON bytes.
// Use this to override the default controller/keyboard bindings.
func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

// SaveDefaultInputMapping writes the built-in mapping as JSON, as a
// starting point for a custom ControllerConfigFile.
func SaveDefaultInputMapping(path string, flip bool) error {
	if err := internal.DefaultInputMapping(flip).SaveToJSON(path); err != nil {
		return fmt.Errorf("save input mapping: %w", err)
	}
	return nil
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// When true, uses A=A, B=B, X=X, Y=Y instead of the default Nintendo-style swap.
// Can also be set via the FLIP_FACE_BUTTONS environment variable.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
