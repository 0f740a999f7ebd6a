// Package config defines the settings consumed by every jshintmate component.
// These types are pure data structures; populating them from the process
// environment is the job of internal/configloader.
package config

import (
	"os"
	"path/filepath"
)

// OutputFormat specifies how the report is rendered.
type OutputFormat string

const (
	// FormatHTML renders the editor report document.
	FormatHTML OutputFormat = "html"
	// FormatText renders a styled plain-text report for terminals.
	FormatText OutputFormat = "text"
	// FormatAuto picks text when stdout is a terminal outside the editor.
	FormatAuto OutputFormat = "auto"
)

// IsValid returns true if the format is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatText, FormatAuto:
		return true
	default:
		return false
	}
}

// Reporter selection values for the engine.
const (
	// ReporterAuto uses the bundled JSON reporter script when present, else jslint.
	ReporterAuto = "auto"
	// ReporterJSLint selects the engine's built-in XML reporter.
	ReporterJSLint = "jslint"
)

// Defaults.
const (
	DefaultEngine           = "jshint"
	DefaultMaxSearchDepth   = 30
	DefaultPackageFile      = "package.json"
	DefaultPackageConfigKey = "jsonHintConfig"
	DefaultRCFileName       = ".jshintrc"
	DefaultMarkerDirName    = "jshintmate-markers"
	DefaultLogLevel         = "warn"
)

// DefaultExtraPath lists directories appended to the engine's search path
// when missing, so it can be found under a restrictive editor PATH.
func DefaultExtraPath() []string {
	return []string{"/usr/local/bin", "/opt/homebrew/bin", "/usr/bin", "/bin"}
}

// Settings is the root configuration for a single invocation.
type Settings struct {
	// Target buffer (editor-provided, never read from the settings file).

	// FilePath is the absolute path of the file being validated, empty for unsaved buffers.
	FilePath string `yaml:"-"`

	// Directory is the directory containing FilePath, empty for unsaved buffers.
	Directory string `yaml:"-"`

	// Scope is the editor's scope identifier for the buffer (e.g. "source.js").
	Scope string `yaml:"-"`

	// InputStartLine is the 1-based line where stdin begins within the buffer.
	// Zero means the input is the whole buffer.
	InputStartLine int `yaml:"-"`

	// BundleSupport is the support directory injected into the HTML shell.
	BundleSupport string `yaml:"-"`

	// Quiet suppresses the report when there is nothing to show.
	Quiet bool `yaml:"-"`

	// Persistent options.

	// Engine is the executable name or path of the lint engine.
	Engine string `yaml:"engine"`

	// Reporter is "auto", "jslint", or a path to a JSON reporter script.
	Reporter string `yaml:"reporter"`

	// Format is the output format.
	Format OutputFormat `yaml:"format"`

	// MaxSearchDepth bounds the ancestor walk during config discovery.
	MaxSearchDepth int `yaml:"max_search_depth"`

	// PackageConfigKey is the package.json key naming an override config file.
	PackageConfigKey string `yaml:"package_config_key"`

	// RCFileName is the dotfile searched for in ancestor directories.
	RCFileName string `yaml:"rc_file_name"`

	// MarkerRoot is the shared directory holding date-partitioned marker files.
	MarkerRoot string `yaml:"marker_root"`

	// ExtraPath is appended to the engine's PATH when entries are missing.
	ExtraPath []string `yaml:"extra_path"`

	// LogLevel is the stderr log level.
	LogLevel string `yaml:"log_level"`
}

// NewSettings returns Settings with sensible defaults.
func NewSettings() *Settings {
	return &Settings{
		Engine:           DefaultEngine,
		Reporter:         ReporterAuto,
		Format:           FormatHTML,
		MaxSearchDepth:   DefaultMaxSearchDepth,
		PackageConfigKey: DefaultPackageConfigKey,
		RCFileName:       DefaultRCFileName,
		MarkerRoot:       filepath.Join(os.TempDir(), DefaultMarkerDirName),
		ExtraPath:        DefaultExtraPath(),
		LogLevel:         DefaultLogLevel,
	}
}

// LineOffset returns the constant added to engine line numbers to make them
// whole-buffer line numbers.
func (s *Settings) LineOffset() int {
	if s == nil || s.InputStartLine <= 1 {
		return 0
	}
	return s.InputStartLine - 1
}

// HasTargetFile reports whether the buffer is backed by a saved file.
func (s *Settings) HasTargetFile() bool {
	return s != nil && s.FilePath != ""
}
