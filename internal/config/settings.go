package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFileNames are looked up in this order in each directory.
var SettingsFileNames = []string{"altlisp.yaml", "altlisp.yml"}

// Settings is the optional altlisp.yaml file.
type Settings struct {
	// Prompt shown by the REPL. Defaults to DefaultPrompt.
	Prompt string `yaml:"prompt,omitempty"`

	// Banner toggles the version banner at REPL start. Defaults to true.
	Banner *bool `yaml:"banner,omitempty"`

	// HistoryFile keeps REPL history between sessions. A leading "~/" is
	// expanded to the home directory. Empty disables history.
	HistoryFile string `yaml:"history_file,omitempty"`

	// Prelude files are loaded before scripts or the REPL run. Relative
	// paths are resolved against the directory of the settings file.
	Prelude []string `yaml:"prelude,omitempty"`

	// FloatPrecision is the number of digits printed after the decimal
	// point for floats. Defaults to 6.
	FloatPrecision *int `yaml:"float_precision,omitempty"`

	// Path of the file these settings came from; empty for defaults.
	Path string `yaml:"-"`
}

const defaultFloatPrecision = 6

// DefaultSettings is used when no settings file exists.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}

// LoadSettings reads and parses a settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses altlisp.yaml content from bytes.
// The path is used for error messages and to resolve prelude files.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.validate(path); err != nil {
		return nil, err
	}
	s.Path = path
	s.setDefaults()
	return &s, nil
}

// FindSettings searches for altlisp.yaml starting from dir and walking up
// to the filesystem root. Returns "" without error when none exists.
func FindSettings(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range SettingsFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the settings named by explicit, or the nearest settings
// file above dir, or the defaults.
func Resolve(explicit, dir string) (*Settings, error) {
	if explicit != "" {
		return LoadSettings(explicit)
	}
	path, err := FindSettings(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}

func (s *Settings) validate(path string) error {
	if s.FloatPrecision != nil && *s.FloatPrecision < 0 {
		return fmt.Errorf("%s: float_precision must not be negative, got %d", path, *s.FloatPrecision)
	}
	for i, p := range s.Prelude {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s: prelude[%d]: empty path", path, i)
		}
	}
	return nil
}

func (s *Settings) setDefaults() {
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.Banner == nil {
		on := true
		s.Banner = &on
	}
	if s.FloatPrecision == nil {
		p := defaultFloatPrecision
		s.FloatPrecision = &p
	}
}

// ShowBanner reports whether the REPL prints its banner.
func (s *Settings) ShowBanner() bool {
	return s.Banner == nil || *s.Banner
}

// Precision returns the configured float precision.
func (s *Settings) Precision() int {
	if s.FloatPrecision == nil {
		return defaultFloatPrecision
	}
	return *s.FloatPrecision
}

// HistoryPath expands the history file location. Empty means no history.
func (s *Settings) HistoryPath() string {
	if s.HistoryFile == "" {
		return ""
	}
	if strings.HasPrefix(s.HistoryFile, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, s.HistoryFile[2:])
		}
	}
	return s.HistoryFile
}

// PreludePaths returns the prelude files with relative entries resolved
// against the settings file's directory.
func (s *Settings) PreludePaths() []string {
	base := ""
	if s.Path != "" {
		base = filepath.Dir(s.Path)
	}
	out := make([]string, 0, len(s.Prelude))
	for _, p := range s.Prelude {
		if !filepath.IsAbs(p) && base != "" {
			p = filepath.Join(base, p)
		}
		out = append(out, p)
	}
	return out
}
