package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/campusfood/displayfmt/internal/locale"
)

// Settings is the configuration of the display formatters.
type Settings struct {
	DefaultLocale string          `yaml:"default_locale"`
	TimeZone      string          `yaml:"time_zone"`
	Locales       []locale.Locale `yaml:"locales"`
}

// DefaultSettings returns the built-in configuration: es-CO in America/Bogota.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultLocale: locale.DefaultTag,
		TimeZone:      "America/Bogota",
	}
}

// InputParser handles parsing of settings files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads settings from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes settings, fills unset fields from DefaultSettings and validates the result
func (ip *InputParser) Parse(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return settings, nil
}

// ValidateSettings validates the loaded settings
func (ip *InputParser) ValidateSettings(settings *Settings) error {
	if settings.TimeZone == "" {
		return fmt.Errorf("time_zone is required")
	}
	if _, err := time.LoadLocation(settings.TimeZone); err != nil {
		return fmt.Errorf("unknown time_zone %q: %w", settings.TimeZone, err)
	}

	for i, l := range settings.Locales {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("locale %d validation failed: %w", i, err)
		}
	}

	// Building the registry checks that the default locale exists.
	if _, err := settings.registry(); err != nil {
		return err
	}

	return nil
}

// Build resolves the settings into a locale registry and a time zone.
func (s *Settings) Build() (*locale.Registry, *time.Location, error) {
	registry, err := s.registry()
	if err != nil {
		return nil, nil, err
	}
	tz, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown time_zone %q: %w", s.TimeZone, err)
	}
	return registry, tz, nil
}

// Configured locales come after the built-ins so they override them.
func (s *Settings) registry() (*locale.Registry, error) {
	all := append(locale.Builtin(), s.Locales...)
	registry, err := locale.NewRegistry(s.DefaultLocale, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to build locale registry: %w", err)
	}
	return registry, nil
}
