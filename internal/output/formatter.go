package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned for output format names with no formatter.
var ErrUnknownFormat = errors.New("unknown output format")

// Result is one rendered value: the operation applied, the raw input and the
// display string produced for a locale.
type Result struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Locale    string `json:"locale"`
	Output    string `json:"output"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results []Result) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TextFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"":            "text",
	"plain":       "text",
	"txt":         "text",
	"console":     "text",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// Write renders results with the named formatter into w.
func Write(w io.Writer, format string, results []Result) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, format,
			strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
