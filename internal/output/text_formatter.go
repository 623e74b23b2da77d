package output

import (
	"bytes"
	"fmt"
)

// TextFormatter prints one display string per line, for piping into other tools.
type TextFormatter struct{}

func (TextFormatter) Name() string { return "text" }

func (TextFormatter) Format(results []Result) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range results {
		fmt.Fprintln(&buf, r.Output)
	}
	return buf.Bytes(), nil
}
