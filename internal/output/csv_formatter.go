package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes a header row followed by one row per result, in input order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Operation", "Input", "Locale", "Output"}); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Operation, r.Input, r.Locale, r.Output}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
