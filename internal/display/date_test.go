package display

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/campusfood/displayfmt/internal/locale"
)

func esCO() locale.Locale { return locale.Builtin()[0] }
func enUS() locale.Locale { return locale.Builtin()[1] }

func TestFormatDate(t *testing.T) {
	utc := New(esCO(), time.UTC)

	tests := []struct {
		name  string
		f     *Formatter
		input any
		want  string
	}{
		{"Spanish ISO string", utc, "2023-07-15T15:00:00Z", "15 de julio de 2023"},
		{"Spanish native time", utc, time.Date(2023, 7, 15, 15, 0, 0, 0, time.UTC), "15 de julio de 2023"},
		{"Spanish date only", utc, "2024-01-01", "1 de enero de 2024"},
		{"English", New(enUS(), time.UTC), "2023-07-15T15:00:00Z", "July 15, 2023"},
		{"Default zone shifts day back", Default(), "2023-07-16T02:00:00Z", "15 de julio de 2023"},
		{"Default zone keeps day", Default(), "2023-07-15T15:00:00Z", "15 de julio de 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.FormatDate(tt.input))
		})
	}
}

func TestFormatDateAllMonths(t *testing.T) {
	f := New(esCO(), time.UTC)
	want := []string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	for i, month := range want {
		d := time.Date(2023, time.Month(i+1), 3, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, fmt.Sprintf("3 de %s de 2023", month), f.FormatDate(d))
	}
}

// The same instant renders identically whatever its representation
func TestFormatDateRepresentationsAgree(t *testing.T) {
	native := time.Date(2023, 7, 15, 15, 0, 0, 0, time.UTC)
	iso := native.Format(time.RFC3339)

	assert.Equal(t, FormatDate(native), FormatDate(iso))
	assert.Equal(t, FormatDate(native), FormatDate(&native))
	assert.Equal(t, FormatDateTime(native), FormatDateTime(iso))

	got := FormatDate(iso)
	assert.Contains(t, got, "15")
	assert.Contains(t, got, "julio")
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "15 de julio de 2023, 10:00", FormatDateTime("2023-07-15T15:00:00Z"))
	assert.Equal(t, "July 15, 2023, 15:00", New(enUS(), time.UTC).FormatDateTime("2023-07-15T15:00:00Z"))
	assert.Equal(t, "31 de diciembre de 2023, 23:59",
		New(esCO(), time.UTC).FormatDateTime("2023-12-31T23:59:59.999Z"))
}

func TestFormatDateTimeZeroPadding(t *testing.T) {
	f := New(esCO(), time.UTC)
	for m := 0; m < 10; m++ {
		got := f.FormatDateTime(time.Date(2024, 3, 9, 7, m, 0, 0, time.UTC))
		assert.True(t, strings.HasSuffix(got, fmt.Sprintf(", 07:0%d", m)), "got %q", got)
	}
}

func TestFormatDateInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := New(esCO(), time.UTC, WithLogger(zap.New(core).Sugar()))

	for _, input := range []any{"not a date", "", 12345, nil, time.Time{}} {
		assert.Equal(t, InvalidDate, f.FormatDate(input))
		assert.Equal(t, InvalidDate, f.FormatDateTime(input))
	}

	require.Equal(t, 10, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}
