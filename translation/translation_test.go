package translation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTableNames(t *testing.T) {
	require.Equal(t, "January", English.Month(time.January))
	require.Equal(t, "décembre", French.Month(time.December))
	require.Equal(t, "Unknown", English.Month(time.Month(13)))
	require.Equal(t, "Unknown", English.Month(time.Month(0)))

	require.Equal(t, "Sun", English.Weekday(time.Sunday))
	require.Equal(t, "sam.", French.Weekday(time.Saturday))
	require.Equal(t, "Unknown", English.Weekday(time.Weekday(7)))
}

func TestBuiltinTablesAreComplete(t *testing.T) {
	for _, table := range All() {
		t.Run(table.Language, func(t *testing.T) {
			require.NotEmpty(t, table.Today)
			for _, m := range table.Months {
				require.NotEmpty(t, m)
			}
			for _, d := range table.WeekdaysShort {
				require.NotEmpty(t, d)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := [...]struct {
		lang string
		want *Table
	}{
		{"en", &English},
		{"en-GB", &English},
		{"fr", &French},
		{"fr-CA", &French},
		{"de-AT", &German},
		{"ru", &Russian},
		{"ja-JP", &Japanese},
		{"not a tag!", &English},
		{"", &English},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			require.Same(t, tt.want, LookupString(tt.lang))
		})
	}

	require.Same(t, &French, Lookup(language.CanadianFrench))
}

const dutch = `
language: nl
months: [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
weekdays_short: [zo, ma, di, wo, do, vr, za]
today: Vandaag
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(dutch))
	require.NoError(t, err)
	require.Equal(t, "nl", table.Language)
	require.Equal(t, "maart", table.Month(time.March))
	require.Equal(t, "za", table.Weekday(time.Saturday))
	require.Equal(t, "Vandaag", table.Today)
}

func TestParseDefaultsToday(t *testing.T) {
	table, err := Parse([]byte(`
months: [a, b, c, d, e, f, g, h, i, j, k, l]
weekdays_short: [1, 2, 3, 4, 5, 6, 7]
`))
	require.NoError(t, err)
	require.Equal(t, "Today", table.Today)
}

func TestParseErrors(t *testing.T) {
	tests := [...]struct {
		name string
		doc  string
		want string
	}{
		{"not yaml", "months: [a, b", "can't parse translation"},
		{"short months", "months: [a]\nweekdays_short: [1, 2, 3, 4, 5, 6, 7]", "want 12 months, got 1"},
		{"short weekdays", "months: [a, b, c, d, e, f, g, h, i, j, k, l]\nweekdays_short: [1]", "want 7 weekdays, got 1"},
		{"empty month", "months: [a, b, c, d, '', f, g, h, i, j, k, l]\nweekdays_short: [1, 2, 3, 4, 5, 6, 7]", "month 5 has no name"},
		{"empty weekday", "months: [a, b, c, d, e, f, g, h, i, j, k, l]\nweekdays_short: [1, 2, ' ', 4, 5, 6, 7]", "weekday 2 has no name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
			require.True(t, strings.HasPrefix(err.Error(), "can't parse translation"), err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dutch), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "december", table.Month(time.December))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
