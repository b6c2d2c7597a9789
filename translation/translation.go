// Package translation holds the strings shown by the date picker: month
// names, short weekday names and the label of the "today" button.
package translation

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"go.hasen.dev/datepicker/internal/errors"
)

const unknown = "Unknown"

type Table struct {
	Language string

	// full month names, starting at January
	Months [12]string

	// short weekday names, starting at Sunday so they index by time.Weekday
	WeekdaysShort [7]string

	// label of the button that jumps to the current date
	Today string
}

func (t *Table) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return unknown
	}
	return t.Months[m-1]
}

func (t *Table) Weekday(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return unknown
	}
	return t.WeekdaysShort[d]
}

var tables = []*Table{&English, &French, &German, &Russian, &Japanese}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = language.MustParse(t.Language)
	}
	return language.NewMatcher(tags)
}()

// All lists the built-in tables, English first.
func All() []*Table {
	return append([]*Table(nil), tables...)
}

// Lookup picks the built-in table that best matches tag. English is the
// fallback when nothing matches.
func Lookup(tag language.Tag) *Table {
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return &English
	}
	return tables[idx]
}

// LookupString is Lookup for a BCP 47 string such as "fr-CA" or "de".
func LookupString(lang string) *Table {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return &English
	}
	return Lookup(tag)
}

type tableDoc struct {
	Language      string   `yaml:"language"`
	Months        []string `yaml:"months"`
	WeekdaysShort []string `yaml:"weekdays_short"`
	Today         string   `yaml:"today"`
}

// Parse reads a table from YAML:
//
//	language: nl
//	months: [januari, februari, ...]
//	weekdays_short: [zo, ma, di, wo, do, vr, za]
//	today: Vandaag
func Parse(data []byte) (*Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapFail(err, "parse translation")
	}
	table, err := doc.table()
	if err != nil {
		return nil, errors.WrapFail(err, "parse translation")
	}
	return table, nil
}

func (doc tableDoc) table() (*Table, error) {
	if len(doc.Months) != len(Table{}.Months) {
		return nil, errors.Errorf("want 12 months, got %d", len(doc.Months))
	}
	if len(doc.WeekdaysShort) != len(Table{}.WeekdaysShort) {
		return nil, errors.Errorf("want 7 weekdays, got %d", len(doc.WeekdaysShort))
	}

	var out Table
	out.Language = doc.Language
	out.Today = doc.Today
	copy(out.Months[:], doc.Months)
	copy(out.WeekdaysShort[:], doc.WeekdaysShort)

	for i, name := range out.Months {
		if strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("month %d has no name", i+1)
		}
	}
	for i, name := range out.WeekdaysShort {
		if strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("weekday %d has no name", i)
		}
	}
	if strings.TrimSpace(out.Today) == "" {
		out.Today = English.Today
	}
	return &out, nil
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read translation %s", path)
	}
	return Parse(data)
}
