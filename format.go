package datepicker

import (
	"time"

	"github.com/dboslee/lru"
	"github.com/lestrrat-go/strftime"

	"go.hasen.dev/datepicker/internal/errors"
	"go.hasen.dev/datepicker/shirei"
)

type compiledFormat struct {
	pattern *strftime.Strftime
	err     error
}

// a label is formatted every frame, so patterns are compiled once
var formats = lru.New[string, compiledFormat]()

func compileFormat(format string) compiledFormat {
	if cf, ok := formats.Get(format); ok {
		return cf
	}
	var cf compiledFormat
	cf.pattern, cf.err = strftime.New(format)
	if cf.err != nil {
		cf.err = errors.WrapFailf(cf.err, "compile date format %q", format)
		shirei.Logger().Warn(cf.err)
	}
	formats.Set(format, cf)
	return cf
}

// FormatDate renders t with a strftime pattern. When the pattern does not
// compile the date is rendered with DefaultFormat and the error is returned
// along with it.
func FormatDate(t time.Time, format string) (string, error) {
	cf := compileFormat(format)
	if cf.err != nil {
		return compileFormat(DefaultFormat).pattern.FormatString(t), cf.err
	}
	return cf.pattern.FormatString(t), nil
}
