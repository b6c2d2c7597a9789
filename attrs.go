package datepicker

import (
	"time"

	"go.hasen.dev/datepicker/calendar"
	"go.hasen.dev/datepicker/shirei"
	"go.hasen.dev/datepicker/translation"
)

const DefaultFormat = "%Y-%m-%d"

// rgb(196, 0, 0)
var DefaultWeekendColor = shirei.RGBA(196, 0, 0, 0xff)

// Attrs configures a date picker. The zero value is usable: every zero field
// falls back to its default.
type Attrs struct {
	SundayFirst bool // weeks start on Monday otherwise
	Movable     bool // the popup can be dragged by its title strip

	// strftime pattern for the button label
	Format string

	NoWeekendHighlight bool
	WeekendColor       shirei.Vec4
	IsWeekend          func(time.Time) bool

	Translation *translation.Table
	Clock       Clock
}

type AttrsFn func(*Attrs)

func (a Attrs) withDefaults() Attrs {
	if a.Format == "" {
		a.Format = DefaultFormat
	}
	if a.WeekendColor == (shirei.Vec4{}) {
		a.WeekendColor = DefaultWeekendColor
	}
	if a.IsWeekend == nil {
		a.IsWeekend = calendar.IsWeekend
	}
	if a.Translation == nil {
		a.Translation = &translation.English
	}
	if a.Clock == nil {
		a.Clock = SystemClock{}
	}
	return a
}

func (a Attrs) firstWeekday() time.Weekday {
	if a.SundayFirst {
		return time.Sunday
	}
	return time.Monday
}

func (a Attrs) highlighted(t time.Time) bool {
	return !a.NoWeekendHighlight && a.IsWeekend(t)
}

// DP builds attributes from the defaults, like tw.TW does for containers.
func DP(fns ...AttrsFn) Attrs {
	var a Attrs
	for _, fn := range fns {
		fn(&a)
	}
	return a.withDefaults()
}

func SundayFirst(flag bool) AttrsFn {
	return func(a *Attrs) {
		a.SundayFirst = flag
	}
}

func Movable(flag bool) AttrsFn {
	return func(a *Attrs) {
		a.Movable = flag
	}
}

func DateFormat(format string) AttrsFn {
	return func(a *Attrs) {
		a.Format = format
	}
}

func HighlightWeekend(flag bool) AttrsFn {
	return func(a *Attrs) {
		a.NoWeekendHighlight = !flag
	}
}

func HighlightWeekendColor(h, s, l, alpha float32) AttrsFn {
	return func(a *Attrs) {
		a.WeekendColor = shirei.Vec4{h, s, l, alpha}
	}
}

func HighlightWeekendRGB(r, g, b uint8) AttrsFn {
	return func(a *Attrs) {
		a.WeekendColor = shirei.RGBA(r, g, b, 0xff)
	}
}

// WeekendDays replaces the Saturday/Sunday rule.
func WeekendDays(isWeekend func(time.Time) bool) AttrsFn {
	return func(a *Attrs) {
		a.IsWeekend = isWeekend
	}
}

func WithTranslation(t *translation.Table) AttrsFn {
	return func(a *Attrs) {
		a.Translation = t
	}
}

func WithClock(c Clock) AttrsFn {
	return func(a *Attrs) {
		a.Clock = c
	}
}
