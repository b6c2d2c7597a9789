// Package calendar holds the date arithmetic behind the month grid of the
// date picker. Every function keeps the location of its input; nothing here
// converts between time zones.
package calendar

import "time"

const DaysPerWeek = 7

// DaysInMonth counts the days between the first of the month and the first of
// the following month. Day 0 of the next month is the last day of this one,
// and time.Date takes care of rolling December over into the next year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	last := DaysInMonth(year, month)
	if day > last {
		return last
	}
	return day
}

// daysFrom is the number of days from `first` forward to `d` (0..6).
func daysFrom(first time.Weekday, d time.Weekday) int {
	return (int(d) - int(first) + DaysPerWeek) % DaysPerWeek
}

// StartOffset is the number of cells that precede the first day of the month
// in a grid whose rows begin on firstWeekday.
func StartOffset(firstOfMonth time.Time, firstWeekday time.Weekday) int {
	return daysFrom(firstWeekday, firstOfMonth.Weekday())
}

// EndOffset is the number of cells taken from the next month so that the last
// row of the grid is complete.
func EndOffset(firstOfNextMonth time.Time, firstWeekday time.Weekday) int {
	return (DaysPerWeek - daysFrom(firstWeekday, firstOfNextMonth.Weekday())) % DaysPerWeek
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// Grid returns every cell of the month view that contains date: the trailing
// days of the previous month, the month itself and the leading days of the
// next month. The length is always a multiple of 7.
func Grid(date time.Time, firstWeekday time.Weekday) []time.Time {
	first := FirstOfMonth(date)
	days := DaysInMonth(first.Year(), first.Month())
	nextFirst := first.AddDate(0, 0, days)

	start := StartOffset(first, firstWeekday)
	end := EndOffset(nextFirst, firstWeekday)

	cells := make([]time.Time, 0, start+days+end)
	origin := first.AddDate(0, 0, -start)
	for i := 0; i < start+days+end; i++ {
		cells = append(cells, origin.AddDate(0, 0, i))
	}
	return cells
}

// WeekdayOrder is the column order of the grid header.
func WeekdayOrder(firstWeekday time.Weekday) [DaysPerWeek]time.Weekday {
	var order [DaysPerWeek]time.Weekday
	for i := range order {
		order[i] = time.Weekday((int(firstWeekday) + i) % DaysPerWeek)
	}
	return order
}

// WithYear replaces the year, clamping the day to the length of the month in
// the new year (29 Feb becomes 28 Feb in a common year).
func WithYear(t time.Time, year int) time.Time {
	_, m, d := t.Date()
	return time.Date(year, m, ClampDay(year, m, d), 0, 0, 0, 0, t.Location())
}

func WithMonth(t time.Time, month time.Month) time.Time {
	y, _, d := t.Date()
	return time.Date(y, month, ClampDay(y, month, d), 0, 0, 0, 0, t.Location())
}

// AddMonths steps n calendar months, clamping the day instead of letting it
// overflow into the following month the way time.AddDate does.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	return time.Date(year, month, ClampDay(year, month, d), 0, 0, 0, 0, t.Location())
}

func AddYears(t time.Time, n int) time.Time {
	return WithYear(t, t.Year()+n)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameDay compares calendar dates, each read in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
