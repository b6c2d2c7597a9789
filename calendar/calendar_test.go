package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	tests := [...]struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"january", 2023, time.January, 31},
		{"april", 2023, time.April, 30},
		{"february common year", 2023, time.February, 28},
		{"february leap year", 2024, time.February, 29},
		{"february century", 1900, time.February, 28},
		{"february 400 years", 2000, time.February, 29},
		{"december rolls over", 2023, time.December, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestOffsets(t *testing.T) {
	// 1 March 2024 is a Friday, 1 April 2024 is a Monday
	march := date(2024, time.March, 1)
	april := date(2024, time.April, 1)

	require.Equal(t, 4, StartOffset(march, time.Monday))
	require.Equal(t, 5, StartOffset(march, time.Sunday))

	require.Equal(t, 0, EndOffset(april, time.Monday))
	require.Equal(t, 6, EndOffset(april, time.Sunday))
}

func TestGrid(t *testing.T) {
	type testcase struct {
		name         string
		date         time.Time
		firstWeekday time.Weekday

		wantLen   int
		wantFirst time.Time
		wantLast  time.Time
	}

	tests := [...]testcase{
		{
			name:         "march 2024 monday first",
			date:         date(2024, time.March, 17),
			firstWeekday: time.Monday,
			wantLen:      35,
			wantFirst:    date(2024, time.February, 26),
			wantLast:     date(2024, time.March, 31),
		},
		{
			name:         "march 2024 sunday first",
			date:         date(2024, time.March, 17),
			firstWeekday: time.Sunday,
			wantLen:      42,
			wantFirst:    date(2024, time.February, 25),
			wantLast:     date(2024, time.April, 6),
		},
		{
			name:         "february 2021 fits four rows",
			date:         date(2021, time.February, 10),
			firstWeekday: time.Monday,
			wantLen:      28,
			wantFirst:    date(2021, time.February, 1),
			wantLast:     date(2021, time.February, 28),
		},
		{
			name:         "december spills into next year",
			date:         date(2023, time.December, 31),
			firstWeekday: time.Monday,
			wantLen:      35,
			wantFirst:    date(2023, time.November, 27),
			wantLast:     date(2023, time.December, 31),
		},
		{
			name:         "january 2022 sunday first",
			date:         date(2022, time.January, 1),
			firstWeekday: time.Sunday,
			wantLen:      42,
			wantFirst:    date(2021, time.December, 26),
			wantLast:     date(2022, time.February, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Grid(tt.date, tt.firstWeekday)
			require.Len(t, cells, tt.wantLen)
			require.Zero(t, len(cells)%DaysPerWeek)
			require.Equal(t, tt.wantFirst, cells[0])
			require.Equal(t, tt.wantLast, cells[len(cells)-1])
			require.Equal(t, tt.firstWeekday, cells[0].Weekday())

			first := FirstOfMonth(tt.date)
			require.Equal(t, first, cells[StartOffset(first, tt.firstWeekday)])

			for i := 1; i < len(cells); i++ {
				require.Equal(t, cells[i-1].AddDate(0, 0, 1), cells[i])
			}
		})
	}
}

func TestGridKeepsLocation(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	cells := Grid(time.Date(2024, time.May, 5, 23, 30, 0, 0, tokyo), time.Monday)
	for _, c := range cells {
		require.Equal(t, tokyo, c.Location())
		require.Zero(t, c.Hour())
	}
}

func TestWeekdayOrder(t *testing.T) {
	require.Equal(t,
		[7]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday},
		WeekdayOrder(time.Monday))
	require.Equal(t,
		[7]time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		WeekdayOrder(time.Sunday))
}

func TestStepping(t *testing.T) {
	tests := [...]struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"next month clamps", AddMonths(date(2024, time.January, 31), 1), date(2024, time.February, 29)},
		{"previous month", AddMonths(date(2024, time.March, 31), -1), date(2024, time.February, 29)},
		{"next month over year end", AddMonths(date(2023, time.December, 15), 1), date(2024, time.January, 15)},
		{"previous month over year start", AddMonths(date(2024, time.January, 15), -1), date(2023, time.December, 15)},
		{"many months back", AddMonths(date(2024, time.January, 15), -25), date(2021, time.December, 15)},
		{"next year from leap day", AddYears(date(2024, time.February, 29), 1), date(2025, time.February, 28)},
		{"previous year", AddYears(date(2024, time.June, 1), -1), date(2023, time.June, 1)},
		{"with year clamps", WithYear(date(2024, time.February, 29), 2023), date(2023, time.February, 28)},
		{"with month clamps", WithMonth(date(2023, time.August, 31), time.September), date(2023, time.September, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestClampDay(t *testing.T) {
	require.Equal(t, 1, ClampDay(2024, time.May, 0))
	require.Equal(t, 30, ClampDay(2024, time.June, 31))
	require.Equal(t, 12, ClampDay(2024, time.June, 12))
}

func TestPredicates(t *testing.T) {
	require.True(t, IsWeekend(date(2024, time.March, 16)))
	require.True(t, IsWeekend(date(2024, time.March, 17)))
	require.False(t, IsWeekend(date(2024, time.March, 18)))

	utc := time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)
	require.True(t, SameDay(utc, date(2024, time.March, 1)))
	require.False(t, SameDay(utc.In(time.FixedZone("+3", 3*60*60)), date(2024, time.March, 1)))
	require.True(t, SameMonth(date(2024, time.March, 1), date(2024, time.March, 31)))
	require.False(t, SameMonth(date(2024, time.March, 1), date(2023, time.March, 1)))

	require.Equal(t, date(2024, time.March, 1), StartOfDay(utc))
}
