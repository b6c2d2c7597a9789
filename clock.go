package datepicker

import "time"

//go:generate mockgen -source=clock.go -destination=clock_mock_test.go -package=datepicker

// Clock tells the "today" button what today is.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
