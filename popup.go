package datepicker

import (
	"time"

	"go.hasen.dev/datepicker/shirei"
)

// The popup of a picker stays open across frames, so its state lives in a
// data hook keyed by the picker id rather than in a container hook.

type popupState struct {
	// top-left corner in window coordinates; only kept for movable popups
	pos    shirei.Vec2
	placed bool

	// month list under the month label
	monthsOpen bool
}

type popupKey struct {
	picker any
}

const (
	popupItem   = "popup"
	pendingItem = "pending"
)

// A selection made in the popup is applied by the next call of the picker.
// It is kept apart from the popup state so closing the popup in between
// does not lose it.
type pendingDate struct {
	date time.Time
}

func setPending(picker any, t time.Time) {
	shirei.UseData[pendingDate](popupKey{picker}, pendingItem).date = t
}

func takePending(picker any) (time.Time, bool) {
	p, ok := shirei.PeekData[pendingDate](popupKey{picker}, pendingItem)
	if !ok {
		return time.Time{}, false
	}
	shirei.DeleteHookedData(popupKey{picker}, pendingItem)
	return p.date, true
}

func popupOf(id any) (*popupState, bool) {
	return shirei.PeekData[popupState](popupKey{id}, popupItem)
}

func IsPopupOpen(id any) bool {
	_, open := popupOf(id)
	return open
}

func ClosePopup(id any) {
	shirei.DeleteHookedData(popupKey{id}, popupItem)
}

func OpenPopup(id any) {
	shirei.UseData[popupState](popupKey{id}, popupItem)
}

func TogglePopup(id any) {
	if IsPopupOpen(id) {
		ClosePopup(id)
	} else {
		OpenPopup(id)
	}
}

// ids of the elements the picker draws; tests and callers can look up their
// rects with shirei.GetResolvedRectOf

type ButtonId struct{ Picker any }

type PopupId struct{ Picker any }

type DayId struct {
	Picker any
	Year   int
	Month  time.Month
	Day    int
}

type controlId struct {
	Picker any
	Name   string
}

func PrevMonthId(picker any) any { return controlId{picker, "prev-month"} }
func NextMonthId(picker any) any { return controlId{picker, "next-month"} }
func MonthId(picker any) any     { return controlId{picker, "month"} }
func PrevYearId(picker any) any  { return controlId{picker, "prev-year"} }
func NextYearId(picker any) any  { return controlId{picker, "next-year"} }
func YearId(picker any) any      { return controlId{picker, "year"} }
func TodayId(picker any) any     { return controlId{picker, "today"} }
func TitleId(picker any) any     { return controlId{picker, "title"} }

func MonthItemId(picker any, m time.Month) any {
	return controlId{picker, "month-" + m.String()}
}

func dayIdOf(picker any, t time.Time) DayId {
	y, m, d := t.Date()
	return DayId{Picker: picker, Year: y, Month: m, Day: d}
}
