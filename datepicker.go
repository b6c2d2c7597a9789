// Package datepicker is a date picker widget for the shirei toolkit: a button
// showing the formatted date which opens a popup with a month grid.
//
//	var date = time.Now()
//
//	func frame() {
//		if datepicker.DatePicker("due", &date, datepicker.SundayFirst(true)) {
//			// date changed
//		}
//		widgets.PopupsHost()
//	}
//
// The popup is drawn through widgets.Popup, so the frame function must call
// widgets.PopupsHost.
package datepicker

import (
	"strconv"
	"time"

	"go.hasen.dev/datepicker/calendar"
	"go.hasen.dev/datepicker/shirei"
	"go.hasen.dev/datepicker/shirei/tw"
	"go.hasen.dev/datepicker/shirei/widgets"
	"go.hasen.dev/datepicker/translation"
)

const (
	minYear = 1
	maxYear = 9999
)

const (
	cellWidth   = 30
	cellGap     = 2
	dayTextSize = 12
)

var weekdayColor = shirei.Vec4{240, 10, 35, 1}

// look shared by the popup and the month list floating over it
var panelFrame = tw.Compose(tw.BGV(widgets.MenuBG), tw.BW(1), tw.Bo(0, 0, 10, 0.8))

func DatePicker(id any, date *time.Time, fns ...AttrsFn) bool {
	return DatePickerExt(id, date, DP(fns...))
}

// DatePickerExt draws the picker button and, while it is open, the popup.
// It reports whether *date changed in this frame. A nil id derives one from
// the position of the picker; pass an explicit id to use TogglePopup and
// friends from outside.
func DatePickerExt(id any, date *time.Time, attrs Attrs) bool {
	if date == nil {
		panic("DatePicker NEEDS A DATE TO EDIT")
	}
	attrs = attrs.withDefaults()

	var changed bool
	shirei.LayoutId(id, tw.TW(), func() {
		picker := shirei.CurrentId()

		// the popup runs after the rest of the frame, so what it selected
		// lands here in the following frame
		if picked, ok := takePending(picker); ok {
			changed = !picked.Equal(*date)
			*date = picked
		}

		label, _ := FormatDate(*date, attrs.Format)
		if widgets.ButtonExt(label, widgets.ButtonAttrs{Id: ButtonId{picker}}) {
			TogglePopup(picker)
		}

		state, open := popupOf(picker)
		if !open {
			return
		}
		if shirei.KeyPressed(shirei.KeyEscape) || shirei.ClickedOutside(ButtonId{picker}, PopupId{picker}) {
			ClosePopup(picker)
			return
		}

		shown := *date
		widgets.Popup(func() {
			drawPopup(picker, shown, state, attrs)
		})
	})
	return changed
}

func drawPopup(picker any, date time.Time, state *popupState, attrs Attrs) {
	popupAttrs := tw.TW(panelFrame, tw.BR(6), tw.Shd(14), tw.Pad(8), tw.Gap(6))
	shirei.LayoutId(PopupId{picker}, popupAttrs, func() {
		pos := widgets.PopupPosition(ButtonId{picker})
		if attrs.Movable {
			// the anchored position only fits the window once the popup
			// has been laid out and its size is known
			if !state.placed && shirei.GetResolvedSize() != (shirei.Vec2{}) {
				state.pos = pos
				state.placed = true
			}
			if state.placed {
				state.pos = widgets.KeepOnScreen(state.pos)
				pos = state.pos
			}
		}
		shirei.ModAttrs(tw.FloatV(pos))

		if attrs.Movable {
			titleStrip(picker, state)
		}
		header(picker, date, state, attrs)
		grid(picker, date, attrs)

		// last so it is drawn over the grid
		if state.monthsOpen {
			monthList(picker, date, state, attrs.Translation)
		}
	})
}

// titleStrip is the handle a movable popup is dragged by.
func titleStrip(picker any, state *popupState) {
	shirei.LayoutId(TitleId(picker), tw.TW(tw.Expand, tw.MinHeight(8), tw.BR(3), tw.BG(220, 15, 85, 1)), func() {
		shirei.PressAction()
		if shirei.IsHovered() || shirei.IsActive() {
			shirei.ModAttrs(tw.BG(220, 25, 75, 1))
		}
		if shirei.IsActive() {
			state.pos = shirei.Vec2Add(state.pos, shirei.FrameInput.Motion)
		}
	})
}

func stepButton(id any, label string, enabled bool) bool {
	return widgets.ButtonExt(label, widgets.ButtonAttrs{Id: id, Ctrl: true, Disabled: !enabled})
}

func header(picker any, date time.Time, state *popupState, attrs Attrs) {
	year, month, _ := date.Date()
	tr := attrs.Translation

	shirei.Layout(tw.TW(tw.Row, tw.CrossMid, tw.Gap(4)), func() {
		if stepButton(PrevMonthId(picker), "<", year > minYear || month > time.January) {
			setPending(picker, calendar.AddMonths(date, -1))
		}
		monthAttrs := widgets.ButtonAttrs{
			Id:        MonthId(picker),
			Ctrl:      true,
			Frameless: !state.monthsOpen,
			MinWidth:  monthLabelWidth(tr),
		}
		if widgets.ButtonExt(tr.Month(month), monthAttrs) {
			state.monthsOpen = !state.monthsOpen
		}
		if stepButton(NextMonthId(picker), ">", year < maxYear || month < time.December) {
			setPending(picker, calendar.AddMonths(date, 1))
		}

		shirei.Element(tw.TW(tw.MinWidth(6)))

		if stepButton(PrevYearId(picker), "<", year > minYear) {
			setPending(picker, calendar.AddYears(date, -1))
		}
		dragged := year
		if widgets.DragValue(&dragged, widgets.DragValueAttrs{Id: YearId(picker), Min: minYear, Max: maxYear, MinWidth: 48}) {
			setPending(picker, calendar.WithYear(date, dragged))
		}
		if stepButton(NextYearId(picker), ">", year < maxYear) {
			setPending(picker, calendar.AddYears(date, 1))
		}

		shirei.Element(tw.TW(tw.MinWidth(6)))

		if widgets.ButtonExt(tr.Today, widgets.ButtonAttrs{Id: TodayId(picker), Ctrl: true, Primary: true}) {
			now := attrs.Clock.Now().In(date.Location())
			setPending(picker, calendar.StartOfDay(now))
		}
	})
}

// wide enough for the longest month name so the header does not jump while
// stepping through months
func monthLabelWidth(tr *translation.Table) float32 {
	var width float32
	for _, name := range tr.Months {
		width = max(width, shirei.MeasureText(name, tw.TTW())[0])
	}
	// ctrl button padding on both sides
	return width + widgets.ButtonDefaultSize
}

func monthList(picker any, date time.Time, state *popupState, tr *translation.Table) {
	labelRect := shirei.GetResolvedRectOf(MonthId(picker))
	popupRect := shirei.GetResolvedRectOf(PopupId{picker})
	pos := shirei.Vec2Sub(labelRect.BottomLeft(), popupRect.Origin)
	pos[1] += 2

	listId := controlId{picker, "month-list"}
	listAttrs := tw.TW(panelFrame, tw.FloatV(pos), tw.BR(4), tw.Pad2(4, 0), tw.Gap(1), tw.Shd(8))
	shirei.LayoutId(listId, listAttrs, func() {
		for m := time.January; m <= time.December; m++ {
			item := widgets.ButtonAttrs{Id: MonthItemId(picker, m), Primary: m == date.Month()}
			if widgets.MenuItemExt(tr.Month(m), item) {
				setPending(picker, calendar.WithMonth(date, m))
				state.monthsOpen = false
			}
		}
	})

	if shirei.ClickedOutside(MonthId(picker), listId) {
		state.monthsOpen = false
	}
}

func grid(picker any, date time.Time, attrs Attrs) {
	first := attrs.firstWeekday()

	shirei.Layout(tw.TW(tw.Gap(cellGap)), func() {
		shirei.Layout(tw.TW(tw.Row, tw.Gap(cellGap)), func() {
			for _, wd := range calendar.WeekdayOrder(first) {
				shirei.Layout(tw.TW(tw.FixWidth(cellWidth), tw.Center, tw.Pad2(2, 0), tw.ClickThrough), func() {
					tw.Label(attrs.Translation.Weekday(wd), tw.Sz(11), tw.ClrV(weekdayColor))
				})
			}
		})

		cells := calendar.Grid(date, first)
		for row := 0; row < len(cells); row += calendar.DaysPerWeek {
			shirei.Layout(tw.TW(tw.Row, tw.Gap(cellGap)), func() {
				for _, cell := range cells[row : row+calendar.DaysPerWeek] {
					if dayButton(picker, date, cell, attrs) {
						setPending(picker, cell)
					}
				}
			})
		}
	})
}

func dayButton(picker any, date time.Time, cell time.Time, attrs Attrs) bool {
	ba := widgets.ButtonAttrs{
		Id:        dayIdOf(picker, cell),
		Ctrl:      true,
		Disabled:  calendar.SameDay(cell, date),
		Frameless: !calendar.SameMonth(cell, date),
		TextSize:  dayTextSize,
		MinWidth:  cellWidth,
	}
	if attrs.highlighted(cell) {
		ba.TextColor = attrs.WeekendColor
	}
	return widgets.ButtonExt(strconv.Itoa(cell.Day()), ba)
}
