package widgets

import (
	"strconv"

	. "go.hasen.dev/datepicker/shirei"
	. "go.hasen.dev/datepicker/shirei/tw"
)

type DragValueAttrs struct {
	Id any

	// value change per point of horizontal drag; zero means 0.1
	Speed f32

	// the range only applies when Max > Min
	Min, Max int

	MinWidth f32
	TextSize f32
}

type dragState struct {
	// fractional drag not yet applied to the value
	acc f32
}

// DragValue shows an integer that changes when dragged sideways or scrolled
// over. It reports whether *value changed this frame.
func DragValue(value *int, attrs DragValueAttrs) bool {
	if attrs.Speed == 0 {
		attrs.Speed = 0.1
	}
	if attrs.TextSize == 0 {
		attrs.TextSize = ButtonDefaultSize
	}
	before := *value

	LayoutId(attrs.Id, TW(Row, Center, BR(3), Pad2(2, 6), BW(1), Bo(0, 0, 0, 0.3), BG(220, 20, 92, 1), MinWidth(attrs.MinWidth)), func() {
		state := Use[dragState]("drag")

		PressAction()
		if IsHovered() || IsActive() {
			ModAttrs(BG(220, 40, 86, 1))
		}

		var delta int
		if IsActive() {
			state.acc += FrameInput.Motion[0] * attrs.Speed
			whole := int(state.acc)
			state.acc -= f32(whole)
			delta += whole
		} else {
			state.acc = 0
		}
		if IsHovered() && FrameInput.Scroll[1] != 0 {
			if FrameInput.Scroll[1] < 0 {
				delta++
			} else {
				delta--
			}
		}

		*value += delta
		if attrs.Max > attrs.Min {
			*value = min(max(*value, attrs.Min), attrs.Max)
		}

		// monospace so the width holds still while the digits change
		Label(strconv.Itoa(*value), Sz(attrs.TextSize), Clr(240, 10, 20, 1), Fonts(Monospace...))
	})

	return *value != before
}
