package widgets

// checkboxes and radios

import (
	. "go.hasen.dev/datepicker/shirei"
	. "go.hasen.dev/datepicker/shirei/tw"
)

var checkColor = Vec4{240, 50, 20, 1}

func checkView(checked bool, label string, round bool) bool {
	var pressed bool
	Layout(TW(Row, Gap(6), CrossMid), func() {
		pressed = PressAction()
		var corners f32 = 2
		if round {
			corners = 7
		}
		box := TW(FixSize(14, 14), Center, BR(corners), BW(1), BoV(checkColor), BG(0, 0, 100, 1))
		if IsHovered() {
			box.Background = Vec4{220, 40, 94, 1}
		}
		Layout(box, func() {
			if checked {
				Element(TW(FixSize(8, 8), BR(corners*0.6), BGV(checkColor)))
			}
		})
		Label(label, Sz(12), ClrV(checkColor))
	})
	return pressed
}

// CheckBoxExt sets *target to value when pressed and reports whether that
// changed it. round draws a radio dot instead of a square box.
func CheckBoxExt[T comparable](target *T, label string, value T, round bool) bool {
	if checkView(*target == value, label, round) && *target != value {
		*target = value
		return true
	}
	return false
}

func CheckBox(target *bool, label string) bool {
	if checkView(*target, label, false) {
		*target = !*target
		return true
	}
	return false
}

// OptionButton is also known as radio button
func OptionButton[T comparable](target *T, label string, value T) bool {
	return CheckBoxExt(target, label, value, true)
}

// iOS style toggle switch
func ToggleSwitch(on *bool) bool {
	var changed bool
	Layout(TW(Row, BG(0, 0, 80, 1), Pad(4), CA(AlignMiddle), BR(12), MinSize(40, 20), BW(1), Bo(0, 0, 20, 0.7)), func() {
		if PressAction() {
			*on = !*on
			changed = true
		}

		if *on {
			ModAttrs(Grad(0, 0, 10, 0))
			// spacer to push the knob to the right
			Element(TW(Grow(1)))
		} else {
			Nil()
		}

		Layout(TW(BR(8), MinSize(16, 16), BG(0, 0, 0, 0.5)), func() {
			if *on {
				ModAttrs(BG(240, 80, 70, 1), Grad(0, 0, -10, 0), Shd(3))
			}
		})
	})
	return changed
}
