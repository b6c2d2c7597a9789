package widgets

import (
	"github.com/cli/browser"

	. "go.hasen.dev/datepicker/shirei"
	. "go.hasen.dev/datepicker/shirei/tw"
)

var ButtonDefaultSize = DefaultTextSize

const ButtonSmallSize = 10

type f32 = float32

type ButtonAttrs struct {
	// explicit id for the outer container; nil derives one from the position
	Id any

	Ctrl      bool
	Disabled  bool
	Primary   bool
	Frameless bool // no border or fill until hovered
	TextSize  f32

	// zero means the default for the button kind
	TextColor Vec4

	MinWidth f32
}

type buttonLook struct {
	hue, sat     f32
	light        f32
	highlight    f32
	presslight   f32
	lightDelta   f32
	textColor    Vec4
	border       Vec4
	flatShadow   bool
	transparent  bool
	pushDownDist f32
}

func lookFor(attrs ButtonAttrs) buttonLook {
	l := buttonLook{
		hue: 220, sat: 20,
		light: 95, highlight: 98, presslight: 92,
		lightDelta:   -8,
		textColor:    Vec4{240, 10, 20, 1},
		border:       Vec4{0, 0, 0, 0.4},
		pushDownDist: 1,
	}
	if attrs.Ctrl {
		l.lightDelta = -4
	}
	if attrs.Primary {
		l.hue, l.sat = 215, 70
		l.light, l.highlight, l.presslight = 50, 55, 45
		l.textColor = Vec4{0, 0, 100, 1}
		l.border = Vec4{215, 70, 25, 0.8}
	}
	if attrs.Frameless {
		l.highlight, l.presslight = 90, 85
		l.border = Vec4{}
		l.flatShadow = true
		l.transparent = true
		l.lightDelta = 0
	}
	if attrs.Disabled {
		l.light, l.highlight, l.presslight = 75, 75, 75
		l.lightDelta = 2
		l.sat = 5
		l.textColor = Vec4{240, 10, 40, 0.5}
		if attrs.Frameless {
			l.light = 88
			l.transparent = false
		}
	}
	if attrs.TextColor != (Vec4{}) {
		l.textColor = attrs.TextColor
		if attrs.Disabled {
			l.textColor[ALPHA] *= 0.6
		}
	}
	return l
}

// ButtonExt draws a push button and reports whether it was pressed this
// frame. A disabled button never reports a press.
func ButtonExt(label string, attrs ButtonAttrs) bool {
	if attrs.TextSize == 0 {
		attrs.TextSize = ButtonDefaultSize
	}
	var action = false

	var padh = attrs.TextSize * 0.8
	var padv = padh / 2
	var br = attrs.TextSize * 0.3

	if attrs.Ctrl {
		padv *= 0.6
		padh *= 0.6
		br *= 0.6
	}

	look := lookFor(attrs)

	LayoutId(attrs.Id, TW(), func() {
		shadowColor := Vec4{0, 0, 0, 0.6}
		if look.flatShadow {
			shadowColor = Vec4{}
		}
		var shadowPadding Vec4

		background := Vec4{look.hue, look.sat, look.light, 1}
		hovered := false

		if !attrs.Disabled {
			action = PressAction()
			hovered = IsHovered()
			if hovered {
				background[LIGHT] = look.highlight
			}
		}

		if IsActive() {
			background[LIGHT] = look.presslight
			ModAttrs(func(a *Attrs) {
				a.Padding[PAD_TOP] = look.pushDownDist
			})
		} else if !look.flatShadow {
			shadowPadding[PAD_BOTTOM] = look.pushDownDist
		}

		if look.transparent && !hovered && !IsActive() {
			background = Vec4{}
		}

		Layout(TW(BGV(shadowColor), PadV(shadowPadding), BR(br)), func() {
			var grad Vec4
			grad[LIGHT] = look.lightDelta
			inner := TW(Row, CrossMid, MA(AlignMiddle), BR(br), Pad2(padv, padh), Gap(padh/2), BGV(background), MinWidth(attrs.MinWidth))
			if background[ALPHA] > 0 {
				inner.Gradient = grad
			}
			if look.border[ALPHA] > 0 {
				inner.Border = Border{BorderColor: look.border, BorderWidth: 1}
			}
			if shoff := shadowPadding[PAD_BOTTOM]; shoff > 0 {
				inner.Shadow = Shadow{Offset: Vec2{0, shoff}, Alpha: 0.4, Blur: shoff}
			}
			Layout(inner, func() {
				if label != "" {
					Label(label, Sz(attrs.TextSize), ClrV(look.textColor))
				}
			})
		})
	})
	return action
}

// Link opens url in the system browser when clicked.
func Link(label string, url string, fns ...TextAttrsFn) {
	Layout(TW(Row), func() {
		if PressAction() {
			if err := browser.OpenURL(url); err != nil {
				Logger().Warnf("open %s: %s", url, err)
			}
		}
		color := Vec4{215, 80, 40, 1}
		if IsHovered() {
			color[LIGHT] = 30
		}
		Label(label, append([]TextAttrsFn{ClrV(color)}, fns...)...)
	})
}
