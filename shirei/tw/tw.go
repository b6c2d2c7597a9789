// Package tw builds container and text attributes from small setters, in the
// spirit of utility css classes:
//
//	Layout(TW(Row, CrossMid, Gap(4), Pad2(2, 6), BR(3)), func() { ... })
package tw

import . "go.hasen.dev/datepicker/shirei"

type AttrsFn func(*Attrs)
type f32 = float32

func TW(fns ...AttrsFn) Attrs {
	return TWW(Attrs{}, fns...)
}

// TWW applies fns on top of existing attributes.
func TWW(a Attrs, fns ...AttrsFn) Attrs {
	for _, f := range fns {
		f(&a)
	}
	return a
}

// Compose bundles setters so a look can be reused across containers.
func Compose(fns ...AttrsFn) AttrsFn {
	return func(a *Attrs) {
		for _, f := range fns {
			f(a)
		}
	}
}

// direction and flags

func Row(a *Attrs)          { a.Row = true }
func Clip(a *Attrs)         { a.Clip = true }
func Expand(a *Attrs)       { a.ExpandAcross = true }
func ClickThrough(a *Attrs) { a.ClickThrough = true }

func CrossMid(a *Attrs) {
	a.CrossAlign = AlignMiddle
}

func Center(a *Attrs) {
	a.MainAlign = AlignMiddle
	a.CrossAlign = AlignMiddle
}

func CA(align Alignment) AttrsFn {
	return func(a *Attrs) { a.CrossAlign = align }
}

func MA(align Alignment) AttrsFn {
	return func(a *Attrs) { a.MainAlign = align }
}

func Grow(f f32) AttrsFn {
	return func(a *Attrs) { a.Grow = f }
}

// spacing

func Pad(v f32) AttrsFn {
	return func(a *Attrs) { a.Padding = N4(v) }
}

// Pad2 takes the vertical padding first, then the horizontal one.
func Pad2(v, h f32) AttrsFn {
	return func(a *Attrs) { a.Padding = PaddingVH(v, h) }
}

func PadV(v Vec4) AttrsFn {
	return func(a *Attrs) { a.Padding = v }
}

func Gap(v f32) AttrsFn {
	return func(a *Attrs) { a.Gap = v }
}

// sizing

func MinSize(w, h f32) AttrsFn {
	return MinSizeV(Vec2{w, h})
}

func MinSizeV(v Vec2) AttrsFn {
	return func(a *Attrs) { a.MinSize = v }
}

func MinWidth(w f32) AttrsFn {
	return func(a *Attrs) { a.MinSize[0] = w }
}

func MinHeight(h f32) AttrsFn {
	return func(a *Attrs) { a.MinSize[1] = h }
}

func MaxWidth(w f32) AttrsFn {
	return func(a *Attrs) { a.MaxSize[0] = w }
}

func MaxSizeV(v Vec2) AttrsFn {
	return func(a *Attrs) { a.MaxSize = v }
}

func FixSize(w, h f32) AttrsFn {
	return func(a *Attrs) {
		a.MinSize = Vec2{w, h}
		a.MaxSize = Vec2{w, h}
	}
}

func FixWidth(w f32) AttrsFn {
	return func(a *Attrs) {
		a.MinSize[0] = w
		a.MaxSize[0] = w
	}
}

// Float takes the container out of the flow, at x,y from the parent origin.
func Float(x, y f32) AttrsFn {
	return FloatV(Vec2{x, y})
}

func FloatV(v Vec2) AttrsFn {
	return func(a *Attrs) {
		a.Floats = true
		a.Float = v
	}
}

// looks; colors are HSLA

func BG(h, s, l, alpha f32) AttrsFn {
	return BGV(Vec4{h, s, l, alpha})
}

func BGV(v Vec4) AttrsFn {
	return func(a *Attrs) { a.Background = v }
}

// Grad is the color delta from the top to the bottom edge.
func Grad(dh, ds, dl, da f32) AttrsFn {
	return func(a *Attrs) { a.Gradient = Vec4{dh, ds, dl, da} }
}

func BW(w f32) AttrsFn {
	return func(a *Attrs) { a.BorderWidth = w }
}

func Bo(h, s, l, alpha f32) AttrsFn {
	return BoV(Vec4{h, s, l, alpha})
}

func BoV(v Vec4) AttrsFn {
	return func(a *Attrs) { a.BorderColor = v }
}

// BR sets the same radius on all corners.
func BR(v f32) AttrsFn {
	return func(a *Attrs) { a.Corners = N4(v) }
}

func Shd(blur f32) AttrsFn {
	return func(a *Attrs) {
		a.Shadow.Alpha = 0.5
		a.Shadow.Blur = blur
		a.Shadow.Offset[1] = 1
	}
}

func Trans(v f32) AttrsFn {
	return func(a *Attrs) { a.Transperancy = v }
}

// text

type TextAttrsFn func(*TextAttrs)

// TTW starts from DefaultTextAttrs.
func TTW(fns ...TextAttrsFn) TextAttrs {
	a := DefaultTextAttrs()
	for _, fn := range fns {
		fn(&a)
	}
	return a
}

func Label(text string, fns ...TextAttrsFn) {
	Text(text, TTW(fns...))
}

func Clr(h, s, l, alpha f32) TextAttrsFn {
	return ClrV(Vec4{h, s, l, alpha})
}

func ClrV(v Vec4) TextAttrsFn {
	return func(a *TextAttrs) { a.Color = v }
}

func Sz(size f32) TextAttrsFn {
	return func(a *TextAttrs) { a.Size = size }
}

// Fonts sets the families to try, in order; glyphs missing from all of
// them come from the default families.
func Fonts(families ...string) TextAttrsFn {
	return func(a *TextAttrs) { a.Families = append(a.Families, families...) }
}

func Bold(a *TextAttrs) {
	a.Weight = WeightBold
}
