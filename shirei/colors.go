package shirei

import (
	"image/color"
)

func HSLAColor(c Vec4) color.NRGBA {
	h := c[HUE] / 360
	s := c[SATURATION] / 100
	l := c[LIGHT] / 100

	r, g, b := FloatHSLToRGB(h, s, l)
	return color.NRGBA{
		R: uint8(r*0xff + 0.5),
		G: uint8(g*0xff + 0.5),
		B: uint8(b*0xff + 0.5),
		A: uint8(c[ALPHA]*0xff + 0.5),
	}
}

// RGBA converts 8-bit channels into the HSLA convention used by Attrs.
func RGBA(r, g, b, a uint8) Vec4 {
	h, s, l := FloatRGBToHSL(f32(r)/0xff, f32(g)/0xff, f32(b)/0xff)
	return Vec4{h * 360, s * 100, l * 100, f32(a) / 0xff}
}

// based on https://github.com/alessani/ColorConverter/blob/master/ColorSpaceUtilities.h
func FloatHSLToRGB(h f32, s f32, l f32) (f32, f32, f32) {
	if s == 0.0 {
		return l, l, l
	}

	var temp2 f32
	if l < 0.5 {
		temp2 = l * (1.0 + s)
	} else {
		temp2 = l + s - l*s
	}
	temp1 := 2.0*l - temp2

	temp := [3]f32{
		h + 1.0/3.0,
		h,
		h - 1.0/3.0,
	}

	for i := range temp {
		if temp[i] < 0.0 {
			temp[i] += 1.0
		}
		if temp[i] > 1.0 {
			temp[i] -= 1.0
		}

		switch {
		case 6.0*temp[i] < 1.0:
			temp[i] = temp1 + (temp2-temp1)*6.0*temp[i]
		case 2.0*temp[i] < 1.0:
			temp[i] = temp2
		case 3.0*temp[i] < 2.0:
			temp[i] = temp1 + (temp2-temp1)*((2.0/3.0)-temp[i])*6.0
		default:
			temp[i] = temp1
		}
	}

	return temp[0], temp[1], temp[2]
}

// inputs and outputs in 0..1
func FloatRGBToHSL(r f32, g f32, b f32) (f32, f32, f32) {
	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2
	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	var s f32
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h f32
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}
