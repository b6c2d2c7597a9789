package shirei

import (
	"slices"
	"strings"

	"github.com/dboslee/lru"
)

// Text is laid out as a row of glyph elements, one per rune. There is no
// shaping and no wrapping; each glyph advances by its own width.

var DefaultTextSize f32 = 14

type TextAttrs struct {
	Size     f32
	Color    Vec4
	Families []string
	Weight   Weight
	Style    Style

	// clips the text when positive
	MaxWidth f32
}

func DefaultTextAttrs() TextAttrs {
	return TextAttrs{
		Size:  DefaultTextSize,
		Color: Vec4{0, 0, 10, 1},
	}
}

func (ta TextAttrs) aspect() FontAspect {
	aspect := DefaultFontAspect()
	if ta.Weight != 0 {
		aspect.Weight = ta.Weight
	}
	aspect.Style = ta.Style
	if aspect.Style == 0 {
		aspect.Style = StyleNormal
	}
	return aspect
}

// requested families first, then the defaults for runes they lack
func (ta TextAttrs) families() []string {
	if len(ta.Families) == 0 {
		return DefaultFamilies
	}
	return append(slices.Clip(ta.Families), DefaultFamilies...)
}

type glyphKey struct {
	families string
	aspect   FontAspect
	ch       rune
}

type resolvedGlyph struct {
	fontId  FontId
	glyphId GlyphId
	advance f32 // in ems
}

var glyphCache = lru.New[glyphKey, resolvedGlyph]()

// widths used when no installed font has the rune
const (
	fallbackAdvance      = 0.55
	fallbackSpaceAdvance = 0.3
)

func resolveGlyph(families []string, aspect FontAspect, ch rune) resolvedGlyph {
	key := glyphKey{strings.Join(families, ","), aspect, ch}
	if rg, ok := glyphCache.Get(key); ok {
		return rg
	}

	var rg resolvedGlyph
	rg.fontId, rg.glyphId = FallbackFontFor(families, ch, aspect)
	if rg.fontId != 0 {
		rg.advance = XAdvance(rg.fontId, rg.glyphId) * ScaleFactor(rg.fontId)
	}
	if rg.advance == 0 {
		rg.advance = fallbackAdvance
		if ch == ' ' || ch == '\t' {
			rg.advance = fallbackSpaceAdvance
		}
	}

	glyphCache.Set(key, rg)
	return rg
}

func Text(s string, attrs TextAttrs) {
	if attrs.Size == 0 {
		attrs.Size = DefaultTextSize
	}
	families := attrs.families()
	aspect := attrs.aspect()

	container := Attrs{Row: true, ClickThrough: true}
	if attrs.MaxWidth > 0 {
		container.MaxSize[0] = attrs.MaxWidth
		container.Clip = true
	}

	Layout(container, func() {
		// keeps empty labels one line tall
		ModAttrs(func(a *Attrs) { a.MinSize[1] = attrs.Size })

		for _, ch := range s {
			rg := resolveGlyph(families, aspect, ch)
			size := Vec2{rg.advance * attrs.Size, attrs.Size}
			glyph := Attrs{MinSize: size, MaxSize: size}
			if rg.glyphId != 0 {
				glyph.Background = attrs.Color
			}
			Layout(glyph, func() {
				current.fontId = rg.fontId
				current.glyphId = rg.glyphId
			})
		}
	})
}

// MeasureText is the size Text would take for s, ignoring MaxWidth.
func MeasureText(s string, attrs TextAttrs) Vec2 {
	if attrs.Size == 0 {
		attrs.Size = DefaultTextSize
	}
	families := attrs.families()
	aspect := attrs.aspect()

	var width f32
	for _, ch := range s {
		width += resolveGlyph(families, aspect, ch).advance * attrs.Size
	}
	return Vec2{width, attrs.Size}
}
