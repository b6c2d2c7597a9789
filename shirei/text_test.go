package shirei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// no fonts are registered in tests, so every glyph takes the fallback width

func TestMeasureText_Fallback(t *testing.T) {
	attrs := TextAttrs{Size: 10}

	assert.Equal(t, Vec2{0, 10}, MeasureText("", attrs))
	assert.InDelta(t, 5.5, MeasureText("a", attrs)[0], 0.001)
	assert.InDelta(t, 5.5*2+3, MeasureText("a b", attrs)[0], 0.001)
	assert.InDelta(t, 5.5*4, MeasureText("Июнь", attrs)[0], 0.001)
}

func TestMeasureText_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultTextSize, MeasureText("x", TextAttrs{})[1])
}

func TestText_MatchesMeasure(t *testing.T) {
	attrs := DefaultTextAttrs()
	runFrame(t, func() {
		LayoutId("text-box", Attrs{}, func() {
			Text("March 2024", attrs)
		})
	})

	assert.Equal(t, MeasureText("March 2024", attrs), GetResolvedRectOf("text-box").Size)
}

func TestText_EmptyKeepsLineHeight(t *testing.T) {
	runFrame(t, func() {
		LayoutId("empty-text", Attrs{}, func() {
			Text("", DefaultTextAttrs())
		})
	})
	assert.Equal(t, Vec2{0, DefaultTextSize}, GetResolvedRectOf("empty-text").Size)
}

func TestText_MaxWidthClips(t *testing.T) {
	runFrame(t, func() {
		LayoutId("clipped-text", Attrs{}, func() {
			Text("a long label", TextAttrs{Size: 10, MaxWidth: 20})
		})
	})
	assert.Equal(t, float32(20), GetResolvedRectOf("clipped-text").Size[0])
}

func TestText_IsClickThrough(t *testing.T) {
	frame := func() {
		LayoutId("label-owner", Attrs{}, func() {
			Text("WWWW", TextAttrs{Size: 20})
		})
	}
	runFrame(t, frame)
	InputState.MousePoint = Vec2{5, 5}
	runFrame(t, frame)

	assert.True(t, IdIsHovered("label-owner"))
	assert.True(t, len(hoverList) > 0 && hoverList[0] == "label-owner", "glyphs are never hovered directly")
}
