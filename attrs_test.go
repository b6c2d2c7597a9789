package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.hasen.dev/datepicker/shirei"
	"go.hasen.dev/datepicker/translation"
)

func TestDP_Defaults(t *testing.T) {
	a := DP()

	assert.False(t, a.SundayFirst)
	assert.False(t, a.Movable)
	assert.Equal(t, DefaultFormat, a.Format)
	assert.False(t, a.NoWeekendHighlight)
	assert.Equal(t, DefaultWeekendColor, a.WeekendColor)
	assert.Same(t, &translation.English, a.Translation)
	assert.IsType(t, SystemClock{}, a.Clock)
	assert.Equal(t, time.Monday, a.firstWeekday())

	saturday := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, a.highlighted(saturday))
	assert.False(t, a.highlighted(saturday.AddDate(0, 0, 2)))
}

func TestDP_Setters(t *testing.T) {
	evenDays := func(t time.Time) bool { return t.Day()%2 == 0 }
	a := DP(
		SundayFirst(true),
		Movable(true),
		DateFormat("%d/%m/%Y"),
		HighlightWeekendColor(120, 100, 40, 1),
		WeekendDays(evenDays),
		WithTranslation(&translation.German),
	)

	assert.True(t, a.SundayFirst)
	assert.Equal(t, time.Sunday, a.firstWeekday())
	assert.True(t, a.Movable)
	assert.Equal(t, "%d/%m/%Y", a.Format)
	assert.Equal(t, shirei.Vec4{120, 100, 40, 1}, a.WeekendColor)
	assert.Same(t, &translation.German, a.Translation)

	assert.True(t, a.highlighted(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.highlighted(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)))
}

func TestHighlightWeekend_Off(t *testing.T) {
	a := DP(HighlightWeekend(false))
	assert.True(t, a.NoWeekendHighlight)
	assert.False(t, a.highlighted(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)))

	a = DP(HighlightWeekend(false), HighlightWeekend(true))
	assert.False(t, a.NoWeekendHighlight)
}

func TestDefaultWeekendColor(t *testing.T) {
	// rgb(196, 0, 0) is a pure red at about 38% lightness
	assert.InDelta(t, 0, DefaultWeekendColor[shirei.HUE], 0.01)
	assert.InDelta(t, 100, DefaultWeekendColor[shirei.SATURATION], 0.01)
	assert.InDelta(t, 38.43, DefaultWeekendColor[shirei.LIGHT], 0.01)
	assert.InDelta(t, 1, DefaultWeekendColor[shirei.ALPHA], 0.001)

	c := shirei.HSLAColor(DefaultWeekendColor)
	assert.Equal(t, uint8(196), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
}
