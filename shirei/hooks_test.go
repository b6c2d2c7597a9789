package shirei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUse_PersistsWhileUsed(t *testing.T) {
	var counter *int
	frame := func() {
		LayoutId("hooked", Attrs{}, func() {
			counter = Use[int]("count")
			*counter++
		})
	}

	runFrame(t, frame)
	runFrame(t, frame)
	runFrame(t, frame)
	assert.Equal(t, 3, *counter)
}

func TestUse_DroppedWhenSkipped(t *testing.T) {
	var counter *int
	frame := func() {
		LayoutId("sometimes", Attrs{}, func() {
			counter = Use[int]("count")
			*counter++
		})
	}

	runFrame(t, frame)
	runFrame(t, frame)
	runFrame(t, Nil)
	runFrame(t, frame)
	assert.Equal(t, 1, *counter)
}

func TestUseWithInit(t *testing.T) {
	var value *string
	frame := func() {
		LayoutId("init", Attrs{}, func() {
			value = UseWithInit("name", func() *string {
				s := "initial"
				return &s
			})
		})
	}

	runFrame(t, frame)
	assert.Equal(t, "initial", *value)
	*value = "changed"
	runFrame(t, frame)
	assert.Equal(t, "changed", *value)
}

func TestUseData_SurvivesUntilDeleted(t *testing.T) {
	type key struct{ name string }

	_, found := PeekData[int](key{"data"}, "n")
	assert.False(t, found)

	*UseData[int](key{"data"}, "n") = 7

	// not touched by frames
	runFrame(t, Nil)
	runFrame(t, Nil)

	v, found := PeekData[int](key{"data"}, "n")
	assert.True(t, found)
	assert.Equal(t, 7, *v)

	DeleteHookedData(key{"data"}, "n")
	_, found = PeekData[int](key{"data"}, "n")
	assert.False(t, found)
}

func TestScopeIdFrom_StableByValue(t *testing.T) {
	type compound struct {
		Picker any
		Day    int
	}

	assert.Equal(t, scopeIdFrom(compound{"a", 1}), scopeIdFrom(compound{"a", 1}))
	assert.NotEqual(t, scopeIdFrom(compound{"a", 1}), scopeIdFrom(compound{"a", 2}))
	assert.NotEqual(t, scopeIdFrom("1"), scopeIdFrom(1))
	assert.Equal(t, scopeIdFrom("x"), scopeIdFrom("x"))
}

func TestAutoIds_StableAcrossFrames(t *testing.T) {
	var first, second []any
	frame := func(out *[]any, withExplicit bool) func() {
		return func() {
			Layout(Attrs{}, func() {
				Nil()
				*out = append(*out, GetLastId())
				if withExplicit {
					ElementId("explicit", Attrs{})
				}
				Nil()
				*out = append(*out, GetLastId())
			})
		}
	}

	runFrame(t, frame(&first, false))
	runFrame(t, frame(&second, true))
	assert.Equal(t, first, second)
}
