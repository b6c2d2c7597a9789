package giobackend

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"

	"go.hasen.dev/datepicker/shirei"
)

func TestMapKeyCode(t *testing.T) {
	cases := []struct {
		name key.Name
		want shirei.KeyCode
	}{
		{key.NameEscape, shirei.KeyEscape},
		{key.NameReturn, shirei.KeyEnter},
		{key.NameEnter, shirei.KeyEnter},
		{key.NameF12, shirei.KeyF12},
		{"A", shirei.KeyA},
		{"7", shirei.Key7},
		{"é", shirei.KeyCodeNone},
		{"", shirei.KeyCodeNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, mapKeyCode(c.name), "key %q", c.name)
	}
}
