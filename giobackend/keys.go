package giobackend

import (
	"unicode/utf8"

	"gioui.org/io/key"

	"go.hasen.dev/datepicker/shirei"
)

var namedKeys = map[key.Name]shirei.KeyCode{
	key.NameLeftArrow:      shirei.KeyLeft,
	key.NameRightArrow:     shirei.KeyRight,
	key.NameUpArrow:        shirei.KeyUp,
	key.NameDownArrow:      shirei.KeyDown,
	key.NameReturn:         shirei.KeyEnter,
	key.NameEnter:          shirei.KeyEnter,
	key.NameEscape:         shirei.KeyEscape,
	key.NameHome:           shirei.KeyHome,
	key.NameEnd:            shirei.KeyEnd,
	key.NameDeleteBackward: shirei.KeyDeleteBackward,
	key.NameDeleteForward:  shirei.KeyDeleteForward,
	key.NamePageUp:         shirei.KeyPageUp,
	key.NamePageDown:       shirei.KeyPageDown,
	key.NameTab:            shirei.KeyTab,
	key.NameSpace:          shirei.KeySpace,
	key.NameCtrl:           shirei.KeyCtrl,
	key.NameShift:          shirei.KeyShift,
	key.NameAlt:            shirei.KeyAlt,
	key.NameSuper:          shirei.KeySuper,
	key.NameCommand:        shirei.KeyCommand,
	key.NameF1:             shirei.KeyF1,
	key.NameF2:             shirei.KeyF2,
	key.NameF3:             shirei.KeyF3,
	key.NameF4:             shirei.KeyF4,
	key.NameF5:             shirei.KeyF5,
	key.NameF6:             shirei.KeyF6,
	key.NameF7:             shirei.KeyF7,
	key.NameF8:             shirei.KeyF8,
	key.NameF9:             shirei.KeyF9,
	key.NameF10:            shirei.KeyF10,
	key.NameF11:            shirei.KeyF11,
	key.NameF12:            shirei.KeyF12,
	key.NameBack:           shirei.KeyBack,
}

// mapKeyCode maps named keys through the table and single printable
// characters (gio reports letters in upper case) to their ascii code.
func mapKeyCode(name key.Name) shirei.KeyCode {
	if code, ok := namedKeys[name]; ok {
		return code
	}
	if utf8.RuneCountInString(string(name)) == 1 {
		r, _ := utf8.DecodeRuneInString(string(name))
		if r < 128 {
			return shirei.KeyCode(r)
		}
	}
	return shirei.KeyCodeNone
}
