package main

import (
	"bytes"
	"path/filepath"
	"time"

	"go.hasen.dev/datepicker"
	"go.hasen.dev/datepicker/calendar"
	"go.hasen.dev/datepicker/internal/config"
	"go.hasen.dev/datepicker/shirei"
	. "go.hasen.dev/datepicker/shirei/tw"
	"go.hasen.dev/datepicker/shirei/widgets"
	"go.hasen.dev/datepicker/translation"
)

const strftimeReference = "https://strftime.org"

type demo struct {
	cfg  config.PickerConfig
	date time.Time

	// global toggles from the control row
	sundayFirst bool
	movable     bool
	highlight   bool
	language    string

	// table loaded from cfg.TranslationFile and the bytes it came from
	fileTable *translation.Table
	fileData  []byte
}

func newDemo(cfg config.PickerConfig) (*demo, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &demo{
		cfg:         cfg,
		date:        calendar.StartOfDay(time.Now().In(loc)),
		sundayFirst: cfg.SundayFirst,
		movable:     cfg.Movable,
		highlight:   cfg.HighlightWeekend,
		language:    translation.LookupString(cfg.Language).Language,
	}, nil
}

// translation picks the table for the localized picker. A translation file
// wins over the language toggle and is parsed again whenever it changes on
// disk; a broken file keeps the last good table.
func (d *demo) translation() *translation.Table {
	if d.cfg.TranslationFile == "" {
		return translation.LookupString(d.language)
	}
	data := shirei.ReadFileContent(d.cfg.TranslationFile)
	if data != nil && !bytes.Equal(data, d.fileData) {
		d.fileData = data
		table, err := translation.Parse(data)
		if err != nil {
			shirei.Logger().Warn(err)
		} else {
			d.fileTable = table
		}
	}
	if d.fileTable == nil {
		return translation.LookupString(d.language)
	}
	return d.fileTable
}

func evenDays(t time.Time) bool {
	return t.Day()%2 == 0
}

type example struct {
	label string
	fns   []datepicker.AttrsFn
}

func (d *demo) examples() []example {
	return []example{
		{"Default", nil},
		{"Sunday first", []datepicker.AttrsFn{datepicker.SundayFirst(true)}},
		{"Movable popup", []datepicker.AttrsFn{datepicker.Movable(true)}},
		{"Different format", []datepicker.AttrsFn{datepicker.DateFormat("%d/%m/%Y")}},
		{"Disable weekend highlight", []datepicker.AttrsFn{datepicker.HighlightWeekend(false)}},
		{"Different weekend color", []datepicker.AttrsFn{datepicker.HighlightWeekendRGB(5, 105, 25)}},
		{"Different weekend days", []datepicker.AttrsFn{datepicker.WeekendDays(evenDays)}},
		{"Localized", []datepicker.AttrsFn{datepicker.WithTranslation(d.translation())}},
	}
}

func (d *demo) frame() {
	shirei.Layout(TW(Pad(16), Gap(14), MaxSizeV(shirei.WindowSize)), func() {
		d.controls()

		shirei.Layout(TW(Gap(8)), func() {
			for i, ex := range d.examples() {
				shirei.Layout(TW(Row, CrossMid, Gap(10)), func() {
					shirei.Layout(TW(FixWidth(200)), func() {
						Label(ex.label)
					})
					fns := append([]datepicker.AttrsFn{
						datepicker.SundayFirst(d.sundayFirst),
						datepicker.Movable(d.movable),
						datepicker.DateFormat(d.cfg.DateFormat),
						datepicker.HighlightWeekend(d.highlight),
					}, ex.fns...)
					if datepicker.DatePicker(i, &d.date, fns...) {
						shirei.Logger().Debugf("%s picked %s", ex.label, d.date.Format(time.DateOnly))
					}
				})
			}
		})

		shirei.Layout(TW(Row, Gap(6)), func() {
			Label("Selected:", Clr(0, 0, 40, 1))
			Label(d.date.Format(time.RFC3339), Bold)
		})
	})

	widgets.PopupsHost()
}

const (
	languageMenuId = "language-menu"
	movableId      = "movable-toggle"
)

func languageItemId(language string) string {
	return "language-" + language
}

func (d *demo) controls() {
	shirei.Layout(TW(Row, CrossMid, Gap(12), Pad(8), BR(4), BGV(widgets.MenuBG)), func() {
		Label("Week starts on")
		widgets.OptionButton(&d.sundayFirst, "Monday", false)
		widgets.OptionButton(&d.sundayFirst, "Sunday", true)

		shirei.Element(TW(MinWidth(8)))
		shirei.LayoutId(movableId, TW(), func() {
			widgets.ToggleSwitch(&d.movable)
		})
		Label("Movable")

		shirei.Element(TW(MinWidth(8)))
		widgets.CheckBox(&d.highlight, "Weekend highlight")

		shirei.Element(TW(MinWidth(8)))
		widgets.MenuButtonExt("Language: "+d.language, widgets.ButtonAttrs{Id: languageMenuId}, func() {
			for _, t := range translation.All() {
				attrs := widgets.ButtonAttrs{Id: languageItemId(t.Language), Primary: t.Language == d.language}
				if widgets.MenuItemExt(t.Language, attrs) {
					d.language = t.Language
				}
			}
			if d.cfg.TranslationFile != "" {
				widgets.MenuSeparator()
				widgets.MenuItemExt(filepath.Base(d.cfg.TranslationFile), widgets.ButtonAttrs{Disabled: true})
			}
		})

		shirei.Element(TW(MinWidth(8)))
		widgets.Link("Format reference", strftimeReference)
	})
}
