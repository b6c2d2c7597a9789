package shirei

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"
	"go.hasen.dev/generic"

	"go.hasen.dev/datepicker/internal/errors"
)

// Fonts are registered by scanning directories for font files. Only the
// description of each face is read up front; the file is parsed the first
// time one of its glyphs is needed.

var Monospace = []string{"Noto Sans Mono", "Menlo", "Terminus", "Consolas", "Lucida Console"}

var DefaultFamilies = []string{
	"Noto Sans", "Noto Sans JP", "Noto Sans Mono",
	"Arial", "Helvetica", "DejaVu Sans", "Liberation Sans",
	"Hiragino Sans", "MS Gothic", "Osaka",
	"Menlo", "Consolas",
}

type Font = font.Face

type Style = font.Style
type Weight = font.Weight

const StyleNormal = font.StyleNormal
const StyleItalic = font.StyleItalic

const WeightLight = font.WeightLight
const WeightNormal = font.WeightNormal
const WeightMedium = font.WeightMedium
const WeightSemibold = font.WeightSemibold
const WeightBold = font.WeightBold

type FontAspect = font.Aspect

func DefaultFontAspect() FontAspect {
	return FontAspect{Style: StyleNormal, Weight: WeightNormal, Stretch: font.StretchNormal}
}

type FontId int32
type GlyphId = opentype.GID

type FaceLookupKey struct {
	Family string
	Aspect FontAspect
}

// FontFace holds what is known about a face before and after parsing.
type FontFace struct {
	FontId FontId

	FaceLookupKey

	Filepath string

	parseError error

	// only set once the file is parsed
	InvUPM    float32 // inverted units per em
	Ascender  float32
	Descender float32
	LineGap   float32

	parsed *Font
}

var facesLock sync.Mutex

var faces = make([]FontFace, 1) // element 0 stands for "no font"
var faceMap = make(map[FaceLookupKey]FontId)

// InitFontSubsystem scans the system font directories. The backend calls it
// once before the event loop starts.
func InitFontSubsystem() {
	start := time.Now()
	dirs, err := fontscan.DefaultFontDirectories(fontscanLogger{})
	if err != nil {
		log.Warn(errors.WrapFail(err, "list system font directories"))
	}
	UseFontsDirectories(dirs...)
	log.Debugf("system fonts scan: %d faces in %s", len(faces)-1, time.Since(start))
}

type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...any) {
	log.Debugf(format, args...)
}

func GetFace(f FontId) FontFace {
	facesLock.Lock()
	defer facesLock.Unlock()
	idx := int(f)
	if idx < 0 || idx >= len(faces) {
		idx = 0
	}
	return faces[idx]
}

func LookupFace(key FaceLookupKey) FontId {
	key.Family = strings.ToLower(key.Family)
	facesLock.Lock()
	defer facesLock.Unlock()
	return faceMap[key]
}

func GetParsedFont(f FontId) *Font {
	if f == 0 {
		return nil
	}
	face := GetFace(f)
	if face.parsed != nil || face.parseError != nil {
		return face.parsed
	}
	if err := parseFontFile(face.Filepath); err != nil {
		log.Warn(errors.WrapFailf(err, "parse font %s", face.Filepath))
		facesLock.Lock()
		faces[f].parseError = err
		facesLock.Unlock()
		return nil
	}
	return GetFace(f).parsed
}

// parseFontFile fills in every registered face that lives in fpath.
func parseFontFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}
	parsed, err := font.ParseTTC(bytes.NewReader(content))
	if err != nil {
		return err
	}
	for _, ttf := range parsed {
		fid := LookupFace(FaceLookupKey(ttf.Describe()))
		if fid == 0 {
			continue
		}
		facesLock.Lock()
		fillFaceMetrics(&faces[fid], ttf)
		facesLock.Unlock()
	}
	return nil
}

func fillFaceMetrics(face *FontFace, ttf *Font) {
	ext, _ := ttf.FontHExtents()
	face.InvUPM = 1 / float32(ttf.Upem())
	face.Ascender = ext.Ascender
	face.Descender = ext.Descender
	face.LineGap = ext.LineGap
	face.parsed = ttf
}

func registerFace(key FaceLookupKey, fpath string) FontId {
	facesLock.Lock()
	defer facesLock.Unlock()

	id := FontId(len(faces))
	face := generic.AllocAppend(&faces)
	face.FontId = id
	face.FaceLookupKey = key
	face.Filepath = fpath

	key.Family = strings.ToLower(key.Family)
	if _, taken := faceMap[key]; !taken {
		faceMap[key] = id
	}
	return id
}

// UseFontBytes registers and parses the faces in an in-memory font file.
func UseFontBytes(data []byte) error {
	parsed, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return errors.WrapFail(err, "parse font data")
	}
	for _, ttf := range parsed {
		fid := registerFace(FaceLookupKey(ttf.Describe()), "")
		facesLock.Lock()
		fillFaceMetrics(&faces[fid], ttf)
		facesLock.Unlock()
	}
	return nil
}

func UseFontFile(fpath string) {
	f, err := os.Open(fpath)
	if err != nil {
		log.Debugf("skip font %s: %s", fpath, err)
		return
	}
	defer f.Close()

	loaders, err := opentype.NewLoaders(f)
	if err != nil {
		log.Debugf("skip font %s: %s", fpath, err)
		return
	}
	for _, ld := range loaders {
		desc, _ := font.Describe(ld, nil)
		registerFace(FaceLookupKey(desc), fpath)
	}
}

var fontExtensions = []string{".ttf", ".otf", ".ttc", ".otc"}

func UseFontsDirectories(dirpaths ...string) {
	for _, dirpath := range dirpaths {
		filepath.WalkDir(dirpath, func(fpath string, entry fs.DirEntry, err error) error {
			if err != nil {
				// unreadable entries are skipped, not fatal
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if !slices.Contains(fontExtensions, strings.ToLower(filepath.Ext(fpath))) {
				return nil
			}
			UseFontFile(fpath)
			return nil
		})
	}
}

func LookupGlyph(fontId FontId, ch rune) GlyphId {
	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return 0
	}
	gid, _ := ttf.NominalGlyph(ch)
	return gid
}

func XAdvance(fontId FontId, glyphId GlyphId) float32 {
	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return 0
	}
	return ttf.HorizontalAdvance(glyphId)
}

func GlyphOutline(fontId FontId, glyphId GlyphId) font.GlyphOutline {
	var empty font.GlyphOutline
	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return empty
	}
	switch v := ttf.GlyphData(glyphId).(type) {
	case font.GlyphOutline:
		return v
	case font.GlyphSVG:
		return v.Outline
	}
	return empty
}

func ScaleFactor(fontId FontId) float32 {
	return GetFace(fontId).InvUPM
}

// FallbackFontFor finds a face that has a glyph for ch, trying the families
// in order, first with the requested aspect and then with the default one.
func FallbackFontFor(families []string, ch rune, aspect FontAspect) (FontId, GlyphId) {
	for _, a := range []FontAspect{aspect, DefaultFontAspect()} {
		for _, family := range families {
			fid := LookupFace(FaceLookupKey{family, a})
			if fid == 0 {
				continue
			}
			if gid := LookupGlyph(fid, ch); gid != 0 {
				return fid, gid
			}
		}
	}
	return 0, 0
}
