package shirei

type f32 = float32

type Vec2 = [2]f32
type Vec4 = [4]f32

func N4(v f32) Vec4 {
	return Vec4{v, v, v, v}
}

type Rect struct {
	Origin Vec2
	Size   Vec2
}

func (r Rect) Max() Vec2 {
	return Vec2Add(r.Origin, r.Size)
}

func (r Rect) Center() Vec2 {
	return Vec2Add(r.Origin, Vec2Mul(r.Size, 0.5))
}

// BottomLeft is where anchored popups are placed by default.
func (r Rect) BottomLeft() Vec2 {
	return Vec2{r.Origin[0], r.Origin[1] + r.Size[1]}
}

func RectContainsPoint(r Rect, p Vec2) bool {
	tl := r.Origin
	br := r.Max()
	return p[0] >= tl[0] && p[0] < br[0] && p[1] >= tl[1] && p[1] < br[1]
}

func RectIntersect(r1 Rect, r2 Rect) Rect {
	min1, max1 := r1.Origin, r1.Max()
	min2, max2 := r2.Origin, r2.Max()

	lo := Vec2{max(min1[0], min2[0]), max(min1[1], min2[1])}
	hi := Vec2{min(max1[0], max2[0]), min(max1[1], max2[1])}

	size := Vec2Sub(hi, lo)
	if size[0] < 0 || size[1] < 0 {
		return Rect{}
	}
	return Rect{Origin: lo, Size: size}
}

func Vec2Add(v1 Vec2, v2 Vec2) Vec2 {
	return Vec2{v1[0] + v2[0], v1[1] + v2[1]}
}

func Vec2Sub(v1 Vec2, v2 Vec2) Vec2 {
	return Vec2{v1[0] - v2[0], v1[1] - v2[1]}
}

func Vec2Mul(v1 Vec2, f f32) Vec2 {
	return Vec2{v1[0] * f, v1[1] * f}
}

func Vec4Add(v1 Vec4, v2 Vec4) Vec4 {
	return Vec4{v1[0] + v2[0], v1[1] + v2[1], v1[2] + v2[2], v1[3] + v2[3]}
}

// MainCrossAxes returns the index of the main axis and the cross axis.
func MainCrossAxes(row bool) (int, int) {
	if row {
		return 0, 1
	}
	return 1, 0
}
