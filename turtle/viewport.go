package turtle

import "math"

// Viewport maps model coordinates, y growing upward, to screen
// coordinates, y growing downward.
type Viewport struct {
	Scale  Vec2
	Origin Vec2
}

func (v Viewport) Project(p Vec2) Vec2 {
	return Vec2{
		X: v.Origin.X + v.Scale.X*p.X,
		Y: v.Origin.Y - v.Scale.Y*p.Y,
	}
}

func (v Viewport) ProjectSegment(s Segment) Segment {
	s.Start = v.Project(s.Start)
	s.End = v.Project(s.End)
	return s
}

// Bounds returns the bounding box of the segments in model space.
func Bounds(segments []Segment) (lo, hi Vec2, ok bool) {
	if len(segments) == 0 {
		return Vec2{}, Vec2{}, false
	}
	lo = Vec2{math.Inf(1), math.Inf(1)}
	hi = Vec2{math.Inf(-1), math.Inf(-1)}
	for _, s := range segments {
		for _, p := range [2]Vec2{s.Start, s.End} {
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}

// Fit returns a uniformly scaled viewport that centres the segments on a
// width x height screen, keeping margin pixels free on every side.
func Fit(segments []Segment, width, height, margin float64) Viewport {
	lo, hi, ok := Bounds(segments)
	if !ok {
		return Viewport{Scale: Vec2{1, 1}, Origin: Vec2{width / 2, height / 2}}
	}

	availW, availH := width-2*margin, height-2*margin
	w, h := hi.X-lo.X, hi.Y-lo.Y
	scale := math.Inf(1)
	if w > 0 {
		scale = availW / w
	}
	if h > 0 {
		scale = math.Min(scale, availH/h)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	mid := Vec2{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2}
	return Viewport{
		Scale: Vec2{scale, scale},
		Origin: Vec2{
			X: width/2 - scale*mid.X,
			Y: height/2 + scale*mid.Y,
		},
	}
}
