// Package render rasterizes turtle segments with gogpu/gg.
package render

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/viktordanov/lturtle/turtle"
)

// Options describe the drawing surface.
type Options struct {
	Width, Height int
	Background    turtle.Color
	Viewport      turtle.Viewport
}

// DefaultOptions matches the 1000x1000 window the built-in figures were
// tuned for, with the origin in the middle.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     1000,
		Background: gg.Black,
		Viewport: turtle.Viewport{
			Scale:  turtle.Vec2{X: 1, Y: 1},
			Origin: turtle.Vec2{X: 500, Y: 500},
		},
	}
}

// Draw clears a new context and strokes every segment with its own colour
// and width. The caller owns the returned context and must Close it.
func Draw(segments []turtle.Segment, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("render: invalid surface %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(opts.Background)
	dc.SetLineCap(gg.LineCapRound)
	for i, s := range segments {
		s = opts.Viewport.ProjectSegment(s)
		dc.SetColor(s.Color.Color())
		dc.SetLineWidth(s.Thickness)
		dc.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, errors.Wrapf(err, "render: segment %d", i)
		}
	}
	return dc, nil
}

// PNG draws the segments and encodes the frame to w.
func PNG(w io.Writer, segments []turtle.Segment, opts Options) error {
	dc, err := Draw(segments, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrap(dc.EncodePNG(w), "render: encode png")
}

// SavePNG draws the segments into the PNG file at path.
func SavePNG(path string, segments []turtle.Segment, opts Options) error {
	dc, err := Draw(segments, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrapf(dc.SavePNG(path), "render: save %s", path)
}
