package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/geom"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
)

// rasterEncoder paints a scene into pixels and encodes it with one of
// the bitmap codecs.
type rasterEncoder struct {
	format Format
}

func (e rasterEncoder) Encode(sc *scene.Scene, b *border.Options) (*Artifact, error) {
	img, err := Rasterize(sc)
	if err != nil {
		return nil, err
	}
	img, err = border.Expand(img, b)
	if err != nil {
		return nil, err
	}

	// JPEG and BMP carry no alpha channel; flatten onto white so
	// transparent backgrounds do not come out black.
	if e.format == FormatJPEG || e.format == FormatBMP {
		img = flatten(img)
	}

	imf, err := imagingFormat(e.format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.format, err)
	}
	bounds := img.Bounds()
	return &Artifact{
		Format: e.format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   buf.Bytes(),
	}, nil
}

func imagingFormat(f Format) (imaging.Format, error) {
	switch f {
	case FormatPNG:
		return imaging.PNG, nil
	case FormatJPEG:
		return imaging.JPEG, nil
	case FormatGIF:
		return imaging.GIF, nil
	case FormatBMP:
		return imaging.BMP, nil
	case FormatTIFF:
		return imaging.TIFF, nil
	default:
		return 0, fmt.Errorf("no bitmap codec for format %q", f)
	}
}

func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	white := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}

// Rasterize paints the scene's groups in order onto a fresh canvas and
// draws the logo last.
func Rasterize(sc *scene.Scene) (image.Image, error) {
	dc := gg.NewContext(sc.Width, sc.Height)
	for _, g := range sc.Groups {
		if g.Kind == scene.KindLogoSpace {
			continue
		}
		paintGroup(dc, g)
	}
	if sc.Logo != nil {
		if err := drawLogo(dc, sc.Logo); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

func paintGroup(dc *gg.Context, g scene.ShapeGroup) {
	setPaint(dc, g.Paint)
	for _, p := range g.Geometry {
		evenOdd := tracePrimitive(dc, p)
		if evenOdd {
			dc.SetFillRuleEvenOdd()
		} else {
			dc.SetFillRuleWinding()
		}
		dc.Fill()
	}
	dc.SetFillRuleWinding()
}

func setPaint(dc *gg.Context, p scene.Paint) {
	switch {
	case p.Linear != nil:
		grad := gg.NewLinearGradient(p.Linear.X1, p.Linear.Y1, p.Linear.X2, p.Linear.Y2)
		for _, s := range p.Linear.Stops {
			grad.AddColorStop(s.Offset, s.Color.RGBA())
		}
		dc.SetFillStyle(grad)
	case p.Radial != nil:
		grad := gg.NewRadialGradient(p.Radial.CX, p.Radial.CY, 0, p.Radial.CX, p.Radial.CY, p.Radial.R)
		for _, s := range p.Radial.Stops {
			grad.AddColorStop(s.Offset, s.Color.RGBA())
		}
		dc.SetFillStyle(grad)
	default:
		dc.SetColor(p.Solid.RGBA())
	}
}

// tracePrimitive adds the primitive's outline to the current path and
// reports whether it must be filled even-odd.
func tracePrimitive(dc *gg.Context, p geom.Primitive) bool {
	switch v := p.(type) {
	case geom.Rect:
		if v.Rx > 0 {
			dc.DrawRoundedRectangle(v.X, v.Y, v.W, v.H, v.Rx)
		} else {
			dc.DrawRectangle(v.X, v.Y, v.W, v.H)
		}
		return false
	case geom.Circle:
		dc.DrawCircle(v.CX, v.CY, v.R)
		return false
	case geom.Ring:
		dc.DrawCircle(v.CX, v.CY, v.Outer)
		dc.NewSubPath()
		dc.DrawCircle(v.CX, v.CY, v.Inner)
		return true
	case *geom.Path:
		tracePath(dc, v)
		return v.Rule == geom.FillEvenOdd
	}
	return false
}

// tracePath replays the path segments under the path's rotation. Points
// are transformed as they are added, so the matrix is restored before
// filling.
func tracePath(dc *gg.Context, p *geom.Path) {
	rotated := p.Rotation != 0
	if rotated {
		dc.Push()
		dc.RotateAbout(p.Rotation, p.Pivot.X, p.Pivot.Y)
	}
	var cur geom.Point
	for _, s := range p.Segments {
		switch s.Op {
		case geom.OpMove:
			dc.MoveTo(s.To.X, s.To.Y)
			cur = s.To
		case geom.OpLine:
			dc.LineTo(s.To.X, s.To.Y)
			cur = s.To
		case geom.OpArc:
			arcTo(dc, cur, s)
			cur = s.To
		case geom.OpClose:
			dc.ClosePath()
		}
	}
	if rotated {
		dc.Pop()
	}
}

// arcTo appends a circular arc from cur to s.To with radius s.Radius,
// honoring the large-arc and sweep flags. The two candidate centers are
// tried and the one whose sweep-direction span matches the large-arc
// flag wins.
func arcTo(dc *gg.Context, cur geom.Point, s geom.Segment) {
	x1, y1 := cur.X, cur.Y
	x2, y2 := s.To.X, s.To.Y
	r := s.Radius

	mx, my := (x1+x2)/2, (y1+y2)/2
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	if r < dist/2 {
		r = dist / 2
	}
	h := math.Sqrt(math.Max(0, r*r-dist*dist/4))
	ux, uy := -dy/dist, dx/dist

	cx, cy := mx+ux*h, my+uy*h
	a1, da := arcSpan(cx, cy, x1, y1, x2, y2, s.Sweep)
	if (math.Abs(da) > math.Pi) != s.LargeArc && h > 0 {
		cx, cy = mx-ux*h, my-uy*h
		a1, da = arcSpan(cx, cy, x1, y1, x2, y2, s.Sweep)
	}
	dc.DrawArc(cx, cy, r, a1, a1+da)
}

func arcSpan(cx, cy, x1, y1, x2, y2 float64, sweep bool) (a1, da float64) {
	a1 = math.Atan2(y1-cy, x1-cx)
	a2 := math.Atan2(y2-cy, x2-cx)
	da = a2 - a1
	if sweep && da < 0 {
		da += 2 * math.Pi
	}
	if !sweep && da > 0 {
		da -= 2 * math.Pi
	}
	return a1, da
}

// drawLogo decodes the logo bytes, fits them inside the placement box
// preserving aspect ratio, and draws the result centered.
func drawLogo(dc *gg.Context, l *scene.LogoPlacement) error {
	img, err := imaging.Decode(bytes.NewReader(l.Image))
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}
	w := int(math.Round(l.Rect.W))
	h := int(math.Round(l.Rect.H))
	if w < 1 || h < 1 {
		return nil
	}
	fitted := imaging.Fit(img, w, h, imaging.Lanczos)
	cx := int(math.Round(l.Rect.X + l.Rect.W/2))
	cy := int(math.Round(l.Rect.Y + l.Rect.H/2))
	dc.DrawImageAnchored(fitted, cx, cy, 0.5, 0.5)
	return nil
}
