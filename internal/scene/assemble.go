package scene

import (
	"bytes"
	"fmt"
	"image"
	"math"

	// Registered so the logo header can be sniffed for its aspect ratio.
	_ "image/jpeg"
	_ "image/png"

	"github.com/MeKo-Tech/qrstyle/internal/geom"
	"github.com/MeKo-Tech/qrstyle/internal/matrix"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Assemble builds the paint-ordered scene for one render. The input
// matrix is cloned, so concurrent renders over a shared matrix are safe.
// opts must have passed Validate.
func Assemble(m *matrix.Matrix, opts *style.Options) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	count := m.Size()
	l := computeLayout(count, opts)
	work := m.Clone()

	hasLogo := len(opts.Image) > 0
	var res reservation
	if hasLogo {
		res = computeReservation(count, opts.Margin, opts.ImageOptions)
		if opts.ImageOptions.HideBackgroundDots {
			reserve(work, res)
		}
	}

	s := &Scene{
		Width:      opts.Width,
		Height:     opts.Height,
		CrispEdges: !opts.Dots.RoundSize,
	}

	s.Groups = append(s.Groups, backgroundGroup(opts))
	appendDotGroups(s, work, l, opts)
	if opts.Shape == style.ShapeCircle {
		appendEdgeDotGroups(s, work, l, opts)
	}
	appendCornerGroups(s, l, opts)
	if hasLogo {
		if err := appendLogo(s, l, res, opts); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// backgroundGroup paints the canvas. The circle shape swaps the
// background geometry for an inscribed circle; module geometry is never
// clipped, so scannability does not depend on the canvas shape.
func backgroundGroup(opts *style.Options) ShapeGroup {
	w := float64(opts.Width)
	h := float64(opts.Height)
	paint := resolvePaint(opts.Background.Gradient, opts.Background.Color, 0, 0, w, h, 0)

	var prim geom.Primitive
	if opts.Shape == style.ShapeCircle {
		size := math.Min(w, h)
		prim = geom.Circle{CX: w / 2, CY: h / 2, R: size / 2}
	} else {
		rect := geom.Rect{W: w, H: h}
		if opts.Background.Round > 0 {
			size := math.Min(w, h)
			rect = geom.Rect{
				X:  (w - size) / 2,
				Y:  (h - size) / 2,
				W:  size,
				H:  size,
				Rx: (size / 2) * opts.Background.Round,
			}
		}
		prim = rect
	}
	return ShapeGroup{Kind: KindBackground, Region: "background", Geometry: []geom.Primitive{prim}, Paint: paint}
}

// appendDotGroups emits one group per active, non-hidden data module.
// Neighbor lookups see only modules the dot builder itself would draw, so
// merged silhouettes never leak into finder or hidden regions.
func appendDotGroups(s *Scene, m *matrix.Matrix, l layout, opts *style.Options) {
	drawer := geom.DotDrawer{Type: opts.Dots.Type}
	paint := resolvePaint(opts.Dots.Gradient, opts.Dots.Color, 0, 0, float64(opts.Width), float64(opts.Height), 0)

	n := m.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !m.DrawableDot(row, col) {
				continue
			}
			x, y := l.modulePos(row, col)
			neighbor := func(dx, dy int) bool {
				return m.DrawableDot(row+dy, col+dx)
			}
			s.Groups = append(s.Groups, ShapeGroup{
				Kind:     KindDot,
				Region:   "dots",
				Geometry: []geom.Primitive{drawer.Draw(x, y, l.dotSize, neighbor)},
				Paint:    paint,
			})
		}
	}
}

// appendEdgeDotGroups fills the ring between the module grid and the
// circular canvas with decorative dots sampled from the matrix, so the
// circle reads as a continuation of the code. Purely cosmetic.
func appendEdgeDotGroups(s *Scene, m *matrix.Matrix, l layout, opts *style.Options) {
	minSize := float64(min(opts.Width, opts.Height))
	additional := int(l.round((minSize/l.dotSize - float64(l.count)) / 2))
	if additional <= 0 {
		return
	}
	fakeCount := l.count + 2*additional
	xFakeBegin := l.xBegin - float64(additional)*l.dotSize
	yFakeBegin := l.yBegin - float64(additional)*l.dotSize
	center := float64(fakeCount) / 2

	fake := make([][]bool, fakeCount)
	for i := range fake {
		fake[i] = make([]bool, fakeCount)
	}
	innerLo := additional - 1
	if innerLo < 0 {
		innerLo = 0
	}
	innerHi := fakeCount - additional

	for row := 0; row < fakeCount; row++ {
		for col := 0; col < fakeCount; col++ {
			if row >= innerLo && row <= innerHi && col >= innerLo && col <= innerHi {
				continue
			}
			dist := math.Hypot(float64(row)-center, float64(col)-center)
			if dist > center {
				continue
			}
			src := func(i int) int {
				switch {
				case i < 2*additional:
					return i
				case i >= l.count:
					return i - 2*additional
				default:
					return i - additional
				}
			}
			if m.Dark(src(row), src(col)) {
				fake[row][col] = true
			}
		}
	}

	drawer := geom.DotDrawer{Type: opts.Dots.Type}
	paint := resolvePaint(opts.Dots.Gradient, opts.Dots.Color, 0, 0, float64(opts.Width), float64(opts.Height), 0)
	for row := 0; row < fakeCount; row++ {
		for col := 0; col < fakeCount; col++ {
			if !fake[row][col] {
				continue
			}
			x := xFakeBegin + float64(col)*l.dotSize
			y := yFakeBegin + float64(row)*l.dotSize
			neighbor := func(dx, dy int) bool {
				r, c := row+dy, col+dx
				return r >= 0 && c >= 0 && r < fakeCount && c < fakeCount && fake[r][c]
			}
			s.Groups = append(s.Groups, ShapeGroup{
				Kind:     KindEdgeDot,
				Region:   "dots",
				Geometry: []geom.Primitive{drawer.Draw(x, y, l.dotSize, neighbor)},
				Paint:    paint,
			})
		}
	}
}

// appendCornerGroups emits the frame and center pair for the three finder
// corners. rotation reflects each corner's orientation and feeds linear
// gradient resolution.
func appendCornerGroups(s *Scene, l layout, opts *style.Options) {
	squareDrawer := geom.CornerSquareDrawer{Type: opts.CornersSquare.Type}
	dotDrawer := geom.CornerDotDrawer{Type: opts.CornersDot.Type}
	squareSize := l.dotSize * 7
	dotSize := l.dotSize * 3

	corners := []struct {
		col, row int
		rotation float64
	}{
		{0, 0, 0},
		{1, 0, math.Pi / 2},
		{0, 1, -math.Pi / 2},
	}
	for _, c := range corners {
		x := l.xBegin + float64(c.col)*l.dotSize*float64(l.count-7)
		y := l.yBegin + float64(c.row)*l.dotSize*float64(l.count-7)

		s.Groups = append(s.Groups, ShapeGroup{
			Kind:     KindCornerSquare,
			Region:   fmt.Sprintf("corners-square-%d-%d", c.col, c.row),
			Geometry: []geom.Primitive{squareDrawer.Draw(x, y, squareSize, c.rotation)},
			Paint: resolvePaint(opts.CornersSquare.Gradient, opts.CornersSquare.Color,
				x, y, squareSize, squareSize, c.rotation),
		})
		dx := x + 2*l.dotSize
		dy := y + 2*l.dotSize
		s.Groups = append(s.Groups, ShapeGroup{
			Kind:     KindCornerDot,
			Region:   fmt.Sprintf("corners-dot-%d-%d", c.col, c.row),
			Geometry: []geom.Primitive{dotDrawer.Draw(dx, dy, dotSize, c.rotation)},
			Paint: resolvePaint(opts.CornersDot.Gradient, opts.CornersDot.Color,
				dx, dy, dotSize, dotSize, c.rotation),
		})
	}
}

// appendLogo records the logo placement and a placeholder group. The
// core never rasterizes logo pixels; encoders draw the bytes into the
// placement rectangle.
func appendLogo(s *Scene, l layout, res reservation, opts *style.Options) error {
	aspect := 1.0
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(opts.Image)); err == nil && cfg.Width > 0 {
		aspect = float64(cfg.Height) / float64(cfg.Width)
	}
	box := logoBox(l, res, aspect, opts.QR.Level)
	s.Logo = &LogoPlacement{
		Rect:  box,
		Image: opts.Image,
		MIME:  sniffMIME(opts.Image),
	}
	s.Groups = append(s.Groups, ShapeGroup{
		Kind:     KindLogoSpace,
		Region:   "logo",
		Geometry: []geom.Primitive{box},
		Paint:    Paint{Solid: style.Transparent},
	})
	return nil
}

// sniffMIME detects the logo image type from its magic bytes, defaulting
// to PNG.
func sniffMIME(data []byte) string {
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0x89, 'P', 'N', 'G'}):
		return "image/png"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "image/jpeg"
	case len(data) > 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/png"
	}
}
