package scene

import (
	"math"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// layout fixes the pixel geometry of the module grid on the canvas.
type layout struct {
	count     int
	dotSize   float64
	xBegin    float64
	yBegin    float64
	roundSize bool
}

// computeLayout derives the module pixel size and grid origin. For the
// circle canvas the grid shrinks by sqrt(2) so the square of modules fits
// inside the inscribed circle; the freed margin is later filled with
// decorative edge dots.
func computeLayout(count int, opts *style.Options) layout {
	l := layout{count: count, roundSize: opts.Dots.RoundSize}
	minSize := float64(min(opts.Width, opts.Height))
	realSize := minSize
	if opts.Shape == style.ShapeCircle {
		realSize = minSize / math.Sqrt2
	}
	// The quiet-zone margin is in module units, so it scales with the
	// grid rather than the canvas.
	l.dotSize = l.round(realSize / float64(count+2*opts.Margin))
	l.xBegin = l.round((float64(opts.Width) - float64(count)*l.dotSize) / 2)
	l.yBegin = l.round((float64(opts.Height) - float64(count)*l.dotSize) / 2)
	return l
}

// round floors a size to whole pixels when round-size is enabled,
// otherwise passes it through.
func (l layout) round(v float64) float64 {
	if l.roundSize {
		return math.Floor(v)
	}
	return v
}

// modulePos returns the canvas position of a module's top-left corner.
func (l layout) modulePos(row, col int) (x, y float64) {
	return l.xBegin + float64(col)*l.dotSize, l.yBegin + float64(row)*l.dotSize
}
