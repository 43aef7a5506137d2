package border

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Expand draws img onto a larger canvas with the frame painted around
// it. When the frame is disabled the input image is returned as is.
func Expand(img image.Image, o *Options) (image.Image, error) {
	if !o.Enabled() {
		return img, nil
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	t := float64(o.Thickness)
	outerW := bounds.Dx() + 2*o.Thickness
	outerH := bounds.Dy() + 2*o.Thickness

	dc := gg.NewContext(outerW, outerH)
	dc.DrawImage(img, o.Thickness, o.Thickness)

	strokeFrame(dc, outerW, outerH, t/2, o.Color, t, o.Roundness, o.Dash)
	if o.Outer != nil && o.Outer.Thickness > 0 {
		strokeFrame(dc, outerW, outerH, o.Outer.Thickness/2,
			o.Outer.Color, o.Outer.Thickness, o.Roundness, o.Outer.Dash)
	}
	if o.Inner != nil && o.Inner.Thickness > 0 {
		strokeFrame(dc, outerW, outerH, t-o.Inner.Thickness/2,
			o.Inner.Color, o.Inner.Thickness, o.Roundness, o.Inner.Dash)
	}

	drawLabels(dc, outerW, outerH, t, o)
	return dc.Image(), nil
}

func strokeFrame(dc *gg.Context, outerW, outerH int, inset float64, c style.Color, strokeW, roundness float64, dash []float64) {
	w := float64(outerW) - 2*inset
	h := float64(outerH) - 2*inset
	r := roundness * math.Min(w, h) / 2
	if r > 0 {
		dc.DrawRoundedRectangle(inset, inset, w, h, r)
	} else {
		dc.DrawRectangle(inset, inset, w, h)
	}
	dc.SetColor(c.RGBA())
	dc.SetLineWidth(strokeW)
	if len(dash) > 0 {
		dc.SetDash(dash...)
	} else {
		dc.SetDash()
	}
	dc.Stroke()
	dc.SetDash()
}

// drawLabels renders the configured labels with the bundled bitmap face.
// Rounder frames curve the top and bottom runs along the frame
// centerline; left and right labels are rotated upright reading bottom
// to top and top to bottom respectively.
func drawLabels(dc *gg.Context, outerW, outerH int, t float64, o *Options) {
	if len(o.Labels) == 0 {
		return
	}
	dc.SetFontFace(basicfont.Face7x13)

	w := float64(outerW)
	h := float64(outerH)
	curved := o.Roundness >= 0.5
	radius := math.Min(w, h)/2 - t/2

	for _, pos := range labelOrder {
		l, ok := o.Labels[pos]
		if !ok {
			continue
		}
		dc.SetColor(o.labelColor(l).RGBA())
		switch {
		case curved && pos == PositionTop:
			drawArcText(dc, w/2, h/2, radius, -math.Pi/2, l.Text, false)
		case curved && pos == PositionBottom:
			drawArcText(dc, w/2, h/2, radius, math.Pi/2, l.Text, true)
		case pos == PositionTop:
			dc.DrawStringAnchored(l.Text, w/2, t/2, 0.5, 0.5)
		case pos == PositionBottom:
			dc.DrawStringAnchored(l.Text, w/2, h-t/2, 0.5, 0.5)
		case pos == PositionLeft:
			dc.Push()
			dc.RotateAbout(-math.Pi/2, t/2, h/2)
			dc.DrawStringAnchored(l.Text, t/2, h/2, 0.5, 0.5)
			dc.Pop()
		case pos == PositionRight:
			dc.Push()
			dc.RotateAbout(math.Pi/2, w-t/2, h/2)
			dc.DrawStringAnchored(l.Text, w-t/2, h/2, 0.5, 0.5)
			dc.Pop()
		}
	}
}

// drawArcText lays the runes of text along a circle so the run is
// centered on centerAngle. flip inverts glyph orientation for runs under
// the bottom of the circle.
func drawArcText(dc *gg.Context, cx, cy, r, centerAngle float64, text string, flip bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	charW, _ := dc.MeasureString("M")
	step := charW / r
	if flip {
		step = -step
	}
	angle := centerAngle - step*float64(len(runes)-1)/2
	for _, ch := range runes {
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		rot := angle + math.Pi/2
		if flip {
			rot = angle - math.Pi/2
		}
		dc.Push()
		dc.RotateAbout(rot, x, y)
		dc.DrawStringAnchored(string(ch), x, y, 0.5, 0.5)
		dc.Pop()
		angle += step
	}
}
