package border

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// WrapSVG embeds an SVG document inside a framed outer document. The
// returned dimensions include the frame on every side. When the frame is
// disabled the input passes through unchanged.
func WrapSVG(inner []byte, width, height int, o *Options) ([]byte, int, int, error) {
	if !o.Enabled() {
		return inner, width, height, nil
	}
	if err := o.Validate(); err != nil {
		return nil, 0, 0, err
	}

	t := float64(o.Thickness)
	outerW := width + 2*o.Thickness
	outerH := height + 2*o.Thickness

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`,
		outerW, outerH, outerW, outerH)

	fmt.Fprintf(&buf, `<g transform="translate(%s %s)">`, svgNum(t), svgNum(t))
	buf.Write(inner)
	buf.WriteString(`</g>`)

	writeFrameStroke(&buf, outerW, outerH, t, t/2, o.Color, t, o.Roundness, o.Dash)
	if o.Outer != nil && o.Outer.Thickness > 0 {
		writeFrameStroke(&buf, outerW, outerH, t, o.Outer.Thickness/2,
			o.Outer.Color, o.Outer.Thickness, o.Roundness, o.Outer.Dash)
	}
	if o.Inner != nil && o.Inner.Thickness > 0 {
		writeFrameStroke(&buf, outerW, outerH, t, t-o.Inner.Thickness/2,
			o.Inner.Color, o.Inner.Thickness, o.Roundness, o.Inner.Dash)
	}

	writeLabels(&buf, outerW, outerH, t, o)

	buf.WriteString(`</svg>`)
	return buf.Bytes(), outerW, outerH, nil
}

// writeFrameStroke emits one stroked rounded rect whose centerline sits
// at the given inset from the outer edge.
func writeFrameStroke(buf *bytes.Buffer, outerW, outerH int, t, inset float64, c style.Color, strokeW, roundness float64, dash []float64) {
	w := float64(outerW) - 2*inset
	h := float64(outerH) - 2*inset
	rx := roundness * math.Min(w, h) / 2
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`,
		svgNum(inset), svgNum(inset), svgNum(w), svgNum(h))
	if rx > 0 {
		fmt.Fprintf(buf, ` rx="%s"`, svgNum(rx))
	}
	fmt.Fprintf(buf, ` fill="none" stroke="%s" stroke-width="%s"`, c.Hex(), svgNum(strokeW))
	if c.A < 255 {
		fmt.Fprintf(buf, ` stroke-opacity="%s"`, svgNum(float64(c.A)/255))
	}
	if len(dash) > 0 {
		buf.WriteString(` stroke-dasharray="`)
		for i, d := range dash {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(svgNum(d))
		}
		buf.WriteByte('"')
	}
	buf.WriteString(`/>`)
}

// writeLabels places label text on the frame band. Rounder frames get
// curved top and bottom labels riding the frame centerline; boxy frames
// use straight runs.
func writeLabels(buf *bytes.Buffer, outerW, outerH int, t float64, o *Options) {
	if len(o.Labels) == 0 {
		return
	}
	w := float64(outerW)
	h := float64(outerH)
	curved := o.Roundness >= 0.5

	if curved {
		r := math.Min(w, h)/2 - t/2
		cx, cy := w/2, h/2
		// Left midpoint start so percentage offsets land the top of the
		// circle at 25% and the bottom at 75%.
		fmt.Fprintf(buf,
			`<defs><path id="frame-label-arc" d="M %s %s a %s %s 0 1 1 %s 0 a %s %s 0 1 1 %s 0"/>`,
			svgNum(cx-r), svgNum(cy), svgNum(r), svgNum(r), svgNum(2*r),
			svgNum(r), svgNum(r), svgNum(-2*r))
		fmt.Fprintf(buf,
			`<path id="frame-label-arc-ccw" d="M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 %s 0"/></defs>`,
			svgNum(cx-r), svgNum(cy), svgNum(r), svgNum(r), svgNum(2*r),
			svgNum(r), svgNum(r), svgNum(-2*r))
	}

	for _, pos := range labelOrder {
		l, ok := o.Labels[pos]
		if !ok {
			continue
		}
		size := o.labelSize(l)
		color := o.labelColor(l)
		switch {
		case curved && pos == PositionTop:
			writeTextPath(buf, "frame-label-arc", "25%", l.Text, size, color)
		case curved && pos == PositionBottom:
			writeTextPath(buf, "frame-label-arc-ccw", "25%", l.Text, size, color)
		case pos == PositionTop:
			writeText(buf, w/2, t/2, 0, l.Text, size, color)
		case pos == PositionBottom:
			writeText(buf, w/2, h-t/2, 0, l.Text, size, color)
		case pos == PositionLeft:
			writeText(buf, t/2, h/2, -90, l.Text, size, color)
		case pos == PositionRight:
			writeText(buf, w-t/2, h/2, 90, l.Text, size, color)
		}
	}
}

func writeText(buf *bytes.Buffer, x, y, rotate float64, text string, size float64, c style.Color) {
	fmt.Fprintf(buf,
		`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%s" fill="%s"`,
		svgNum(x), svgNum(y), svgNum(size), c.Hex())
	if rotate != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, svgNum(rotate), svgNum(x), svgNum(y))
	}
	fmt.Fprintf(buf, `>%s</text>`, escapeText(text))
}

func writeTextPath(buf *bytes.Buffer, pathID, offset, text string, size float64, c style.Color) {
	fmt.Fprintf(buf,
		`<text font-family="sans-serif" font-size="%s" fill="%s"><textPath href="#%s" startOffset="%s" text-anchor="middle" dominant-baseline="central">%s</textPath></text>`,
		svgNum(size), c.Hex(), pathID, offset, escapeText(text))
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// svgNum formats a coordinate with enough precision for sub-pixel
// geometry without the noise of full float64 output.
func svgNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
