package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/geom"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// svgEncoder serializes a scene as an SVG document. Each region's
// geometry becomes a clip path applied to a single filled rect, so
// gradients span the region as a whole instead of restarting per module.
type svgEncoder struct{}

type svgRegion struct {
	name  string
	paint scene.Paint
	prims []geom.Primitive
}

func (svgEncoder) Encode(sc *scene.Scene, b *border.Options) (*Artifact, error) {
	regions, order := collectRegions(sc)

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d"`,
		sc.Width, sc.Height, sc.Width, sc.Height)
	if sc.CrispEdges {
		buf.WriteString(` shape-rendering="crispEdges"`)
	}
	buf.WriteString(`>`)

	buf.WriteString(`<defs>`)
	for _, name := range order {
		reg := regions[name]
		writeGradientDef(&buf, name, reg.paint)
		fmt.Fprintf(&buf, `<clipPath id="clip-%s">`, name)
		for _, p := range reg.prims {
			writePrimitive(&buf, p)
		}
		buf.WriteString(`</clipPath>`)
	}
	buf.WriteString(`</defs>`)

	for _, name := range order {
		reg := regions[name]
		fmt.Fprintf(&buf, `<rect x="0" y="0" width="%d" height="%d" clip-path="url(#clip-%s)"`,
			sc.Width, sc.Height, name)
		writeFill(&buf, name, reg.paint)
		buf.WriteString(`/>`)
	}

	if sc.Logo != nil {
		writeLogo(&buf, sc.Logo)
	}
	buf.WriteString(`</svg>`)

	data, w, h, err := border.WrapSVG(buf.Bytes(), sc.Width, sc.Height, b)
	if err != nil {
		return nil, err
	}
	return &Artifact{Format: FormatSVG, Width: w, Height: h, Data: data}, nil
}

// collectRegions groups shape geometry by region name in first-paint
// order. The logo placeholder carries no fill and is skipped.
func collectRegions(sc *scene.Scene) (map[string]*svgRegion, []string) {
	regions := make(map[string]*svgRegion)
	var order []string
	for _, g := range sc.Groups {
		if g.Kind == scene.KindLogoSpace {
			continue
		}
		reg, ok := regions[g.Region]
		if !ok {
			reg = &svgRegion{name: g.Region, paint: g.Paint}
			regions[g.Region] = reg
			order = append(order, g.Region)
		}
		reg.prims = append(reg.prims, g.Geometry...)
	}
	return regions, order
}

func writeGradientDef(buf *bytes.Buffer, name string, p scene.Paint) {
	switch {
	case p.Linear != nil:
		fmt.Fprintf(buf,
			`<linearGradient id="grad-%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			name, num(p.Linear.X1), num(p.Linear.Y1), num(p.Linear.X2), num(p.Linear.Y2))
		writeStops(buf, p.Linear.Stops)
		buf.WriteString(`</linearGradient>`)
	case p.Radial != nil:
		fmt.Fprintf(buf,
			`<radialGradient id="grad-%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			name, num(p.Radial.CX), num(p.Radial.CY), num(p.Radial.R))
		writeStops(buf, p.Radial.Stops)
		buf.WriteString(`</radialGradient>`)
	}
}

func writeStops(buf *bytes.Buffer, stops []scene.GradientStop) {
	for _, s := range stops {
		fmt.Fprintf(buf, `<stop offset="%s%%" stop-color="%s"`, num(s.Offset*100), s.Color.Hex())
		if s.Color.A < 255 {
			fmt.Fprintf(buf, ` stop-opacity="%s"`, num(float64(s.Color.A)/255))
		}
		buf.WriteString(`/>`)
	}
}

func writeFill(buf *bytes.Buffer, name string, p scene.Paint) {
	if p.Linear != nil || p.Radial != nil {
		fmt.Fprintf(buf, ` fill="url(#grad-%s)"`, name)
		return
	}
	writeSolid(buf, p.Solid)
}

func writeSolid(buf *bytes.Buffer, c style.Color) {
	fmt.Fprintf(buf, ` fill="%s"`, c.Hex())
	if c.A < 255 {
		fmt.Fprintf(buf, ` fill-opacity="%s"`, num(float64(c.A)/255))
	}
}

// writePrimitive emits one clip shape.
func writePrimitive(buf *bytes.Buffer, p geom.Primitive) {
	switch v := p.(type) {
	case geom.Rect:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`,
			num(v.X), num(v.Y), num(v.W), num(v.H))
		if v.Rx > 0 {
			fmt.Fprintf(buf, ` rx="%s"`, num(v.Rx))
		}
		buf.WriteString(`/>`)
	case geom.Circle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s"/>`, num(v.CX), num(v.CY), num(v.R))
	case geom.Ring:
		fmt.Fprintf(buf, `<path clip-rule="evenodd" d="%s %s"/>`,
			circlePathData(v.CX, v.CY, v.Outer), circlePathData(v.CX, v.CY, v.Inner))
	case *geom.Path:
		buf.WriteString(`<path`)
		if v.Rule == geom.FillEvenOdd {
			buf.WriteString(` clip-rule="evenodd"`)
		}
		if v.Rotation != 0 {
			fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`,
				num(v.Rotation*180/math.Pi), num(v.Pivot.X), num(v.Pivot.Y))
		}
		buf.WriteString(` d="`)
		writePathData(buf, v.Segments)
		buf.WriteString(`"/>`)
	}
}

// circlePathData traces a full circle as two arcs, usable inside an
// even-odd path where a circle element cannot carve holes.
func circlePathData(cx, cy, r float64) string {
	return fmt.Sprintf("M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 %s 0 z",
		num(cx-r), num(cy), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
}

func writePathData(buf *bytes.Buffer, segs []geom.Segment) {
	for i, s := range segs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch s.Op {
		case geom.OpMove:
			fmt.Fprintf(buf, "M %s %s", num(s.To.X), num(s.To.Y))
		case geom.OpLine:
			fmt.Fprintf(buf, "L %s %s", num(s.To.X), num(s.To.Y))
		case geom.OpArc:
			large, sweep := 0, 0
			if s.LargeArc {
				large = 1
			}
			if s.Sweep {
				sweep = 1
			}
			fmt.Fprintf(buf, "A %s %s 0 %d %d %s %s",
				num(s.Radius), num(s.Radius), large, sweep, num(s.To.X), num(s.To.Y))
		case geom.OpClose:
			buf.WriteString("Z")
		}
	}
}

func writeLogo(buf *bytes.Buffer, l *scene.LogoPlacement) {
	fmt.Fprintf(buf,
		`<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="data:%s;base64,%s"/>`,
		num(l.Rect.X), num(l.Rect.Y), num(l.Rect.W), num(l.Rect.H),
		l.MIME, base64.StdEncoding.EncodeToString(l.Image))
}

// num trims coordinates to millipixel precision.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
