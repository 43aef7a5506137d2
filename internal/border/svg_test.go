package border

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

const innerDoc = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400"></svg>`

func TestWrapSVG_DisabledPassthrough(t *testing.T) {
	out, w, h, err := WrapSVG([]byte(innerDoc), 400, 400, nil)
	require.NoError(t, err)
	assert.Equal(t, innerDoc, string(out))
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)

	out, w, h, err = WrapSVG([]byte(innerDoc), 400, 400, &Options{Thickness: 0})
	require.NoError(t, err)
	assert.Equal(t, innerDoc, string(out))
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
}

func TestWrapSVG_GrowsCanvasOutward(t *testing.T) {
	o := &Options{Thickness: 40, Color: style.Black}
	out, w, h, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	assert.Equal(t, 480, w)
	assert.Equal(t, 480, h)

	doc := string(out)
	assert.Contains(t, doc, `width="480" height="480"`)
	assert.Contains(t, doc, `viewBox="0 0 480 480"`)
	// The original document shifts by the thickness, untouched.
	assert.Contains(t, doc, `<g transform="translate(40 40)">`)
	assert.Contains(t, doc, innerDoc)
	// Frame stroke centerline sits half a thickness in.
	assert.Contains(t, doc, `<rect x="20" y="20" width="440" height="440"`)
	assert.Contains(t, doc, `stroke="#000000" stroke-width="40"`)
}

func TestWrapSVG_InvalidOptions(t *testing.T) {
	_, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, &Options{Thickness: 10, Roundness: 2})
	require.Error(t, err)
	_, ok := style.AsConfigError(err)
	assert.True(t, ok)
}

func TestWrapSVG_DashAndRings(t *testing.T) {
	o := &Options{
		Thickness: 30,
		Color:     style.Black,
		Dash:      []float64{8, 4},
		Outer:     &Ring{Color: style.White, Thickness: 3},
		Inner:     &Ring{Color: style.MustColor("#ff0000"), Thickness: 2, Dash: []float64{2, 2}},
	}
	out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `stroke-dasharray="8 4"`)
	assert.Contains(t, doc, `stroke="#ffffff" stroke-width="3"`)
	assert.Contains(t, doc, `stroke="#ff0000" stroke-width="2"`)
	// Three stroked rects: frame plus both rings.
	assert.Equal(t, 3, strings.Count(doc, `fill="none" stroke=`))
}

func TestWrapSVG_Roundness(t *testing.T) {
	o := &Options{Thickness: 40, Color: style.Black, Roundness: 0.4}
	out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)
	assert.Contains(t, string(out), ` rx="88"`)
}

func TestWrapSVG_StraightLabels(t *testing.T) {
	o := &Options{
		Thickness: 40,
		Color:     style.Black,
		Labels: map[Position]Label{
			PositionTop:  {Text: "SCAN ME", Color: style.White},
			PositionLeft: {Text: "side"},
		},
	}
	out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `>SCAN ME</text>`)
	assert.Contains(t, doc, `>side</text>`)
	assert.Contains(t, doc, `rotate(-90`)
	assert.NotContains(t, doc, "textPath")
}

func TestWrapSVG_CurvedLabels(t *testing.T) {
	o := &Options{
		Thickness: 40,
		Color:     style.Black,
		Roundness: 1,
		Labels: map[Position]Label{
			PositionTop:    {Text: "around the top"},
			PositionBottom: {Text: "around the bottom"},
		},
	}
	out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `textPath`)
	assert.Contains(t, doc, `startOffset="25%"`)
	assert.Contains(t, doc, `frame-label-arc`)
}

func TestWrapSVG_LabelOrderIsStable(t *testing.T) {
	o := &Options{
		Thickness: 40,
		Color:     style.Black,
		Labels: map[Position]Label{
			PositionLeft:   {Text: "gamma"},
			PositionRight:  {Text: "delta"},
			PositionTop:    {Text: "alpha"},
			PositionBottom: {Text: "beta"},
		},
	}

	first, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	// Labels come out top, bottom, left, right regardless of map order.
	doc := string(first)
	iAlpha := strings.Index(doc, ">alpha<")
	iBeta := strings.Index(doc, ">beta<")
	iGamma := strings.Index(doc, ">gamma<")
	iDelta := strings.Index(doc, ">delta<")
	require.True(t, iAlpha >= 0 && iBeta >= 0 && iGamma >= 0 && iDelta >= 0)
	assert.Less(t, iAlpha, iBeta)
	assert.Less(t, iBeta, iGamma)
	assert.Less(t, iGamma, iDelta)

	for i := 0; i < 50; i++ {
		out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
		require.NoError(t, err)
		require.Equal(t, first, out)
	}
}

func TestWrapSVG_EscapesLabelText(t *testing.T) {
	o := &Options{
		Thickness: 40,
		Color:     style.Black,
		Labels:    map[Position]Label{PositionTop: {Text: `<b>&"fish"</b>`}},
	}
	out, _, _, err := WrapSVG([]byte(innerDoc), 400, 400, o)
	require.NoError(t, err)

	doc := string(out)
	assert.NotContains(t, doc, `<b>`)
	assert.Contains(t, doc, `&lt;b&gt;&amp;`)
}
