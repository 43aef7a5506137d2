package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"svg", FormatSVG},
		{"SVG", FormatSVG},
		{" png ", FormatPNG},
		{"jpg", FormatJPEG},
		{"jpeg", FormatJPEG},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
		{"PDF", FormatPDF},
		{"webp", FormatWebP},
		{"bogus", Format("bogus")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFormat(tt.input), "input %q", tt.input)
	}
}

func TestFormat_MIME(t *testing.T) {
	assert.Equal(t, "image/svg+xml", FormatSVG.MIME())
	assert.Equal(t, "application/pdf", FormatPDF.MIME())
	assert.Equal(t, "image/png", FormatPNG.MIME())
	assert.Equal(t, "image/jpeg", FormatJPEG.MIME())
	assert.Equal(t, "image/tiff", FormatTIFF.MIME())
}

type stubEncoder struct {
	artifact *Artifact
}

func (s stubEncoder) Encode(_ *scene.Scene, _ *border.Options) (*Artifact, error) {
	return s.artifact, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup(FormatSVG)
	assert.False(t, ok)
	assert.Empty(t, r.Supported())

	want := &Artifact{Format: FormatSVG, Data: []byte("x")}
	r.Register(FormatSVG, stubEncoder{artifact: want})
	r.Register(FormatPNG, stubEncoder{artifact: want})

	enc, ok := r.Lookup(FormatSVG)
	require.True(t, ok)
	assert.NotNil(t, enc)

	// Stable sorted order.
	assert.Equal(t, []Format{FormatPNG, FormatSVG}, r.Supported())

	got, err := r.Encode(FormatSVG, &scene.Scene{}, nil)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestRegistry_UnsupportedFormat(t *testing.T) {
	r := NewRegistry()
	r.Register(FormatSVG, stubEncoder{})
	r.Register(FormatPNG, stubEncoder{})

	_, err := r.Encode(FormatWebP, &scene.Scene{}, nil)
	require.Error(t, err)

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, FormatWebP, ufe.Format)
	assert.Equal(t, []Format{FormatPNG, FormatSVG}, ufe.Supported)
	assert.Equal(t, `unsupported output format "webp" (supported: png, svg)`, err.Error())
}

func TestDefaultRegistry(t *testing.T) {
	for _, f := range []Format{FormatSVG, FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF, FormatPDF} {
		_, ok := Default.Lookup(f)
		assert.True(t, ok, "format %s not registered", f)
	}
	_, ok := Default.Lookup(FormatWebP)
	assert.False(t, ok)
}
