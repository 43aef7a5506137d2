package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
)

// pdfEncoder rasterizes the scene to PNG and wraps it in a single-page
// PDF sized to the image.
type pdfEncoder struct{}

func (pdfEncoder) Encode(sc *scene.Scene, b *border.Options) (*Artifact, error) {
	img, err := Rasterize(sc)
	if err != nil {
		return nil, err
	}
	img, err = border.Expand(img, b)
	if err != nil {
		return nil, err
	}

	var png bytes.Buffer
	if err := imaging.Encode(&png, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode page image: %w", err)
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{bytes.NewReader(png.Bytes())}, nil, nil); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	bounds := img.Bounds()
	return &Artifact{
		Format: FormatPDF,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   out.Bytes(),
	}, nil
}
