// Package encode produces module matrices from payload text. The default
// generator delegates QR construction to go-qrcode and captures the raw
// module grid instead of letting the library rasterize it.
package encode

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/MeKo-Tech/qrstyle/internal/matrix"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Generator turns payload text into a module matrix. Implementations
// must be safe for concurrent use.
type Generator interface {
	Generate(data string, qr style.QROptions) (*matrix.Matrix, error)
}

// Default is the go-qrcode backed generator.
var Default Generator = qrGenerator{}

type qrGenerator struct{}

func (qrGenerator) Generate(data string, qr style.QROptions) (*matrix.Matrix, error) {
	if data == "" {
		return nil, &style.ConfigError{Field: "data", Reason: "must not be empty"}
	}
	opts := []qrcode.EncodeOption{
		ecOption(qr.Level),
	}
	if qr.Version > 0 {
		opts = append(opts, qrcode.WithVersion(qr.Version))
	}
	qrc, err := qrcode.NewWith(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var cw captureWriter
	if err := qrc.Save(&cw); err != nil {
		return nil, fmt.Errorf("capture modules: %w", err)
	}
	m, err := matrix.New(cw.rows)
	if err != nil {
		return nil, fmt.Errorf("classify modules: %w", err)
	}
	return m, nil
}

func ecOption(l style.ECLevel) qrcode.EncodeOption {
	switch l {
	case style.ECLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case style.ECMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case style.ECHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	}
}

// captureWriter satisfies the go-qrcode writer contract and records the
// module grid instead of encoding pixels.
type captureWriter struct {
	rows [][]bool
}

func (w *captureWriter) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	w.rows = make([][]bool, n)
	for i := range w.rows {
		w.rows[i] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if y < n && x < n && v.IsSet() {
			w.rows[y][x] = true
		}
	})
	return nil
}

func (w *captureWriter) Close() error { return nil }
