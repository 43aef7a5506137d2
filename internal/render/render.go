package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/scene"
)

// Format identifies an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPDF  Format = "pdf"
	FormatWebP Format = "webp"
)

// ParseFormat normalizes a user-supplied format name. It accepts common
// aliases but does not check registration; that happens at encode time.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "jpg":
		return FormatJPEG
	case "tif":
		return FormatTIFF
	}
	return f
}

// MIME returns the media type for the format.
func (f Format) MIME() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/" + string(f)
	}
}

// Artifact is one encoded render. Width and Height are the final pixel
// (or user-unit) dimensions including any border expansion.
type Artifact struct {
	Format Format
	Width  int
	Height int
	Data   []byte
}

// Encoder turns a resolved scene into bytes for one format. The border
// options may be nil or zero-thickness, in which case the output covers
// exactly the scene canvas.
type Encoder interface {
	Encode(sc *scene.Scene, b *border.Options) (*Artifact, error)
}

// UnsupportedFormatError is returned when no encoder is registered for
// the requested format.
type UnsupportedFormatError struct {
	Format    Format
	Supported []Format
}

func (e *UnsupportedFormatError) Error() string {
	names := make([]string, len(e.Supported))
	for i, f := range e.Supported {
		names[i] = string(f)
	}
	return fmt.Sprintf("unsupported output format %q (supported: %s)",
		string(e.Format), strings.Join(names, ", "))
}

// Registry maps formats to encoders. Registration and lookup are safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	encoders map[Format]Encoder
}

func NewRegistry() *Registry {
	return &Registry{encoders: make(map[Format]Encoder)}
}

// Register installs enc for f, replacing any previous encoder.
func (r *Registry) Register(f Format, enc Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encoders[f] = enc
}

// Lookup returns the encoder registered for f.
func (r *Registry) Lookup(f Format) (Encoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enc, ok := r.encoders[f]
	return enc, ok
}

// Supported lists registered formats in stable order.
func (r *Registry) Supported() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.encoders))
	for f := range r.encoders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Encode renders the scene in the requested format, or fails with
// UnsupportedFormatError when the format has no encoder.
func (r *Registry) Encode(f Format, sc *scene.Scene, b *border.Options) (*Artifact, error) {
	enc, ok := r.Lookup(f)
	if !ok {
		return nil, &UnsupportedFormatError{Format: f, Supported: r.Supported()}
	}
	return enc.Encode(sc, b)
}

// Default carries the built-in encoders. WebP has no encoder and is
// not registered.
var Default = NewRegistry()

func init() {
	Default.Register(FormatSVG, svgEncoder{})
	Default.Register(FormatPNG, rasterEncoder{format: FormatPNG})
	Default.Register(FormatJPEG, rasterEncoder{format: FormatJPEG})
	Default.Register(FormatGIF, rasterEncoder{format: FormatGIF})
	Default.Register(FormatBMP, rasterEncoder{format: FormatBMP})
	Default.Register(FormatTIFF, rasterEncoder{format: FormatTIFF})
	Default.Register(FormatPDF, pdfEncoder{})
}
