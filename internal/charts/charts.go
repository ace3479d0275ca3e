package charts

import (
	"errors"
	"fmt"

	"github.com/akasprzok/pie/internal/piechart"
)

// ErrUnknownFormat is returned for a format no chart library handles.
var ErrUnknownFormat = errors.New("unknown chart format")

// Format names an output a chart library can paint.
type Format string

const (
	FormatTerm Format = "term"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
)

// Formats lists every format with a chart library, in help order.
var Formats = []Format{FormatTerm, FormatSVG, FormatPNG, FormatHTML}

// ForFormat returns the chart library that paints format.
func ForFormat(format Format) (piechart.Library, error) {
	switch format {
	case FormatTerm:
		return Terminal{}, nil
	case FormatSVG:
		return Image{}, nil
	case FormatPNG:
		return Image{PNG: true}, nil
	case FormatHTML:
		return HTML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DefaultSize returns the canvas size a format is drawn at when none is given.
func DefaultSize(format Format) (int, int) {
	if format == FormatTerm {
		return DefaultWidth, DefaultHeight
	}
	return DefaultImageWidth, DefaultImageHeight
}
