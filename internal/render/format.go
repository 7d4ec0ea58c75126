package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// Format identifies a document backend
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat maps a user supplied format name to a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
	}
}

func (f Format) Extension() string { return string(f) }

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// Backend serialises a composed document
type Backend interface {
	Format() Format
	Write(w io.Writer, doc *Document) error
}
