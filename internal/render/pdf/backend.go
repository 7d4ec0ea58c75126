// Package pdf writes composed documents as PDF using go-pdf/fpdf.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

const fontFamily = "Helvetica"

// Backend renders documents with the core Helvetica font. Text is
// translated to cp1252 so Indonesian diacritics survive.
type Backend struct {
	Author string
}

func New(author string) *Backend {
	return &Backend{Author: author}
}

func (b *Backend) Format() render.Format { return render.FormatPDF }

func (b *Backend) Write(w io.Writer, doc *render.Document) error {
	l := doc.Layout()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(l.MarginLeft, l.MarginTop, l.MarginRight)
	pdf.SetTitle(doc.Title(), true)
	if b.Author != "" {
		pdf.SetAuthor(b.Author, true)
	}
	if !doc.GeneratedAt().IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt())
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, page := range doc.Pages() {
		pdf.AddPage()
		for _, op := range page.Canvas.Ops() {
			drawOp(pdf, tr, op)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("compose pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawOp(pdf *fpdf.Fpdf, tr func(string) string, op draw.Op) {
	switch o := op.(type) {
	case draw.Rect:
		if o.W <= 0 || o.H <= 0 {
			return
		}
		pdf.SetFillColor(int(o.Fill.R), int(o.Fill.G), int(o.Fill.B))
		pdf.Rect(o.X, o.Y, o.W, o.H, "F")
	case draw.Circle:
		pdf.SetFillColor(int(o.Fill.R), int(o.Fill.G), int(o.Fill.B))
		pdf.Circle(o.X, o.Y, o.R, "F")
	case draw.Segment:
		pdf.SetDrawColor(int(o.Stroke.R), int(o.Stroke.G), int(o.Stroke.B))
		pdf.SetLineWidth(o.Width)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
	case draw.Text:
		style := ""
		if o.Bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, o.Size)
		pdf.SetTextColor(int(o.Color.R), int(o.Color.G), int(o.Color.B))
		s := tr(o.Value)
		x := o.X
		switch o.Align {
		case draw.AlignRight:
			x -= pdf.GetStringWidth(s)
		case draw.AlignCenter:
			x -= pdf.GetStringWidth(s) / 2
		}
		pdf.Text(x, o.Y, s)
	}
}
