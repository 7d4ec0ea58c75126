// Package svg writes composed documents as a single SVG image with the
// pages stacked vertically.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// PageGap is the vertical space between stacked pages, in millimetres
const PageGap = 10

const fontStack = "Helvetica, Arial, sans-serif"

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Format() render.Format { return render.FormatSVG }

func (b *Backend) Write(w io.Writer, doc *render.Document) error {
	l := doc.Layout()
	n := doc.PageCount()
	height := float64(n)*l.PageHeight + float64(max(n-1, 0))*PageGap

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`+"\n",
		num(l.PageWidth), num(height), num(l.PageWidth), num(height))
	if doc.Title() != "" {
		bw.WriteString("<title>")
		if err := xml.EscapeText(bw, []byte(doc.Title())); err != nil {
			return fmt.Errorf("write svg title: %w", err)
		}
		bw.WriteString("</title>\n")
	}

	for _, page := range doc.Pages() {
		offset := float64(page.Index) * (l.PageHeight + PageGap)
		fmt.Fprintf(bw, `<g id="page-%d" transform="translate(0 %s)">`+"\n", page.Index+1, num(offset))
		fmt.Fprintf(bw, `<rect x="0" y="0" width="%s" height="%s" fill="#ffffff" stroke="%s" stroke-width="0.2"/>`+"\n",
			num(l.PageWidth), num(l.PageHeight), draw.LightGray.Hex())
		for _, op := range page.Canvas.Ops() {
			if err := writeOp(bw, op); err != nil {
				return err
			}
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeOp(w *bufio.Writer, op draw.Op) error {
	switch o := op.(type) {
	case draw.Rect:
		if o.W <= 0 || o.H <= 0 {
			return nil
		}
		fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(o.X), num(o.Y), num(o.W), num(o.H), o.Fill.Hex())
	case draw.Circle:
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(o.X), num(o.Y), num(o.R), o.Fill.Hex())
	case draw.Segment:
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(o.X1), num(o.Y1), num(o.X2), num(o.Y2), o.Stroke.Hex(), num(o.Width))
	case draw.Text:
		weight := "normal"
		if o.Bold {
			weight = "bold"
		}
		fmt.Fprintf(w, `<text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s" text-anchor="%s" fill="%s">`,
			num(o.X), num(o.Y), fontStack, num(draw.PointsToMM(o.Size)), weight, anchor(o.Align), o.Color.Hex())
		if err := xml.EscapeText(w, []byte(o.Value)); err != nil {
			return fmt.Errorf("write svg text: %w", err)
		}
		w.WriteString("</text>\n")
	}
	return nil
}

func anchor(a draw.Align) string {
	switch a {
	case draw.AlignCenter:
		return "middle"
	case draw.AlignRight:
		return "end"
	default:
		return "start"
	}
}

// num formats a coordinate with at most two decimals
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
