// Package render draws a computed diff as a PNG image for export.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/RahilKothari9/difflab/pkg/differ"
)

// Renderer renders a differ.Result as a unified-view PNG with gutter line
// numbers and per-row change tinting.
type Renderer struct {
	Width     float64
	RowHeight float64
	HeaderH   float64
	GutterW   float64
	PadLeft   float64
	FontSize  float64
	MaxChars  int
}

// NewRenderer creates a renderer with 1200px width.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:     1200,
		RowHeight: 28,
		HeaderH:   56,
		GutterW:   52,
		PadLeft:   16,
		FontSize:  15,
		MaxChars:  110,
	}
}

// RenderPNG writes the diff image to outputPath.
func (r *Renderer) RenderPNG(result differ.Result, title, outputPath string) error {
	dc := r.draw(result, title)
	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// Encode writes the diff image as PNG to w.
func (r *Renderer) Encode(result differ.Result, title string, w io.Writer) error {
	dc := r.draw(result, title)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Renderer) draw(result differ.Result, title string) *gg.Context {
	rows := len(result.Lines)
	if rows == 0 {
		rows = 1 // room for the "no changes" row
	}
	height := r.HeaderH + float64(rows)*r.RowHeight + r.RowHeight

	dc := gg.NewContext(int(r.Width), int(height))

	// Page background
	dc.SetColor(color.White)
	dc.Clear()

	r.drawHeader(dc, result, title)

	y := r.HeaderH
	if len(result.Lines) == 0 {
		r.loadFont(dc, r.FontSize)
		dc.SetColor(hexColor("#57606a"))
		dc.DrawString("(no content)", r.PadLeft+2*r.GutterW, y+r.RowHeight/2+r.FontSize/3)
		return dc
	}

	for _, ln := range result.Lines {
		r.drawRow(dc, ln, y)
		y += r.RowHeight
	}
	return dc
}

func (r *Renderer) drawHeader(dc *gg.Context, result differ.Result, title string) {
	dc.SetColor(hexColor("#f6f8fa"))
	dc.DrawRectangle(0, 0, r.Width, r.HeaderH)
	dc.Fill()

	r.loadFont(dc, r.FontSize+2)
	dc.SetColor(hexColor("#24292f"))
	if title == "" {
		title = "diff"
	}
	dc.DrawString(title, r.PadLeft, r.HeaderH/2-4)

	r.loadFont(dc, r.FontSize-2)
	dc.SetColor(hexColor("#57606a"))
	dc.DrawString(result.Summary(), r.PadLeft, r.HeaderH/2+14)

	dc.SetColor(hexColor("#d0d7de"))
	dc.SetLineWidth(1)
	dc.DrawLine(0, r.HeaderH, r.Width, r.HeaderH)
	dc.Stroke()
}

func (r *Renderer) drawRow(dc *gg.Context, ln differ.Line, y float64) {
	// Row tint
	switch ln.Type {
	case differ.Added:
		dc.SetColor(hexColor("#e6ffec"))
	case differ.Removed:
		dc.SetColor(hexColor("#ffebe9"))
	default:
		dc.SetColor(color.White)
	}
	dc.DrawRectangle(0, y, r.Width, r.RowHeight)
	dc.Fill()

	baseline := y + r.RowHeight/2 + r.FontSize/3

	// Gutter: left and right line numbers
	r.loadFont(dc, r.FontSize-2)
	dc.SetColor(hexColor("#8c959f"))
	if ln.LeftLine > 0 {
		num := strconv.Itoa(ln.LeftLine)
		tw, _ := dc.MeasureString(num)
		dc.DrawString(num, r.PadLeft+r.GutterW-tw, baseline)
	}
	if ln.RightLine > 0 {
		num := strconv.Itoa(ln.RightLine)
		tw, _ := dc.MeasureString(num)
		dc.DrawString(num, r.PadLeft+2*r.GutterW-tw, baseline)
	}

	// Marker and text
	r.loadFont(dc, r.FontSize)
	marker := " "
	switch ln.Type {
	case differ.Added:
		marker = "+"
		dc.SetColor(hexColor("#1a7f37"))
	case differ.Removed:
		marker = "-"
		dc.SetColor(hexColor("#cf222e"))
	default:
		dc.SetColor(hexColor("#24292f"))
	}
	textX := r.PadLeft + 2*r.GutterW + 20
	dc.DrawString(marker, textX-14, baseline)

	text := ln.Text
	if r.MaxChars > 0 && len(text) > r.MaxChars {
		text = text[:r.MaxChars] + "…"
	}
	dc.DrawString(text, textX, baseline)
}

// loadFont tries a few common monospace faces; when none is present gg
// keeps its built-in face, which is fine for small images.
func (r *Renderer) loadFont(dc *gg.Context, size float64) {
	faces := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/System/Library/Fonts/Menlo.ttc",
	}
	for _, face := range faces {
		if err := dc.LoadFontFace(face, size); err == nil {
			return
		}
	}
}

func hexColor(hex string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{r, g, b, 255}
}
