package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Iron-Ham/tripbook/internal/util"
	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster geometry for basicfont.Face7x13.
const (
	cellWidth  = 7
	lineHeight = 15
	ascent     = 11
	margin     = 16
	// rasterScale enlarges the capture so text stays legible once the
	// image is fitted to the page width.
	rasterScale = 2
)

// A4 portrait page size in millimetres.
const (
	a4Width  = 210.0
	a4Height = 297.0
)

var (
	paper = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ink   = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
)

// boxDrawing maps the glyphs our views use onto printable ASCII, the only
// range basicfont.Face7x13 draws.
var boxDrawing = strings.NewReplacer(
	"█", "#", "░", ".",
	"─", "-", "━", "-", "│", "|", "┃", "|",
	"╭", "+", "╮", "+", "╰", "+", "╯", "+",
	"┌", "+", "┐", "+", "└", "+", "┘", "+",
	"•", "*", "●", "o", "★", "*", "→", ">", "←", "<", "✓", "v", "…", "...",
	"·", "-", "°", "",
)

// Rasterize draws the rendered view, with styling removed, onto an image
// sized to its widest line. Lines past what one A4 page holds at that width
// are not drawn; clipped reports how many were dropped. An empty view still
// yields a margin-sized canvas.
func Rasterize(rendered string) (img image.Image, clipped int) {
	lines := strings.Split(boxDrawing.Replace(util.StripANSI(rendered)), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	cols := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > cols {
			cols = n
		}
	}

	width := 2*margin + cols*cellWidth
	if rows := pageRows(width); len(lines) > rows {
		clipped = len(lines) - rows
		lines = lines[:rows]
	}
	height := 2*margin + len(lines)*lineHeight
	canvas := imaging.New(width, height, paper)

	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(margin, margin+ascent+i*lineHeight)
		d.DrawString(line)
	}

	return imaging.Resize(canvas, width*rasterScale, 0, imaging.NearestNeighbor), clipped
}

// pageRows returns how many text lines fit on one A4 page when a canvas
// of pxWidth pixels is fitted to the page width. At least one line always
// fits.
func pageRows(pxWidth int) int {
	pageHeight := float64(pxWidth) * a4Height / a4Width
	rows := int((pageHeight - 2*margin) / lineHeight)
	return max(rows, 1)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePDF writes a one-page A4 portrait PDF with img at full page width
// and its aspect ratio preserved. Content taller than the page is clipped
// rather than continued on further pages.
func WritePDF(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("write pdf: empty image")
	}

	var png bytes.Buffer
	if err := EncodePNG(&png, img); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgWidth, imgHeight, _ := PageFit(bounds.Dx(), bounds.Dy())

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("view", opts, &png)
	pdf.ImageOptions("view", 0, 0, imgWidth, imgHeight, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// PageFit returns the placed image size in millimetres for an image of
// the given pixel size on an A4 portrait page, and whether it overflows
// the page height.
func PageFit(pxWidth, pxHeight int) (width, height float64, overflow bool) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return 0, 0, false
	}
	width = a4Width
	height = a4Width * float64(pxHeight) / float64(pxWidth)
	return width, height, height > a4Height
}
