package gingerbread

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ErrExportUnavailable is returned when the house is not finished yet.
var ErrExportUnavailable = errors.New("gingerbread: house is not finished")

// Proportions of the rendered image relative to one cell (80 px by default).
const (
	shapeHalf = 30.0 / 80 // Half side of squares and triangles, circle radius
	iconSize  = 36.0 / 80 // Icon font size
	circleK   = 0.5522847 // Cubic Bezier handle length for a quarter circle
)

var (
	background = color.RGBA{0xfe, 0xf2, 0xf2, 0xff}
	fills      = map[ShapeColor]color.RGBA{
		Red:   {0xef, 0x44, 0x44, 0xff},
		Green: {0x22, 0xc5, 0x5e, 0xff},
		Gold:  {0xea, 0xb3, 0x08, 0xff},
	}
	exportGlyphs = map[Icon]string{
		Window: "□",
		Door:   "▬",
	}
)

var iconFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// CanExport reports whether every piece has been placed.
func (g *Game) CanExport() bool {
	return g.remaining == 0
}

// ExportName returns the file name for the exported image.
func (g *Game) ExportName() string {
	return fmt.Sprintf("gingerbread-house-%s.png", g.now().Format("20060102-150405"))
}

// ExportDir returns the configured directory for exported images.
func (g *Game) ExportDir() string {
	return g.cfg.Export.Dir
}

// Export writes the finished house as a PNG image.
func (g *Game) Export(w io.Writer) error {
	if !g.CanExport() {
		return ErrExportUnavailable
	}
	img, err := RenderImage(g.grid, g.cfg.Export.CellPixels)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("gingerbread: encode png: %w", err)
	}
	return nil
}

// RenderImage rasterizes a board: one cell x cell square per grid slot on a
// pale background, each piece centred in its slot.
func RenderImage(grid [][]*Shape, cell int) (*image.RGBA, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	w, h := cols*cell, rows*cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return img, nil
	}

	var face font.Face
	defer func() {
		if face != nil {
			face.Close()
		}
	}()

	r := vector.NewRasterizer(w, h)
	half := float32(shapeHalf * float64(cell))
	for row, line := range grid {
		for col, s := range line {
			if s == nil {
				continue
			}
			cx := float32(col*cell + cell/2)
			cy := float32(row*cell + cell/2)

			r.Reset(w, h)
			r.DrawOp = draw.Over
			tracePiece(r, s.Type, cx, cy, half)
			r.Draw(img, img.Bounds(), image.NewUniform(fills[s.Color]), image.Point{})

			glyph, ok := exportGlyphs[s.Icon]
			if !ok {
				continue
			}
			if face == nil {
				f, err := newIconFace(cell)
				if err != nil {
					return nil, err
				}
				face = f
			}
			drawCentered(img, face, glyph, int(cx), int(cy))
		}
	}
	return img, nil
}

func tracePiece(r *vector.Rasterizer, t ShapeType, cx, cy, half float32) {
	switch t {
	case Triangle:
		r.MoveTo(cx, cy-half)
		r.LineTo(cx+half, cy+half)
		r.LineTo(cx-half, cy+half)
		r.ClosePath()
	case Circle:
		k := half * circleK
		r.MoveTo(cx+half, cy)
		r.CubeTo(cx+half, cy+k, cx+k, cy+half, cx, cy+half)
		r.CubeTo(cx-k, cy+half, cx-half, cy+k, cx-half, cy)
		r.CubeTo(cx-half, cy-k, cx-k, cy-half, cx, cy-half)
		r.CubeTo(cx+k, cy-half, cx+half, cy-k, cx+half, cy)
		r.ClosePath()
	default:
		r.MoveTo(cx-half, cy-half)
		r.LineTo(cx+half, cy-half)
		r.LineTo(cx+half, cy+half)
		r.LineTo(cx-half, cy+half)
		r.ClosePath()
	}
}

func newIconFace(cell int) (font.Face, error) {
	f, err := iconFont()
	if err != nil {
		return nil, fmt.Errorf("gingerbread: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    iconSize * float64(cell),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gingerbread: create font face: %w", err)
	}
	return face, nil
}

// drawCentered draws text in black with its box centred on (cx, cy).
func drawCentered(dst draw.Image, face font.Face, text string, cx, cy int) {
	d := font.Drawer{Dst: dst, Src: image.Black, Face: face}
	m := face.Metrics()
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - width/2,
		Y: fixed.I(cy) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)
}
