// Package render - тонкий адаптер ядра игры к ebiten: холст, атлас, ввод, музыка.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"space-horror/internal/domain"
	"space-horror/internal/engine"
	"space-horror/internal/gfx"
)

// Fonts кэширует начертания Go Regular по размеру.
type Fonts struct {
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func NewFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load ui font: %w", err)
	}
	return &Fonts{src: src, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (f *Fonts) face(size float64) *text.GoTextFace {
	if fc, ok := f.faces[size]; ok {
		return fc
	}
	fc := &text.GoTextFace{Source: f.src, Size: size}
	f.faces[size] = fc
	return fc
}

// Canvas реализует gfx.Canvas поверх кадра ebiten.
type Canvas struct {
	dst   *ebiten.Image
	atlas *Atlas
	fonts *Fonts
}

func NewCanvas(dst *ebiten.Image, atlas *Atlas, fonts *Fonts) *Canvas {
	return &Canvas{dst: dst, atlas: atlas, fonts: fonts}
}

func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) DrawFrame(f gfx.Frame, dst domain.Rect) {
	if f.Alpha == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	img := c.atlas.Frame(f.Sheet, f.Index)
	if img == nil {
		col := placeholderColor(f.Sheet)
		col.A = f.Alpha
		c.FillRect(dst, col)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	sx, sy := dst.W/float64(b.Dx()), dst.H/float64(b.Dy())
	if f.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(b.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(dst.X, dst.Y)
	if !f.Tint.IsZero() {
		op.ColorScale.ScaleWithColor(color.RGBA{R: f.Tint.R, G: f.Tint.G, B: f.Tint.B, A: 255})
	}
	op.ColorScale.ScaleAlpha(float32(f.Alpha) / 255)
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

func (c *Canvas) DrawBackground(name string) {
	img := c.atlas.Image(name)
	if img == nil {
		engine.DrawPlaceholder(c)
		return
	}
	w, h := c.Size()
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	c.dst.DrawImage(img, op)
}

func (c *Canvas) FillRect(r domain.Rect, col gfx.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (c *Canvas) StrokeRect(r domain.Rect, col gfx.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, rgba(col), false)
}

func (c *Canvas) DrawText(s string, at domain.Vec2, style gfx.TextStyle) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	if style.Anchor == gfx.AnchorCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, c.fonts.face(style.Size), op)
}

func rgba(c gfx.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

var _ gfx.Canvas = (*Canvas)(nil)
