//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pixlife/internal/life"
	"pixlife/internal/render"
)

// gridBlitter uploads painted RGBA bytes into a single ebiten image, one
// pixel per cell, and draws it scaled. The byte buffer is allocated once.
type gridBlitter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func newGridBlitter(w, h int) *gridBlitter {
	gb := &gridBlitter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gb.img = ebiten.NewImage(w, h)
	}
	return gb
}

// Blit paints the cells into the buffer, uploads it, and draws the image
// scaled onto dst.
func (gb *gridBlitter) Blit(dst *ebiten.Image, painter *render.Painter, cells []life.Cell, scale int) {
	if gb.img == nil || len(cells) != gb.w*gb.h {
		return
	}
	if err := painter.Paint(cells, gb.buf); err != nil {
		return
	}
	gb.img.WritePixels(gb.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gb.img, op)
}
