package render

import (
	"github.com/pkg/errors"

	"pixlife/internal/life"
)

// ErrBufferTooSmall reports a Paint target shorter than four bytes per cell.
var ErrBufferTooSmall = errors.New("render: pixel buffer too small")

// Painter writes one RGBA pixel per cell into caller-owned byte buffers.
type Painter struct {
	scheme Scheme
}

// NewPainter returns a Painter using the given scheme.
func NewPainter(scheme Scheme) *Painter {
	return &Painter{scheme: scheme}
}

// Paint fills buf with one 4-byte RGBA value per cell, in the cells' own
// row-major order. A buffer shorter than 4*len(cells) is rejected before any
// byte is written; bytes past the painted region are left untouched. Paint
// allocates nothing.
func (p *Painter) Paint(cells []life.Cell, buf []byte) error {
	if need := 4 * len(cells); len(buf) < need {
		return errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}
	switch p.scheme {
	case SchemeHeat:
		fillHeatRGBA(buf, cells)
	case SchemeNeighbors:
		fillNeighborRGBA(buf, cells)
	default:
		fillBinaryRGBA(buf, cells)
	}
	return nil
}

// fillBinaryRGBA paints live cells white and dead cells transparent black.
func fillBinaryRGBA(buf []byte, cells []life.Cell) {
	for i, c := range cells {
		base := i * 4
		if c.Alive {
			buf[base+0] = 0xff
			buf[base+1] = 0xff
			buf[base+2] = 0xff
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

// fillHeatRGBA paints live cells white; dead cells fade out as their heat
// decays, red channel and alpha following the heat value.
func fillHeatRGBA(buf []byte, cells []life.Cell) {
	for i, c := range cells {
		base := i * 4
		if c.Alive {
			buf[base+0] = 0xff
			buf[base+1] = 0xff
			buf[base+2] = 0xff
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = c.Heat
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = c.Heat
	}
}

// fillNeighborRGBA colors live cells from the neighbor palette. A freshly
// seeded live cell can carry a zero neighbor count, so the index is clamped
// into palette range at both ends.
func fillNeighborRGBA(buf []byte, cells []life.Cell) {
	last := len(neighborPalette) - 1
	for i, c := range cells {
		base := i * 4
		if !c.Alive {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		idx := int(c.Neighbors) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > last {
			idx = last
		}
		col := neighborPalette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
