package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// Scheme selects how cell state maps to pixel color. It is fixed when the
// Painter is constructed; variants are never mixed per cell.
type Scheme int

const (
	// SchemeBinary paints live cells opaque white and dead cells
	// transparent black.
	SchemeBinary Scheme = iota
	// SchemeHeat paints live cells white and dead cells with their decaying
	// heat in the red and alpha channels, leaving a fading trail.
	SchemeHeat
	// SchemeNeighbors colors live cells by the neighbor count recorded in
	// the last update and paints dead cells transparent black.
	SchemeNeighbors
)

// ParseScheme maps a configuration name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "", "binary":
		return SchemeBinary, nil
	case "heat":
		return SchemeHeat, nil
	case "neighbors":
		return SchemeNeighbors, nil
	}
	return 0, errors.Errorf("unknown color scheme %q", name)
}

// neighborPalette indexes live-cell colors by neighbor count minus one,
// running cold to hot across the 1..8 range.
var neighborPalette = [8]color.RGBA{
	{R: 0x20, G: 0x41, B: 0x8f, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}
