//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"pixlife/internal/config"
	"pixlife/internal/life"
	"pixlife/internal/render"
)

// Run reports that the windowed build requires the ebiten build tag. The
// tui and run commands stay available in headless builds.
func Run(*life.Grid, *render.Painter, config.Config) error {
	return errors.New("the GUI requires the ebiten build tag; rebuild with -tags ebiten or use the tui/run commands")
}
