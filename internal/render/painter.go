//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Pseudonium/Cell-simulator/pkg/life"
)

// GridPainter maintains a single RGBA image mirroring the grid and
// implements the driver's Renderer boundary: a full snapshot on init,
// then per-cell updates for the coordinates each tick evaluated.
type GridPainter struct {
	pixels *PixelBuffer
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a size×size grid.
func NewGridPainter(size int, style Style) *GridPainter {
	return &GridPainter{
		pixels: NewPixelBuffer(size, style),
		img:    ebiten.NewImage(size, size),
	}
}

// InitGrid paints the first full-grid snapshot.
func (gp *GridPainter) InitGrid(g *life.Grid) {
	gp.pixels.Snapshot(g)
	gp.img.ReplacePixels(gp.pixels.Bytes())
}

// UpdateCells repaints the changed cells and re-uploads the image.
func (gp *GridPainter) UpdateCells(g *life.Grid, changed []life.Coordinate) {
	gp.pixels.Apply(g, changed)
	gp.img.ReplacePixels(gp.pixels.Bytes())
}

// Blit draws the painter image onto dst at the given integer scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
