package render

import (
	"image/color"

	"github.com/Pseudonium/Cell-simulator/pkg/life"
)

// Style maps cell states to colours. The defaults follow the classic
// scheme: black alive cells on a white board, empty cells greyed out.
type Style struct {
	Alive color.RGBA
	Dead  color.RGBA
	Empty color.RGBA
}

// DefaultStyle returns the standard colour scheme.
func DefaultStyle() Style {
	return Style{
		Alive: color.RGBA{A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Empty: color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	}
}

// PixelBuffer holds one RGBA pixel per grid cell in row-major order. It
// supports per-coordinate updates so the painter only touches cells the
// simulation reports as changed.
type PixelBuffer struct {
	size  int
	style Style
	buf   []byte
}

// NewPixelBuffer allocates a buffer for a size×size grid.
func NewPixelBuffer(size int, style Style) *PixelBuffer {
	return &PixelBuffer{size: size, style: style, buf: make([]byte, 4*size*size)}
}

// Bytes exposes the backing RGBA pixel data.
func (p *PixelBuffer) Bytes() []byte { return p.buf }

// Size returns the side length of the buffer in cells.
func (p *PixelBuffer) Size() int { return p.size }

// SetCell paints the pixel for c according to the cell's state.
func (p *PixelBuffer) SetCell(c life.Coordinate, alive, empty bool) {
	col := p.style.Dead
	switch {
	case empty:
		col = p.style.Empty
	case alive:
		col = p.style.Alive
	}
	base := 4 * (c.Y*p.size + c.X)
	p.buf[base+0] = col.R
	p.buf[base+1] = col.G
	p.buf[base+2] = col.B
	p.buf[base+3] = col.A
}

// Snapshot repaints every cell of the grid.
func (p *PixelBuffer) Snapshot(g *life.Grid) {
	for x := 0; x < p.size; x++ {
		for y := 0; y < p.size; y++ {
			c := life.Coordinate{X: x, Y: y}
			alive, _ := g.State(c)
			p.SetCell(c, alive, g.IsEmpty(c))
		}
	}
}

// Apply repaints only the cells named in changed.
func (p *PixelBuffer) Apply(g *life.Grid, changed []life.Coordinate) {
	for _, c := range changed {
		alive, _ := g.State(c)
		p.SetCell(c, alive, g.IsEmpty(c))
	}
}
