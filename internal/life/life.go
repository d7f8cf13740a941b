package life

// Cell is the atomic unit of simulation state. Alive is derived only from the
// previous generation's neighborhood (or from initialization); Heat and
// Neighbors are decoration carried for color lookup.
type Cell struct {
	Alive     bool
	Heat      uint8
	Neighbors uint8
}

const (
	// maxHeat is assigned whenever a cell is alive in the new generation.
	maxHeat = 255
	// heatDecay is subtracted from a dead cell's heat each generation,
	// flooring at zero.
	heatDecay = 1
)

// Grid implements Conway's Game of Life on a bounded board. Cells outside the
// board are dead; the grid does not wrap. Two equally sized row-major buffers
// alternate roles each generation.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	gen  uint64
}

// New returns a Grid of the given dimensions with every cell dead. Zero
// dimensions yield an empty grid whose steps are no-ops.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]Cell, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]Cell, len(cells))}
}

// NewRandom returns a grid randomized with the given seed pair and density.
func NewRandom(w, h int, seed, stream uint64, density float64) *Grid {
	g := New(w, h)
	g.Randomize(seed, stream, density)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the current generation, row-major, for read-only use during
// painting. Callers must not retain the slice across a Step.
func (g *Grid) Cells() []Cell { return g.cur }

// Generation returns the number of steps taken since the last reset.
func (g *Grid) Generation() uint64 { return g.gen }

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cur {
		if g.cur[i].Alive {
			n++
		}
	}
	return n
}

// Randomize reseeds the board: one draw per cell in row-major order, alive
// iff the draw lands in the top density fraction of [0,1). Equal seed pairs
// produce bit-identical boards.
func (g *Grid) Randomize(seed, stream uint64, density float64) {
	rng := NewRNG(seed, stream)
	for i := range g.cur {
		c := Cell{}
		if rng.Float64() > 1-density {
			c.Alive = true
			c.Heat = maxHeat
		}
		g.cur[i] = c
		g.nxt[i] = Cell{}
	}
	g.gen = 0
}

// At returns the cell at (x, y), or a dead zero cell when the coordinates
// fall outside the board. Both axes are guarded independently; checking only
// the flat index would alias edge lookups into the neighboring row.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Cell{}
	}
	return g.cur[y*g.w+x]
}

// liveNeighbors counts live cells among the 8 neighbors of (x, y).
func (g *Grid) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy).Alive {
				n++
			}
		}
	}
	return n
}

// nextCell applies B3/S23 to the cell at (x, y) and recomputes its
// decoration fields.
func (g *Grid) nextCell(x, y int) Cell {
	n := g.liveNeighbors(x, y)
	prev := g.cur[y*g.w+x]
	c := Cell{Neighbors: uint8(n)}
	if (prev.Alive && (n == 2 || n == 3)) || (!prev.Alive && n == 3) {
		c.Alive = true
		c.Heat = maxHeat
		return c
	}
	if prev.Heat > heatDecay {
		c.Heat = prev.Heat - heatDecay
	}
	return c
}

// stepRows writes rows [y0, y1) of the next generation into the scratch
// buffer. Reads only ever touch the current buffer.
func (g *Grid) stepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			g.nxt[y*g.w+x] = g.nextCell(x, y)
		}
	}
}

// swap makes the freshly written scratch buffer current. The previous
// generation's buffer becomes the next scratch target; nothing is copied.
func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Step advances the simulation by one generation.
func (g *Grid) Step() {
	g.stepRows(0, g.h)
	g.swap()
}
