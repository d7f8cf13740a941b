package life

// Set marks the cell at (x, y); out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	c := &g.cur[y*g.w+x]
	c.Alive = alive
	if alive {
		c.Heat = maxHeat
	}
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Cell{}
	}
	for i := range g.nxt {
		g.nxt[i] = Cell{}
	}
	g.gen = 0
}

// AddGlider stamps the classic glider with its bounding box anchored at
// (x, y).
func (g *Grid) AddGlider(x, y int) {
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.Set(x+p[0], y+p[1], true)
	}
}

// AddBlinker stamps a horizontal three-cell blinker starting at (x, y).
func (g *Grid) AddBlinker(x, y int) {
	for dx := 0; dx < 3; dx++ {
		g.Set(x+dx, y, true)
	}
}
