package life

import "testing"

func TestRandomizeDeterminism(t *testing.T) {
	a := NewRandom(64, 48, 7, 9, 0.1)
	b := NewRandom(64, 48, 7, 9, 0.1)

	ca, cb := a.Cells(), b.Cells()
	if len(ca) != 64*48 || len(cb) != 64*48 {
		t.Fatalf("unexpected buffer lengths %d, %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i].Alive != cb[i].Alive {
			t.Fatalf("cell %d differs between identically seeded grids", i)
		}
	}

	c := NewRandom(64, 48, 8, 9, 0.1)
	same := true
	for i, cell := range c.Cells() {
		if cell.Alive != ca[i].Alive {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestLoneCellDies(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 2, true)
	g.Step()
	if g.At(2, 2).Alive {
		t.Fatal("cell with zero live neighbors survived")
	}
}

func TestBirthOnExactlyThreeNeighbors(t *testing.T) {
	g := New(6, 6)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(3, 1, true)

	g.Step()
	if !g.At(2, 2).Alive {
		t.Fatal("dead cell with three live neighbors was not born")
	}
	if got := g.At(2, 2).Neighbors; got != 3 {
		t.Fatalf("born cell recorded %d neighbors, expected 3", got)
	}
}

func TestBlockStillLife(t *testing.T) {
	g := New(6, 6)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.Set(p[0], p[1], true)
	}

	g.Step()

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := (x == 2 || x == 3) && (y == 2 || y == 3)
			if got := g.At(x, y).Alive; got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	g.AddBlinker(1, 2)

	g.Step()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := g.At(x, y).Alive; alive != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := g.At(x, y).Alive; alive != shouldBeAlive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBoundaryDoesNotWrap(t *testing.T) {
	// Opposite edge cells on the same row must not see each other.
	g := New(4, 3)
	g.Set(0, 1, true)
	g.Set(3, 1, true)
	g.Step()
	if got := g.At(0, 1).Neighbors; got != 0 {
		t.Fatalf("column 0 counted %d neighbors, expected 0", got)
	}
	if got := g.At(3, 1).Neighbors; got != 0 {
		t.Fatalf("column width-1 counted %d neighbors, expected 0", got)
	}

	// A vertical blinker hugging column 0 rotates inward only. With a
	// toroidal board column width-1 would see three neighbors and spawn.
	g = New(5, 5)
	for _, y := range []int{1, 2, 3} {
		g.Set(0, y, true)
	}
	g.Step()
	if !g.At(0, 2).Alive || !g.At(1, 2).Alive {
		t.Fatal("edge blinker did not rotate inward")
	}
	if g.At(4, 2).Alive {
		t.Fatal("cell at column width-1 was born from wrapped neighbors")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := New(8, 8)
	for i := 0; i < 5; i++ {
		g.Step()
		if g.Population() != 0 {
			t.Fatalf("empty grid grew cells after %d steps", i+1)
		}
	}
}

func TestZeroSizeGrid(t *testing.T) {
	g := New(0, 0)
	if len(g.Cells()) != 0 {
		t.Fatalf("expected empty buffer, got %d cells", len(g.Cells()))
	}
	g.Randomize(1, 1, 0.5)
	g.Step()
	g.StepParallel()
	if g.Population() != 0 {
		t.Fatal("zero-size grid reported live cells")
	}
}

func TestHeatResetAndDecay(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 2, true)
	if got := g.At(2, 2).Heat; got != 255 {
		t.Fatalf("live cell heat %d, expected 255", got)
	}

	g.Step()
	if got := g.At(2, 2).Heat; got != 254 {
		t.Fatalf("heat after death %d, expected 254", got)
	}
	g.Step()
	if got := g.At(2, 2).Heat; got != 253 {
		t.Fatalf("heat after second step %d, expected 253", got)
	}
}

func TestNeighborDecorationOnBlock(t *testing.T) {
	g := New(6, 6)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.Set(p[0], p[1], true)
	}
	g.Step()
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if got := g.At(p[0], p[1]).Neighbors; got != 3 {
			t.Fatalf("block cell (%d,%d) recorded %d neighbors, expected 3", p[0], p[1], got)
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := New(3, 3)
	g.Set(0, 0, true)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}} {
		if c := g.At(p[0], p[1]); c.Alive || c.Heat != 0 || c.Neighbors != 0 {
			t.Fatalf("out-of-bounds lookup (%d,%d) returned %+v, expected zero cell", p[0], p[1], c)
		}
	}
}

func TestGliderMoves(t *testing.T) {
	g := New(10, 10)
	g.AddGlider(1, 1)
	if g.Population() != 5 {
		t.Fatalf("glider seeded %d cells, expected 5", g.Population())
	}

	// After four generations a glider reappears shifted one cell
	// diagonally.
	ref := New(10, 10)
	ref.AddGlider(2, 2)
	for i := 0; i < 4; i++ {
		g.Step()
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if g.At(x, y).Alive != ref.At(x, y).Alive {
				t.Fatalf("cell (%d,%d) mismatch after four generations", x, y)
			}
		}
	}
}
