package model

import (
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows [][]uint8) *Grid {
	t.Helper()
	g, err := NewGridFromRows(rows)
	if err != nil {
		t.Fatalf("NewGridFromRows() error: %v", err)
	}
	return g
}

func assertRows(t *testing.T, g *Grid, want [][]uint8) {
	t.Helper()
	got := g.ToRows()
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("grid mismatch at row %d\ngot:\n%swant:\n%s", r, g.RenderText(), mustGrid(t, want).RenderText())
		}
	}
}

func TestStepBlinker(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})

	Step(g)
	assertRows(t, g, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	})

	Step(g)
	assertRows(t, g, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
}

func TestStepBlockIsStable(t *testing.T) {
	block := [][]uint8{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	g := mustGrid(t, block)

	e := NewEngine(nil)
	for range 3 {
		e.Step(g)
		assertRows(t, g, block)
	}
}

func TestStepFullThreeByThree(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	Step(g)
	assertRows(t, g, [][]uint8{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
}

func TestStepBorderCellsNeverChange(t *testing.T) {
	// Would be born under wraparound or an unbounded board
	g := mustGrid(t, [][]uint8{
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	})
	Step(g)
	assertRows(t, g, [][]uint8{
		{0, 1, 1, 1, 0},
		{0, 1, 1, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 1, 0, 0, 0},
		{1, 0, 0, 0, 0},
	})
}

func TestStepBorderInvariance(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {4, 1}, {3, 3}, {8, 10}, {17, 5}} {
		rows, cols := dims[0], dims[1]
		g, _ := NewEmptyGrid(rows, cols)
		Randomize(g, 0.4, int64(rows*31+cols))
		before := g.Clone()

		e := NewEngine(nil)
		for range 25 {
			e.Step(g)
		}

		for r := range rows {
			for c := range cols {
				if r != 0 && c != 0 && r != rows-1 && c != cols-1 {
					continue
				}
				got, _ := g.Get(r, c)
				want, _ := before.Get(r, c)
				if got != want {
					t.Fatalf("%dx%d: border cell (%d,%d) changed from %d to %d", rows, cols, r, c, want, got)
				}
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	g, _ := NewEmptyGrid(12, 15)
	Randomize(g, 0.35, 7)
	a, b := g.Clone(), g.Clone()

	Step(a)
	NewEngine(NewSnapshotPool()).Step(b)

	if !a.Equal(b) {
		t.Fatal("stepping identical copies produced different grids")
	}
}

func TestStepTinyGridsAreUnchanged(t *testing.T) {
	for _, rows := range [][][]uint8{
		{{1}},
		{{1, 1}, {1, 1}},
		{{1, 0, 1, 1}, {0, 1, 1, 0}},
		{{1}, {1}, {0}, {1}},
	} {
		g := mustGrid(t, rows)
		for range 5 {
			Step(g)
		}
		assertRows(t, g, rows)
	}
}

func TestStepGliderTranslates(t *testing.T) {
	g, _ := NewEmptyGrid(12, 12)
	if err := PlacePattern(g, "glider", 2, 2); err != nil {
		t.Fatalf("PlacePattern() error: %v", err)
	}
	want, _ := NewEmptyGrid(12, 12)
	_ = PlacePattern(want, "glider", 3, 3)

	e := NewEngine(nil)
	for range 4 {
		e.Step(g)
	}

	if !g.Equal(want) {
		t.Fatalf("glider did not move one cell diagonally\ngot:\n%swant:\n%s", g.RenderText(), want.RenderText())
	}
}

func TestEngineReusesSnapshotAcrossSizes(t *testing.T) {
	pool := NewSnapshotPool()
	e := NewEngine(pool)
	defer e.Release()

	small, _ := NewEmptyGrid(5, 5)
	_ = PlacePattern(small, "blinker", 2, 1)
	large, _ := NewEmptyGrid(8, 9)
	_ = PlacePattern(large, "blinker", 3, 3)

	e.Step(small)
	e.Step(large)

	if v, _ := small.Get(1, 2); v != 1 {
		t.Error("small blinker did not rotate")
	}
	if v, _ := large.Get(2, 4); v != 1 {
		t.Error("large blinker did not rotate")
	}
	if large.CountLivingCells() != 3 || small.CountLivingCells() != 3 {
		t.Errorf("populations = %d, %d, want 3, 3", small.CountLivingCells(), large.CountLivingCells())
	}
}

func TestCountNeighbors(t *testing.T) {
	cells := []uint8{
		1, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}
	if got := CountNeighbors(cells, 3, 4); got != 8 {
		t.Errorf("CountNeighbors() = %d, want 8", got)
	}
	cells[4] = 1
	if got := CountNeighbors(cells, 3, 4); got != 8 {
		t.Errorf("CountNeighbors() counts the cell itself: got %d", got)
	}
	clear(cells)
	cells[0], cells[8] = 1, 1
	if got := CountNeighbors(cells, 3, 4); got != 2 {
		t.Errorf("CountNeighbors() = %d, want 2", got)
	}
}
