package model

import (
	"testing"

	"github.com/pkg/errors"
)

func blinkerGrid(t *testing.T) *Grid {
	t.Helper()
	g, _ := NewEmptyGrid(5, 5)
	if err := PlacePattern(g, "blinker", 2, 1); err != nil {
		t.Fatalf("PlacePattern() error: %v", err)
	}
	return g
}

func TestNewCursorValidation(t *testing.T) {
	if _, err := NewCursor(blinkerGrid(t), -1); !errors.Is(err, ErrInvalidGoal) {
		t.Errorf("negative goal error = %v, want ErrInvalidGoal", err)
	}
	if _, err := NewCursor(nil, 3); !errors.Is(err, ErrNilGrid) {
		t.Errorf("nil grid error = %v, want ErrNilGrid", err)
	}
	g := blinkerGrid(t)
	c, err := NewCursor(g, 0)
	if err != nil {
		t.Fatalf("NewCursor(goal=0) error: %v", err)
	}
	if c.Grid() != g {
		t.Error("Grid() does not return the grid the cursor drives")
	}
	if !c.Exhausted() {
		t.Error("cursor with goal 0 is not exhausted")
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() on goal 0 produced a generation")
	}
}

func TestCursorExhaustion(t *testing.T) {
	c, err := NewCursor(blinkerGrid(t), 3)
	if err != nil {
		t.Fatalf("NewCursor() error: %v", err)
	}

	for i := 1; i <= 3; i++ {
		rows, ok := c.Next()
		if !ok {
			t.Fatalf("Next() #%d reported exhaustion", i)
		}
		if len(rows) != 5 || len(rows[0]) != 5 {
			t.Fatalf("Next() #%d returned %dx%d rows", i, len(rows), len(rows[0]))
		}
		if c.Current() != i {
			t.Errorf("Current() = %d, want %d", c.Current(), i)
		}
	}

	for range 4 {
		if rows, ok := c.Next(); ok || rows != nil {
			t.Fatal("Next() after goal produced a generation")
		}
	}
	if c.Current() != 3 || c.Goal() != 3 {
		t.Errorf("Current()=%d Goal()=%d, want 3 and 3", c.Current(), c.Goal())
	}
}

func TestCursorYieldsStepsAndCopies(t *testing.T) {
	g := blinkerGrid(t)
	c, _ := NewCursor(g, 2)

	rows, _ := c.Next()
	if rows[1][2] != 1 || rows[2][1] != 0 {
		t.Fatalf("first generation is not the vertical blinker: %v", rows)
	}

	rows[1][2] = 0
	if v, _ := g.Get(1, 2); v != 1 {
		t.Error("mutating Next() result changed the grid")
	}

	rows, _ = c.Next()
	if rows[2][1] != 1 || rows[1][2] != 0 {
		t.Fatalf("second generation is not the horizontal blinker: %v", rows)
	}
}

func TestCursorReset(t *testing.T) {
	g := blinkerGrid(t)
	c, _ := NewCursor(g, 1)

	if _, ok := c.Next(); !ok {
		t.Fatal("Next() reported exhaustion")
	}
	if _, ok := c.Next(); ok {
		t.Fatal("Next() past goal produced a generation")
	}

	c.Reset()
	if c.Current() != 0 || c.Exhausted() {
		t.Fatalf("after Reset Current()=%d Exhausted()=%v", c.Current(), c.Exhausted())
	}

	// Reset continues from the grid's present state, not the original one
	rows, ok := c.Next()
	if !ok {
		t.Fatal("Next() after Reset reported exhaustion")
	}
	if rows[2][1] != 1 || rows[2][3] != 1 {
		t.Errorf("generation after Reset = %v, want horizontal blinker", rows)
	}
}

func TestCursorAll(t *testing.T) {
	c, _ := NewPooledCursor(blinkerGrid(t), 4, NewSnapshotPool())
	defer c.Close()

	var gens []int
	for gen, rows := range c.All() {
		gens = append(gens, gen)
		if len(rows) != 5 {
			t.Fatalf("generation %d has %d rows", gen, len(rows))
		}
		if gen == 2 {
			break
		}
	}
	if len(gens) != 2 || gens[0] != 1 || gens[1] != 2 {
		t.Fatalf("generations = %v, want [1 2]", gens)
	}

	remaining := 0
	for range c.All() {
		remaining++
	}
	if remaining != 2 {
		t.Errorf("remaining generations = %d, want 2", remaining)
	}
	if !c.Exhausted() {
		t.Error("cursor not exhausted after draining All()")
	}
}
