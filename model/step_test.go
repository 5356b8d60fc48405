package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

var (
	alive = Cell{Alive: true, DieTime: NeverDied}
	dead  = Cell{Alive: false, DieTime: NeverDied}
)

func gridFrom(t *testing.T, width, height int, cells map[[2]int]Cell) *Grid {
	t.Helper()
	g := mustGrid(t, width, height)
	for rc, c := range cells {
		g.set(rc[0], rc[1], c)
	}
	return g
}

func assertGrid(t *testing.T, g *Grid, want map[[2]int]Cell) {
	t.Helper()
	for row := range g.Height() {
		for col := range g.Width() {
			expected, ok := want[[2]int{row, col}]
			if !ok {
				expected = dead
			}
			if got, _ := g.Get(row, col); got != expected {
				t.Errorf("cell (%d,%d) = %+v, want %+v", row, col, got, expected)
			}
		}
	}
}

func TestCountLiveNeighborsBorderIsZero(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for i := range g.cells {
		g.cells[i] = alive
	}

	for row := range 4 {
		for col := range 4 {
			border := row == 0 || col == 0 || row == 3 || col == 3
			got := CountLiveNeighbors(g, row, col)
			if border && got != 0 {
				t.Errorf("border cell (%d,%d) neighbors = %d, want 0", row, col, got)
			}
			if !border && got != 8 {
				t.Errorf("interior cell (%d,%d) neighbors = %d, want 8", row, col, got)
			}
		}
	}
}

func TestCountLiveNeighborsOutsideGrid(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for _, rc := range [][2]int{{-1, 2}, {2, -1}, {5, 2}, {2, 5}, {9, 9}} {
		if n := CountLiveNeighbors(g, rc[0], rc[1]); n != 0 {
			t.Errorf("(%d,%d) neighbors = %d, want 0", rc[0], rc[1], n)
		}
	}
}

func TestCountLiveNeighborsNilGrid(t *testing.T) {
	if n := CountLiveNeighbors(nil, 1, 1); n != 0 {
		t.Fatalf("nil grid neighbors = %d, want 0", n)
	}
}

func TestCountLiveNeighborsIgnoresSelf(t *testing.T) {
	g := gridFrom(t, 5, 5, map[[2]int]Cell{
		{2, 2}: alive,
		{1, 1}: alive,
		{3, 2}: alive,
	})
	if n := CountLiveNeighbors(g, 2, 2); n != 2 {
		t.Fatalf("neighbors = %d, want 2", n)
	}
}

func TestStepTransitions(t *testing.T) {
	const frame = 4
	cases := []struct {
		name  string
		cells map[[2]int]Cell
		want  Cell
	}{
		{
			name:  "underpopulation",
			cells: map[[2]int]Cell{{2, 2}: alive, {1, 1}: alive},
			want:  Cell{Alive: false, DieTime: frame},
		},
		{
			name:  "survives with two keeps DieTime",
			cells: map[[2]int]Cell{{2, 2}: {Alive: true, DieTime: 0}, {1, 1}: alive, {3, 3}: alive},
			want:  Cell{Alive: true, DieTime: 0},
		},
		{
			name:  "survives with three",
			cells: map[[2]int]Cell{{2, 2}: alive, {1, 1}: alive, {1, 2}: alive, {1, 3}: alive},
			want:  alive,
		},
		{
			name: "overpopulation",
			cells: map[[2]int]Cell{
				{2, 2}: alive, {1, 1}: alive, {1, 2}: alive, {1, 3}: alive, {2, 1}: alive,
			},
			want: Cell{Alive: false, DieTime: frame},
		},
		{
			name: "birth clears DieTime",
			cells: map[[2]int]Cell{
				{2, 2}: {Alive: false, DieTime: 1}, {1, 1}: alive, {1, 2}: alive, {1, 3}: alive,
			},
			want: alive,
		},
		{
			name:  "dead without birth forgets DieTime",
			cells: map[[2]int]Cell{{2, 2}: {Alive: false, DieTime: 1}, {1, 1}: alive},
			want:  dead,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Step(gridFrom(t, 5, 5, tc.cells), frame)
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if got, _ := next.Get(2, 2); got != tc.want {
				t.Fatalf("cell (2,2) = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestStepBorderDiesAfterOneGeneration(t *testing.T) {
	g := mustGrid(t, 6, 5)
	for i := range g.cells {
		g.cells[i] = Cell{Alive: true, DieTime: 0}
	}

	next, err := Step(g, 7)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	for row := range 5 {
		for col := range 6 {
			if row != 0 && col != 0 && row != 4 && col != 5 {
				continue
			}
			if c, _ := next.Get(row, col); c != (Cell{Alive: false, DieTime: 7}) {
				t.Errorf("border cell (%d,%d) = %+v, want dead at frame 7", row, col, c)
			}
		}
	}
}

func TestStepAllDeadIsIdempotent(t *testing.T) {
	g := mustGrid(t, 7, 6)
	g.set(3, 3, Cell{Alive: false, DieTime: 2})
	g.set(0, 0, Cell{Alive: false, DieTime: 5})

	next, err := Step(g, 9)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertGrid(t, next, nil)
}

func TestStepThreeByThreeBlinkerRow(t *testing.T) {
	// Only (1,1) is interior; the two border cells see zero neighbors.
	g := gridFrom(t, 3, 3, map[[2]int]Cell{
		{1, 0}: {Alive: true, DieTime: 0},
		{1, 1}: {Alive: true, DieTime: 0},
		{1, 2}: {Alive: true, DieTime: 0},
	})

	first, err := Step(g, 0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertGrid(t, first, map[[2]int]Cell{
		{1, 0}: {Alive: false, DieTime: 0},
		{1, 1}: {Alive: true, DieTime: 0},
		{1, 2}: {Alive: false, DieTime: 0},
	})

	second, err := Step(first, 1)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertGrid(t, second, map[[2]int]Cell{
		{1, 1}: {Alive: false, DieTime: 1},
	})
}

func TestStepInteriorBlinkerOscillates(t *testing.T) {
	vertical := map[[2]int]Cell{{1, 2}: alive, {2, 2}: alive, {3, 2}: alive}

	first, err := Step(gridFrom(t, 5, 5, vertical), 0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertGrid(t, first, map[[2]int]Cell{
		{2, 1}: alive, {2, 2}: alive, {2, 3}: alive,
		{1, 2}: {Alive: false, DieTime: 0},
		{3, 2}: {Alive: false, DieTime: 0},
	})

	second, err := Step(first, 1)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertGrid(t, second, map[[2]int]Cell{
		{1, 2}: alive, {2, 2}: alive, {3, 2}: alive,
		{2, 1}: {Alive: false, DieTime: 1},
		{2, 3}: {Alive: false, DieTime: 1},
	})
}

func TestStepDoesNotModifyInput(t *testing.T) {
	g := mustGrid(t, 20, 20)
	g.SeedRandom(150, rand.New(rand.NewPCG(3, 4)))
	before := append([]Cell(nil), g.cells...)

	if _, err := Step(g, 1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	for i := range before {
		if g.cells[i] != before[i] {
			t.Fatalf("input cell %d changed from %+v to %+v", i, before[i], g.cells[i])
		}
	}
}

func TestStepDimensionMismatch(t *testing.T) {
	if _, err := Step(nil, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Step(nil) err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Step(&Grid{}, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Step(zero grid) err = %v, want ErrDimensionMismatch", err)
	}
	s := &Stepper{Workers: 4}
	if _, err := s.Step(&Grid{width: 3, height: 0}, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Stepper.Step(zero height) err = %v, want ErrDimensionMismatch", err)
	}
}

func TestStepperMatchesStep(t *testing.T) {
	pool := NewGridPool()
	steppers := map[string]*Stepper{
		"default":  {},
		"single":   {Workers: 1},
		"two":      {Workers: 2},
		"odd":      {Workers: 7},
		"more":     {Workers: 64},
		"pooled":   {Workers: 3, Pool: pool},
		"pooled-1": {Workers: 1, Pool: pool},
	}

	for name, s := range steppers {
		t.Run(name, func(t *testing.T) {
			seed := mustGrid(t, 41, 29)
			seed.SeedRandom(500, rand.New(rand.NewPCG(11, 13)))

			want, got := seed, seed
			for frame := range 25 {
				var err error
				if want, err = Step(want, frame); err != nil {
					t.Fatalf("Step: %v", err)
				}
				if got, err = s.Step(got, frame); err != nil {
					t.Fatalf("Stepper.Step: %v", err)
				}
				for i := range want.cells {
					if want.cells[i] != got.cells[i] {
						t.Fatalf("frame %d cell %d: parallel %+v, sequential %+v",
							frame, i, got.cells[i], want.cells[i])
					}
				}
			}
		})
	}
}

func TestGridPoolResetsRecycledGrid(t *testing.T) {
	pool := NewGridPool()
	g := mustGrid(t, 4, 4)
	g.set(1, 1, alive)
	pool.Put(g)

	r := pool.Get(6, 3)
	if r.Width() != 6 || r.Height() != 3 {
		t.Fatalf("recycled grid = %dx%d, want 6x3", r.Width(), r.Height())
	}
	assertGrid(t, r, nil)
}
