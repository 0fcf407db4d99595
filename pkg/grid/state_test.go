package grid

import "testing"

func TestNewStateAllUnvisited(t *testing.T) {
	s := NewState(3, 4)
	rows, cols := s.Dims()
	if rows != 3 || cols != 4 {
		t.Fatalf("Dims() = %d,%d, want 3,4", rows, cols)
	}
	if n := s.Count(Unvisited); n != 12 {
		t.Errorf("Count(Unvisited) = %d, want 12", n)
	}
}

func TestMarkFrontierOnlyOnce(t *testing.T) {
	s := NewState(2, 2)
	c := Coord{1, 1}

	if !s.MarkFrontier(c) {
		t.Fatal("first MarkFrontier should succeed")
	}
	if s.MarkFrontier(c) {
		t.Error("second MarkFrontier should be refused")
	}
	if s.MarkOf(c) != Frontier {
		t.Errorf("MarkOf = %v, want frontier", s.MarkOf(c))
	}
}

func TestMarkFrontierRefusesSettled(t *testing.T) {
	s := NewState(1, 1)
	s.MarkFrontier(Origin)
	s.MarkSettled(Origin)

	if s.MarkFrontier(Origin) {
		t.Error("MarkFrontier on a settled coordinate should be refused")
	}
	if s.MarkOf(Origin) != Settled {
		t.Errorf("mark regressed to %v", s.MarkOf(Origin))
	}
}

func TestMarkSettledIdempotent(t *testing.T) {
	var transitions []Transition
	s := NewState(1, 2, WithTransitions(func(tr Transition) { transitions = append(transitions, tr) }))

	s.MarkFrontier(Origin)
	s.MarkSettled(Origin)
	s.MarkSettled(Origin)

	if len(transitions) != 2 {
		t.Fatalf("got %d transitions, want 2", len(transitions))
	}
	want := []Transition{
		{Coord: Origin, From: Unvisited, To: Frontier, Seq: 1},
		{Coord: Origin, From: Frontier, To: Settled, Seq: 2},
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %+v, want %+v", i, transitions[i], want[i])
		}
	}
	if s.Transitions() != 2 {
		t.Errorf("Transitions() = %d, want 2", s.Transitions())
	}
}

func TestStateClone(t *testing.T) {
	calls := 0
	s := NewState(2, 2, WithTransitions(func(Transition) { calls++ }))
	s.MarkFrontier(Origin)

	c := s.Clone()
	c.MarkFrontier(Coord{1, 1})

	if calls != 1 {
		t.Errorf("clone should not notify the original observer, calls = %d", calls)
	}
	if s.MarkOf(Coord{1, 1}) != Unvisited {
		t.Error("clone mutation leaked into original")
	}
	if c.MarkOf(Origin) != Frontier {
		t.Error("clone lost original marks")
	}
}

func TestStateEachRowMajor(t *testing.T) {
	s := NewState(2, 3)
	s.MarkFrontier(Coord{1, 2})

	var seen []Coord
	s.Each(func(c Coord, m Mark) {
		seen = append(seen, c)
		if c == (Coord{1, 2}) && m != Frontier {
			t.Errorf("Each reported %v for (1,2), want frontier", m)
		}
	})
	if len(seen) != 6 || seen[3] != (Coord{1, 0}) {
		t.Errorf("Each order = %v", seen)
	}
}

func TestStateOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range access")
		}
	}()
	NewState(2, 2).MarkOf(Coord{2, 0})
}
