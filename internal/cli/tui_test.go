package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

func recordedResult(t *testing.T, rows ...string) *pipeline.Result {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() error: %v", err)
	}
	runner := pipeline.NewRunner(nil, nil, nil, newLogger(&bytes.Buffer{}, LogInfo))
	res, err := runner.Execute(context.Background(), pipeline.Options{
		Grid:    g,
		Formats: []string{"text"},
		Record:  true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	return res
}

func press(m ReplayModel, key string) (ReplayModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(ReplayModel), cmd
}

func tick(m ReplayModel) (ReplayModel, tea.Cmd) {
	next, cmd := m.Update(replayTickMsg{})
	return next.(ReplayModel), cmd
}

func TestReplayPlaysToFinalState(t *testing.T) {
	res := recordedResult(t, "..X", "##.")
	m := NewReplayModel(res, time.Millisecond)

	if m.phase != phaseWaiting {
		t.Fatalf("phase = %v, want waiting", m.phase)
	}
	if !strings.Contains(m.View(), "press any key to start") {
		t.Errorf("View() should prompt to start:\n%s", m.View())
	}

	m, cmd := press(m, "x")
	if m.phase != phasePlaying || cmd == nil {
		t.Fatalf("after key: phase = %v, cmd nil = %v", m.phase, cmd == nil)
	}
	for i := 0; m.phase == phasePlaying && i < 100; i++ {
		m, _ = tick(m)
	}
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want done", m.phase)
	}

	want := res.Runs[0].Snapshot.State
	if got := m.state.Marks(); !equalMarks(got, want.Marks()) {
		t.Errorf("replayed marks = %v, want %v", got, want.Marks())
	}
	if !strings.Contains(m.View(), "solved!") {
		t.Errorf("View() should show the outcome:\n%s", m.View())
	}
}

func TestReplaySkipAndAdvance(t *testing.T) {
	res := recordedResult(t, "...", "..X")
	if len(res.Runs) != 2 {
		t.Fatalf("len(Runs) = %d, want 2", len(res.Runs))
	}
	m := NewReplayModel(res, time.Millisecond)

	m, _ = press(m, "x")
	m, _ = press(m, " ")
	if m.phase != phaseDone || m.applied != len(res.Runs[0].Transitions) {
		t.Fatalf("space should finish the run: phase = %v, applied = %d", m.phase, m.applied)
	}

	m, _ = press(m, "x")
	if m.current != 1 || m.phase != phaseWaiting || m.applied != 0 {
		t.Fatalf("should move to the next run: current = %d, phase = %v", m.current, m.phase)
	}
	if m.state.Transitions() != 0 {
		t.Error("next run should start from a fresh state")
	}

	m, _ = press(m, "x")
	m, _ = press(m, " ")
	_, cmd := press(m, "x")
	if cmd == nil {
		t.Error("finishing the last run should quit")
	}
}

func TestReplayQuit(t *testing.T) {
	m := NewReplayModel(recordedResult(t, "..X"), 0)
	if m.delay != defaultReplayDelay {
		t.Errorf("delay = %v, want %v", m.delay, defaultReplayDelay)
	}
	m, cmd := press(m, "q")
	if !m.quit || cmd == nil {
		t.Error("q should quit")
	}
}

func TestReplayStepsPerTick(t *testing.T) {
	m := ReplayModel{runs: []pipeline.Run{{Transitions: make([]grid.Transition, 3000)}}}
	if got := m.stepsPerTick(); got != 5 {
		t.Errorf("stepsPerTick() = %d, want 5", got)
	}
	m.runs[0].Transitions = m.runs[0].Transitions[:10]
	if got := m.stepsPerTick(); got != 1 {
		t.Errorf("stepsPerTick() = %d, want 1", got)
	}
}

func equalMarks(a, b []grid.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
