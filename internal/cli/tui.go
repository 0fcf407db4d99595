package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
	"github.com/matzehuels/mazewalk/pkg/render/ascii"
)

const (
	defaultReplayDelay = 10 * time.Millisecond
	// maxReplayTicks bounds how many frames one replay takes; larger runs
	// apply several transitions per frame.
	maxReplayTicks = 600
)

var (
	replayHintStyle = lipgloss.NewStyle().Foreground(colorDim)
	replayBarStyle  = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// ReplayModel - step-by-step playback of recorded runs
// =============================================================================

type replayPhase int

const (
	phaseWaiting replayPhase = iota
	phasePlaying
	phaseDone
)

type replayTickMsg struct{}

// ReplayModel is the bubbletea model that replays the recorded transitions
// of each run over its maze.
type ReplayModel struct {
	maze  grid.View
	runs  []pipeline.Run
	delay time.Duration

	current int
	state   *grid.State
	applied int
	phase   replayPhase
	quit    bool
}

// NewReplayModel creates a replay of the runs in res.
func NewReplayModel(res *pipeline.Result, delay time.Duration) ReplayModel {
	if delay <= 0 {
		delay = defaultReplayDelay
	}
	m := ReplayModel{maze: res.Maze, runs: res.Runs, delay: delay}
	m.reset()
	return m
}

func (m *ReplayModel) reset() {
	rows, cols := m.maze.Dims()
	m.state = grid.NewState(rows, cols)
	m.applied = 0
	m.phase = phaseWaiting
}

func (m ReplayModel) run() pipeline.Run { return m.runs[m.current] }

func (m ReplayModel) transitions() []grid.Transition { return m.run().Transitions }

// stepsPerTick is how many transitions one frame applies.
func (m ReplayModel) stepsPerTick() int {
	return max(1, len(m.transitions())/maxReplayTicks)
}

func (m ReplayModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return replayTickMsg{} })
}

// advance applies up to n transitions and reports whether any remain.
func (m *ReplayModel) advance(n int) bool {
	ts := m.transitions()
	for ; n > 0 && m.applied < len(ts); n-- {
		t := ts[m.applied]
		switch t.To {
		case grid.Frontier:
			m.state.MarkFrontier(t.Coord)
		case grid.Settled:
			m.state.MarkSettled(t.Coord)
		}
		m.applied++
	}
	return m.applied < len(ts)
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.runs) == 0 {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseWaiting:
			m.phase = phasePlaying
			return m, m.tick()
		case phasePlaying:
			if msg.String() == " " {
				m.advance(len(m.transitions()))
				m.phase = phaseDone
			}
		case phaseDone:
			if m.current+1 >= len(m.runs) {
				return m, tea.Quit
			}
			m.current++
			m.reset()
		}
	case replayTickMsg:
		if m.phase != phasePlaying {
			return m, nil
		}
		if m.advance(m.stepsPerTick()) {
			return m, m.tick()
		}
		m.phase = phaseDone
	}
	return m, nil
}

func (m ReplayModel) View() string {
	if len(m.runs) == 0 {
		return ""
	}
	run := m.run()
	strategy := run.Search.Strategy.String()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Replay %s", strategy)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  run %d of %d", m.current+1, len(m.runs))))
	b.WriteString("\n\n")
	b.WriteString(ascii.ANSI(m.maze, m.state))
	b.WriteString("\n")

	switch m.phase {
	case phaseWaiting:
		b.WriteString(replayHintStyle.Render("press any key to start  q quit"))
	case phasePlaying:
		b.WriteString(replayBarStyle.Render(fmt.Sprintf("step %d/%d", m.applied, len(m.transitions()))))
		b.WriteString(replayHintStyle.Render("  space skip  q quit"))
	case phaseDone:
		b.WriteString(renderOutcome(strategy, run.Search.Found))
		b.WriteString("\n")
		b.WriteString(replayHintStyle.Render("press any key to continue"))
	}
	b.WriteString("\n")
	return b.String()
}

// runReplay plays back every run of res in the terminal.
func (c *CLI) runReplay(ctx context.Context, res *pipeline.Result, delay time.Duration) error {
	if len(res.Runs) == 0 {
		return nil
	}
	p := tea.NewProgram(NewReplayModel(res, delay), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if m, ok := final.(ReplayModel); ok && m.quit {
		c.Logger.Debug("replay stopped early")
	}
	return nil
}
