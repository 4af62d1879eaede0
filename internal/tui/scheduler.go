package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typerush/internal/game"
)

type tickMsg struct {
	id int
}

// tickScheduler drives game timers with tea.Tick. Each timer gets an id;
// ticks carrying any id but the active one are dropped, so a replaced
// timer never fires again.
type tickScheduler struct {
	nextID   int
	activeID int
	interval time.Duration
	fn       func()
	pending  []tea.Cmd
}

type tickTimer struct {
	s  *tickScheduler
	id int
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{}
}

// Every implements game.Scheduler.
func (s *tickScheduler) Every(interval time.Duration, fn func()) game.Timer {
	s.nextID++
	s.activeID = s.nextID
	s.interval = interval
	s.fn = fn
	s.pending = append(s.pending, tickCmd(s.activeID, interval))
	return &tickTimer{s: s, id: s.activeID}
}

// Stop implements game.Timer.
func (t *tickTimer) Stop() {
	if t.s.activeID != t.id {
		return
	}
	t.s.activeID = 0
	t.s.fn = nil
}

func (s *tickScheduler) handle(msg tickMsg) tea.Cmd {
	if msg.id == 0 || msg.id != s.activeID || s.fn == nil {
		return nil
	}
	s.fn()
	if msg.id != s.activeID {
		return nil
	}
	return tickCmd(msg.id, s.interval)
}

// flush returns the commands for timers started since the last flush.
func (s *tickScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
