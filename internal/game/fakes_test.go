package game

import (
	"time"

	"github.com/verte-zerg/typerush/internal/model"
)

type recordingRenderer struct {
	prompt       string
	score        int
	seconds      int
	urgent       bool
	wpm          int
	level        string
	canAdvance   bool
	message      string
	inputEnabled bool
	clears       int
	dialog       *model.Dialog
}

func (r *recordingRenderer) SetPrompt(text string) { r.prompt = text }
func (r *recordingRenderer) SetScore(score int) { r.score = score }
func (r *recordingRenderer) SetWPM(wpm int) { r.wpm = wpm }
func (r *recordingRenderer) SetMessage(msg string) { r.message = msg }
func (r *recordingRenderer) SetInputEnabled(enabled bool) { r.inputEnabled = enabled }
func (r *recordingRenderer) ClearInput() { r.clears++ }
func (r *recordingRenderer) HideDialog() { r.dialog = nil }

func (r *recordingRenderer) SetTime(seconds int, urgent bool) {
	r.seconds = seconds
	r.urgent = urgent
}

func (r *recordingRenderer) SetLevel(label string, canAdvance bool) {
	r.level = label
	r.canAdvance = canAdvance
}

func (r *recordingRenderer) ShowDialog(d model.Dialog) {
	r.dialog = &d
}

type recordingTone struct {
	played []int
}

func (t *recordingTone) Play(index int) { t.played = append(t.played, index) }

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() {
	t.stopped = true
}

type fakeScheduler struct {
	timers   []*fakeTimer
	interval time.Duration
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) Timer {
	s.interval = interval
	t := &fakeTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) active() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// tick fires every running timer once, like a one-second step of wall time.
func (s *fakeScheduler) tick() {
	for _, t := range s.active() {
		t.fn()
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
