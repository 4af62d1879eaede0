package game

import (
	"time"

	"github.com/verte-zerg/typerush/internal/model"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Renderer reflects game output on screen.
type Renderer interface {
	SetPrompt(text string)
	SetScore(score int)
	SetTime(seconds int, urgent bool)
	SetWPM(wpm int)
	SetLevel(label string, canAdvance bool)
	SetMessage(msg string)
	SetInputEnabled(enabled bool)
	ClearInput()
	ShowDialog(d model.Dialog)
	HideDialog()
}

// TonePlayer sounds a note for a keystroke. Implementations must not block
// and must swallow their own failures.
type TonePlayer interface {
	Play(index int)
}

// Timer is a handle to a running repeating schedule.
type Timer interface {
	Stop()
}

// Scheduler starts repeating callbacks. Callbacks must be delivered on the
// same goroutine that drives the Game.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}
