// Package game implements the word, timer and level state machine.
package game

import (
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/level"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/stats"
	"github.com/verte-zerg/typerush/internal/wordbank"
)

// State is the lifecycle phase of a game.
type State int

const (
	Idle State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	urgentSeconds  = 3
	correctMessage = "Correct!"
)

// Game owns the session and drives rounds. It is not safe for concurrent
// use; all methods must be called from the event loop goroutine.
type Game struct {
	bank     *wordbank.Bank
	gen      *generator.Generator
	renderer Renderer
	tone     TonePlayer
	sched    Scheduler
	now      func() time.Time
	log      zerolog.Logger

	state   State
	session model.Session
	prompt  string
	timer   Timer
}

// Option configures a Game.
type Option func(*Game)

// WithClock overrides the wall clock used for WPM.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.log = logger }
}

// New constructs an idle game.
func New(bank *wordbank.Bank, gen *generator.Generator, renderer Renderer, tone TonePlayer, sched Scheduler, opts ...Option) *Game {
	g := &Game{
		bank:     bank,
		gen:      gen,
		renderer: renderer,
		tone:     tone,
		sched:    sched,
		now:      time.Now,
		log:      zerolog.Nop(),
		session:  model.Session{Level: level.Min},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init draws the idle screen with the start dialog.
func (g *Game) Init() {
	g.renderer.SetInputEnabled(false)
	g.renderLevel()
	g.renderer.ShowDialog(model.Dialog{
		Kind:        model.DialogStart,
		Title:       "Typing Rush",
		Description: "Type the words before time runs out.",
		Action:      "Start",
	})
}

// Start resets the session and begins the first round.
func (g *Game) Start() {
	g.stopTimer()
	g.state = Playing
	g.session = model.Session{
		Level:     level.Min,
		StartTime: g.now(),
	}

	g.renderer.HideDialog()
	g.renderer.SetInputEnabled(true)
	g.renderer.ClearInput()
	g.renderer.SetScore(0)
	g.renderer.SetWPM(0)
	g.renderer.SetMessage("")
	g.renderLevel()

	g.log.Info().Msg("game_start")
	g.beginRound()
}

// OnInputChanged handles a change of the typed text.
func (g *Game) OnInputChanged(typed string) {
	if g.state != Playing {
		return
	}
	if typed != "" {
		last, _ := utf8.DecodeLastRuneInString(typed)
		g.tone.Play(int(last))
	}
	if typed != g.prompt {
		return
	}

	g.session.Score++
	g.session.CorrectKeystrokes += utf8.RuneCountInString(g.prompt)
	if wpm, ok := stats.WPM(g.session.CorrectKeystrokes, g.now().Sub(g.session.StartTime)); ok {
		g.session.WPM = wpm
	}
	g.log.Debug().
		Int("score", g.session.Score).
		Int("wpm", g.session.WPM).
		Int("time_left", g.session.TimeRemaining).
		Msg("match")

	g.renderer.SetMessage(correctMessage)
	g.renderer.SetScore(g.session.Score)
	g.renderer.SetWPM(g.session.WPM)
	g.renderer.ClearInput()
	g.beginRound()
}

// OnTick advances the countdown by one second. The round ends on the tick
// after the remaining time reached zero, so "0s" stays visible for one tick.
func (g *Game) OnTick() {
	if g.state != Playing {
		return
	}
	if g.session.TimeRemaining > 0 {
		g.session.TimeRemaining--
		g.renderTime()
		return
	}
	g.endGame()
}

// AdvanceLevel moves up one level. While playing, the current round is
// discarded and a fresh one starts.
func (g *Game) AdvanceLevel() {
	if g.session.Level >= level.Max {
		return
	}
	g.session.Level++
	g.renderLevel()
	g.log.Info().Int("level", g.session.Level).Msg("level_up")
	if g.state == Playing {
		g.renderer.ClearInput()
		g.beginRound()
	}
}

// State returns the lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// Snapshot returns a copy of the session. Playing mirrors State.
func (g *Game) Snapshot() model.Session {
	s := g.session
	s.Playing = g.state == Playing
	return s
}

// Prompt returns the text the player must type this round.
func (g *Game) Prompt() string {
	return g.prompt
}

func (g *Game) beginRound() {
	if g.state != Playing {
		return
	}
	entry := level.Lookup(g.session.Level)
	count := level.WordCount(g.session.Score)
	g.session.TimeRemaining = level.RoundBudget(g.session.Level, g.session.Score)
	g.prompt = g.gen.Prompt(g.bank.Words(entry.Category), count)

	g.renderTime()
	g.renderer.SetPrompt(g.prompt)

	g.stopTimer()
	g.timer = g.sched.Every(TickInterval, g.OnTick)

	g.log.Debug().
		Int("level", g.session.Level).
		Int("words", count).
		Int("budget", g.session.TimeRemaining).
		Msg("round")
}

func (g *Game) endGame() {
	g.state = GameOver
	g.stopTimer()

	final := model.FinalStats{
		Score: g.session.Score,
		WPM:   g.session.WPM,
		Level: g.session.Level,
	}
	g.renderTime()
	g.renderer.SetInputEnabled(false)
	g.renderer.ShowDialog(model.Dialog{
		Kind:        model.DialogGameOver,
		Title:       "Game Over",
		Description: "Time ran out!",
		Action:      "Try Again",
		Final:       &final,
	})
	g.log.Info().
		Int("score", final.Score).
		Int("wpm", final.WPM).
		Int("level", final.Level).
		Msg("game_over")
}

func (g *Game) stopTimer() {
	if g.timer == nil {
		return
	}
	g.timer.Stop()
	g.timer = nil
}

func (g *Game) renderTime() {
	g.renderer.SetTime(g.session.TimeRemaining, g.session.TimeRemaining <= urgentSeconds)
}

func (g *Game) renderLevel() {
	g.renderer.SetLevel(level.Label(g.session.Level), g.session.Level < level.Max)
}
