package tone

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// maxVoices bounds how many notes may sound at once; extra notes are dropped.
const maxVoices = 4

// Player plays palette notes on a backend without blocking the caller.
type Player struct {
	backend Backend
	log     zerolog.Logger
	voices  *semaphore.Weighted
	enabled atomic.Bool

	renderOnce sync.Once
	rendered   [PaletteSize][]int16

	wg sync.WaitGroup
}

// NewPlayer returns a disabled Player.
func NewPlayer(backend Backend, logger zerolog.Logger) *Player {
	if backend == nil {
		backend = Silent{}
	}
	return &Player{
		backend: backend,
		log:     logger,
		voices:  semaphore.NewWeighted(maxVoices),
	}
}

// SetEnabled turns sound on or off.
func (p *Player) SetEnabled(on bool) {
	p.enabled.Store(on)
}

// Toggle flips the sound flag and returns the new value.
func (p *Player) Toggle() bool {
	for {
		old := p.enabled.Load()
		if p.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Enabled reports whether sound is on.
func (p *Player) Enabled() bool {
	return p.enabled.Load()
}

// Play sounds the note for index. It returns immediately.
func (p *Player) Play(index int) {
	if !p.enabled.Load() {
		return
	}
	if !p.voices.TryAcquire(1) {
		return
	}
	p.renderOnce.Do(p.render)
	samples := p.rendered[NoteIndex(index)]

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.voices.Release(1)
		if err := p.playSafe(samples); err != nil {
			p.log.Warn().Err(err).Int("note", NoteIndex(index)).Msg("tone playback failed")
		}
	}()
}

// Wait blocks until all started notes have finished.
func (p *Player) Wait() {
	p.wg.Wait()
}

// Close disables sound, waits for started notes and releases the backend.
// The Player must not be used afterwards.
func (p *Player) Close() error {
	p.SetEnabled(false)
	p.Wait()
	if c, ok := p.backend.(closingBackend); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close audio backend: %w", err)
		}
	}
	return nil
}

func (p *Player) playSafe(samples []int16) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio backend panic: %v", r)
		}
	}()
	return p.backend.Play(samples, sampleRate)
}

func (p *Player) render() {
	for i, freq := range notes {
		p.rendered[i] = Pluck(sampleRate, freq)
	}
}
