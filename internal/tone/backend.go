package tone

import "io"

// Backend sends mono samples to an audio device. Play may block until the
// samples are drained.
type Backend interface {
	Play(samples []int16, rate int) error
}

// closingBackend is a Backend that holds device resources until closed.
type closingBackend interface {
	Backend
	io.Closer
}

// Silent discards all samples.
type Silent struct{}

// Play implements Backend.
func (Silent) Play([]int16, int) error { return nil }

// NewBackend returns the audio backend for this platform.
func NewBackend() Backend {
	return newPlatformBackend()
}
