package tone

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingBackend struct {
	mu    sync.Mutex
	calls [][]int16
	err   error
	block chan struct{}
}

func (b *recordingBackend) Play(samples []int16, rate int) error {
	b.mu.Lock()
	b.calls = append(b.calls, samples)
	b.mu.Unlock()
	if b.block != nil {
		<-b.block
	}
	return b.err
}

func (b *recordingBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// closableBackend notes whether Close ran while a note was still playing.
type closableBackend struct {
	recordingBackend
	playing      atomic.Int32
	closed       int
	closedInPlay bool
	closeErr     error
}

func (b *closableBackend) Play(samples []int16, rate int) error {
	b.playing.Add(1)
	defer b.playing.Add(-1)
	return b.recordingBackend.Play(samples, rate)
}

func (b *closableBackend) Close() error {
	if b.playing.Load() != 0 {
		b.closedInPlay = true
	}
	b.closed++
	return b.closeErr
}

type panickingBackend struct{}

func (panickingBackend) Play([]int16, int) error { panic("device gone") }

func TestNoteIndexWraps(t *testing.T) {
	assert.Equal(t, 0, NoteIndex(0))
	assert.Equal(t, 9, NoteIndex(9))
	assert.Equal(t, 0, NoteIndex(10))
	assert.Equal(t, 7, NoteIndex('a')) // 97 mod 10
	assert.Equal(t, 9, NoteIndex(-1))
	assert.Equal(t, 261.63, Frequency(10))
	assert.Equal(t, 880.00, Frequency(19))
}

func TestPluckEnvelope(t *testing.T) {
	samples := Pluck(sampleRate, 440)
	require.Len(t, samples, sampleRate/2)
	assert.Equal(t, int16(0), samples[0])

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	full := float64(math.MaxInt16)
	assert.LessOrEqual(t, peak, peakGain*full+1)
	assert.Greater(t, peak, peakGain*full*0.9)

	tail := samples[len(samples)-100:]
	for _, s := range tail {
		assert.LessOrEqual(t, math.Abs(float64(s)), 0.002*math.MaxInt16)
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	backend := &recordingBackend{}
	p := NewPlayer(backend, zerolog.Nop())
	p.Play(65)
	p.Wait()
	assert.Equal(t, 0, backend.count())
	assert.False(t, p.Enabled())
}

func TestEnabledPlayerPlaysNote(t *testing.T) {
	backend := &recordingBackend{}
	p := NewPlayer(backend, zerolog.Nop())
	p.SetEnabled(true)
	p.Play(3)
	p.Play(13)
	p.Wait()
	require.Equal(t, 2, backend.count())
	assert.Equal(t, backend.calls[0], backend.calls[1], "indices 3 and 13 share a pitch")
}

func TestToggle(t *testing.T) {
	p := NewPlayer(nil, zerolog.Nop())
	assert.True(t, p.Toggle())
	assert.True(t, p.Enabled())
	assert.False(t, p.Toggle())
	assert.False(t, p.Enabled())
}

func TestBackendFailuresAreSwallowed(t *testing.T) {
	p := NewPlayer(&recordingBackend{err: errors.New("no sink")}, zerolog.Nop())
	p.SetEnabled(true)
	p.Play(1)
	p.Wait()

	p = NewPlayer(panickingBackend{}, zerolog.Nop())
	p.SetEnabled(true)
	assert.NotPanics(t, func() {
		p.Play(1)
		p.Wait()
	})
}

func TestExtraVoicesAreDropped(t *testing.T) {
	backend := &recordingBackend{block: make(chan struct{})}
	p := NewPlayer(backend, zerolog.Nop())
	p.SetEnabled(true)
	for i := 0; i < maxVoices+3; i++ {
		p.Play(i)
	}
	close(backend.block)
	p.Wait()
	assert.Equal(t, maxVoices, backend.count())
}

func TestCloseWaitsForNotesThenClosesBackend(t *testing.T) {
	block := make(chan struct{})
	backend := &closableBackend{recordingBackend: recordingBackend{block: block}}
	p := NewPlayer(backend, zerolog.Nop())
	p.SetEnabled(true)
	p.Play(1)
	require.Eventually(t, func() bool { return backend.count() == 1 }, time.Second, time.Millisecond)

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(block)
	}()
	require.NoError(t, p.Close())
	assert.Equal(t, 1, backend.closed)
	assert.False(t, backend.closedInPlay)

	p.Play(2)
	p.Wait()
	assert.Equal(t, 1, backend.count())
	assert.False(t, p.Enabled())
}

func TestCloseReportsBackendError(t *testing.T) {
	backend := &closableBackend{closeErr: errors.New("device busy")}
	p := NewPlayer(backend, zerolog.Nop())
	err := p.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")
}

func TestCloseWithoutCloserIsNoop(t *testing.T) {
	p := NewPlayer(Silent{}, zerolog.Nop())
	assert.NoError(t, p.Close())
}
