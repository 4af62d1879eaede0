//go:build darwin

package tone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

var errClosed = errors.New("audio backend closed")

type malgoBackend struct {
	once sync.Once
	ctx  *malgo.AllocatedContext
	err  error
}

func newPlatformBackend() Backend {
	return &malgoBackend{}
}

func (b *malgoBackend) init() {
	b.ctx, b.err = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
}

// Close releases the audio context. No Play may be running.
func (b *malgoBackend) Close() error {
	// Consume the once so a late Play cannot create a context after Close.
	b.once.Do(func() {})
	b.err = errClosed
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Uninit()
	b.ctx.Free()
	b.ctx = nil
	if err != nil {
		return fmt.Errorf("malgo uninit: %w", err)
	}
	return nil
}

func (b *malgoBackend) Play(samples []int16, rate int) error {
	if len(samples) == 0 {
		return nil
	}
	b.once.Do(b.init)
	if b.err != nil {
		return fmt.Errorf("malgo context: %w", b.err)
	}

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = uint32(rate)

	// pos is only touched by the device callback.
	pos := 0
	done := make(chan struct{})
	var finish sync.Once
	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, _ []byte, _ uint32) {
			n := copy(pOutput, buf[pos:])
			pos += n
			for i := n; i < len(pOutput); i++ {
				pOutput[i] = 0
			}
			if pos >= len(buf) {
				finish.Do(func() { close(done) })
			}
		},
	}
	device, err := malgo.InitDevice(b.ctx.Context, config, callbacks)
	if err != nil {
		return fmt.Errorf("malgo device: %w", err)
	}
	defer device.Uninit()
	if err := device.Start(); err != nil {
		return fmt.Errorf("malgo start: %w", err)
	}

	length := time.Duration(float64(len(samples)) / float64(rate) * float64(time.Second))
	select {
	case <-done:
	case <-time.After(length + 500*time.Millisecond):
	}
	if err := device.Stop(); err != nil {
		return fmt.Errorf("malgo stop: %w", err)
	}
	return nil
}
