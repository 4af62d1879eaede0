//go:build !linux && !darwin

package tone

// No audio playback on other platforms - tones are silent.
func newPlatformBackend() Backend {
	return Silent{}
}
