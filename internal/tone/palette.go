// Package tone plays short plucked notes for keystrokes.
package tone

// notes is an extended C major pentatonic scale in Hz.
var notes = [...]float64{261.63, 293.66, 329.63, 392.00, 440.00, 523.25, 587.33, 659.25, 783.99, 880.00}

// PaletteSize is the number of distinct pitches.
const PaletteSize = len(notes)

// NoteIndex maps any index onto the palette.
func NoteIndex(index int) int {
	n := index % PaletteSize
	if n < 0 {
		n += PaletteSize
	}
	return n
}

// Frequency returns the pitch for an index, wrapping cyclically.
func Frequency(index int) float64 {
	return notes[NoteIndex(index)]
}
