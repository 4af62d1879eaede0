package tone

import "math"

const (
	sampleRate = 44100

	noteDuration = 0.5
	attackTime   = 0.05
	peakGain     = 0.3
	floorGain    = 0.001
)

// Pluck renders a mono triangle-wave note with a short linear attack and an
// exponential decay, as signed 16-bit samples.
func Pluck(rate int, freq float64) []int16 {
	n := int(float64(rate) * noteDuration)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		s := triangle(freq*t) * envelope(t)
		samples[i] = int16(s * math.MaxInt16)
	}
	return samples
}

// triangle is a unit triangle wave over phase cycles.
func triangle(phase float64) float64 {
	_, frac := math.Modf(phase)
	return 4*math.Abs(frac-0.5) - 1
}

func envelope(t float64) float64 {
	if t < attackTime {
		return peakGain * t / attackTime
	}
	// exponential ramp from peakGain at attackTime down to floorGain at noteDuration
	progress := (t - attackTime) / (noteDuration - attackTime)
	return peakGain * math.Pow(floorGain/peakGain, progress)
}
