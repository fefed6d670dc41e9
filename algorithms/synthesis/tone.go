package synthesis

// Component is one pure sine tone: a (frequency, amplitude) pair.
// Phase is always zero; the analysis side discards it.
type Component struct {
	Frequency float64 `json:"frequency"` // Hz
	Amplitude float64 `json:"amplitude"` // Linear amplitude, unbounded
}

// Tone generates a single sine wave of the given frequency and amplitude,
// duration seconds long at the given sample rate.
func Tone(frequency, amplitude, duration, sampleRate float64) ([]float64, error) {
	return NewSynthesizer(sampleRate).Sum(
		[]Component{{Frequency: frequency, Amplitude: amplitude}}, duration)
}
