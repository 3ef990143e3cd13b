package main

import (
	"fmt"
	"math"
)

const (
	DefaultFrequency  = 770.0
	DefaultAmplitude  = 0.7
	DefaultSampleRate = 48000

	// Raised-cosine ramp at each end of a tone, to avoid clicks.
	rampTime = 0.005 // 5ms
)

// Tone describes the carrier used for the audible elements.
type Tone struct {
	Frequency  float64
	Amplitude  float64
	SampleRate int
}

func (t Tone) validate() error {
	if t.Frequency <= 0 {
		return fmt.Errorf("tone frequency %v must be positive", t.Frequency)
	}
	if t.Amplitude < 0 || t.Amplitude > 1 {
		return fmt.Errorf("tone amplitude %v must be in 0..1", t.Amplitude)
	}
	if t.SampleRate <= 0 {
		return fmt.Errorf("sample rate %v must be positive", t.SampleRate)
	}
	return nil
}

// samplesFor converts a duration in seconds to a sample count, rounded
// to nearest so the error per element stays below one sample period.
// Truncating here would accumulate and desynchronize long sequences.
func samplesFor(seconds float64, rate int) int {
	return int(math.Round(seconds * float64(rate)))
}

// Render synthesizes one element into a mono sample sequence. Silence
// kinds produce zeros of the exact length implied by their duration.
// Tones are shaped by a raised-cosine ramp at both ends; for very short
// elements the ramp shrinks to half the element so fast speeds stay
// click-free too.
func (t Tone) Render(e Element) []float64 {
	n := samplesFor(e.Duration, t.SampleRate)
	out := make([]float64, n)

	if e.Kind != ToneElement {
		return out
	}

	ramp := samplesFor(rampTime, t.SampleRate)
	if ramp > n/2 {
		ramp = n / 2
	}

	w := 2 * math.Pi * t.Frequency / float64(t.SampleRate)

	for i := range out {
		s := t.Amplitude * math.Sin(w*float64(i))

		switch {
		case i < ramp:
			s *= 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		case i >= n-ramp:
			s *= 0.5 * (1 - math.Cos(math.Pi*float64(n-1-i)/float64(ramp)))
		}

		out[i] = s
	}

	return out
}
