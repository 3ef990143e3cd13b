package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

var ErrInvalidFilter = errors.New("invalid filter config")

// FilterConfig describes a bandpass characteristic: half-power
// bandwidth centered on the carrier frequency.
type FilterConfig struct {
	Center     float64
	Bandwidth  float64
	SampleRate int
}

func (c FilterConfig) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v must be positive", ErrInvalidFilter, c.SampleRate)
	}
	if c.Center <= 0 {
		return fmt.Errorf("%w: center frequency %v must be positive", ErrInvalidFilter, c.Center)
	}
	if c.Bandwidth <= 0 {
		return fmt.Errorf("%w: bandwidth %v must be positive", ErrInvalidFilter, c.Bandwidth)
	}

	// A passband edge at or beyond Nyquist puts the poles on or outside
	// the unit circle; reject instead of producing unstable output.
	nyquist := float64(c.SampleRate) / 2
	if c.Center+c.Bandwidth/2 >= nyquist {
		return fmt.Errorf("%w: center %vHz + bandwidth/2 %vHz reaches Nyquist (%vHz)",
			ErrInvalidFilter, c.Center, c.Bandwidth/2, nyquist)
	}

	return nil
}

// Biquad bandpass filter section
type Biquad struct {
	a, b [3]float64
	x, y [2]float64
}

// newBandpassBiquad computes constant-peak-gain bandpass coefficients
// (unity gain at the center frequency).
func newBandpassBiquad(sampleRate, center, bandwidth float64) *Biquad {
	q := center / bandwidth
	omega := 2 * math.Pi * center / sampleRate
	alpha := math.Sin(omega) / (2 * q)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * math.Cos(omega)
	a2 := 1 - alpha

	return &Biquad{
		b: [3]float64{b0 / a0, b1 / a0, b2 / a0},
		a: [3]float64{1, a1 / a0, a2 / a0},
	}
}

func (f *Biquad) filter(x float64) float64 {
	y := f.b[0]*x + f.b[1]*f.x[0] + f.b[2]*f.x[1] - f.a[1]*f.y[0] - f.a[2]*f.y[1]
	f.x[1], f.x[0] = f.x[0], x
	f.y[1], f.y[0] = f.y[0], y
	return y
}

func (f *Biquad) reset() {
	f.x = [2]float64{}
	f.y = [2]float64{}
}

// Bandpass chains identical biquad sections to steepen the skirts and
// narrow the effective bandwidth. Filter memory is private to the
// instance: concurrent sessions need independent Bandpass values.
type Bandpass struct {
	stages []*Biquad
}

// bandpassStages is how many times the tone is run through the biquad.
const bandpassStages = 3

// NewBandpass validates the config eagerly and builds the cascade; no
// samples are processed for a malformed request.
func NewBandpass(cfg FilterConfig) (*Bandpass, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	stages := make([]*Biquad, bandpassStages)
	for i := range stages {
		stages[i] = newBandpassBiquad(float64(cfg.SampleRate), cfg.Center, cfg.Bandwidth)
	}

	return &Bandpass{stages: stages}, nil
}

// Reset clears the filter memory for a new stream.
func (bp *Bandpass) Reset() {
	for _, s := range bp.stages {
		s.reset()
	}
}

// Apply filters the buffer in place, sample by sample. Callers may feed
// a logical stream in chunks; state carries over between calls until
// Reset.
func (bp *Bandpass) Apply(buf *audio.FloatBuffer) {
	for i, x := range buf.Data {
		for _, s := range bp.stages {
			x = s.filter(x)
		}
		buf.Data[i] = x
	}
}
