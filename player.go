package main

import (
	"context"

	"github.com/go-audio/audio"
)

// Player turns text into a finished, band-limited sample stream.
// Delivery to a device or file is the caller's business via a Sink.
type Player struct {
	Speed  Speed
	Tone   Tone
	Filter *Bandpass
}

// NewPlayer validates the tone and builds the bandpass for it.
func NewPlayer(speed Speed, tone Tone, bandwidth float64) (*Player, error) {
	if err := tone.validate(); err != nil {
		return nil, err
	}

	filter, err := NewBandpass(FilterConfig{
		Center:     tone.Frequency,
		Bandwidth:  bandwidth,
		SampleRate: tone.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	return &Player{Speed: speed, Tone: tone, Filter: filter}, nil
}

// Synthesize renders text to a mono FloatBuffer: element timing, tone
// synthesis, then the bandpass over the concatenated stream. The
// context is checked between elements only, never mid-waveform, so a
// cancelled synthesis still ends click-free.
func (p *Player) Synthesize(ctx context.Context, text string) (*audio.FloatBuffer, error) {
	elements, err := ElementsFor(text, p.Speed)
	if err != nil {
		return nil, err
	}

	var data []float64

	for _, e := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data = append(data, p.Tone.Render(e)...)
	}

	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: p.Tone.SampleRate},
		Data:   data,
	}

	p.Filter.Reset()
	p.Filter.Apply(buf)

	return buf, nil
}

// Play synthesizes text and hands it to the sink, with a word gap of
// trailing silence so the filter rings out and the device drains before
// the stream stops. Sink errors come back unchanged; retrying a
// partially drained device is unsafe without external coordination.
func (p *Player) Play(ctx context.Context, text string, sink Sink) error {
	buf, err := p.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	tail := samplesFor(p.Speed.WordTime(), p.Tone.SampleRate)
	buf.Data = append(buf.Data, make([]float64, tail)...)

	return sink.Write(buf)
}
