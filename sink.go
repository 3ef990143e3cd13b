package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
)

// Sink consumes a finished sample stream. Writing is the only blocking
// step of the pipeline and belongs entirely to the sink.
type Sink interface {
	Write(buf *audio.FloatBuffer) error
	Close() error
}

// ListAudioDevices returns the names of the available output devices.
func ListAudioDevices() ([]string, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	var list []string

	for _, d := range devices {
		if d.MaxOutputChannels == 0 { // input
			continue
		}

		list = append(list, fmt.Sprintf("%v (out:%v)", d.Name, d.MaxOutputChannels))
	}

	return list, nil
}

func findOutputDevice(dev string) (*portaudio.DeviceInfo, error) {
	if dev == "" {
		return portaudio.DefaultOutputDevice()
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	i, err := strconv.Atoi(dev)
	if err == nil && i > 0 && i <= len(devices) {
		return devices[i-1], nil
	}

	for _, d := range devices {
		if strings.HasPrefix(d.Name, dev) {
			return d, nil
		}
	}

	return nil, fmt.Errorf("device not found: %s", dev)
}

// AudioWriter plays sample streams on a portaudio output device.
type AudioWriter struct {
	stream       *portaudio.Stream
	streamBuffer audio.Float32Buffer
}

// NewAudioWriter opens an output stream on the named device (by index
// or name prefix; empty means the default output). The caller owns
// portaudio.Initialize/Terminate.
func NewAudioWriter(dev string, sampleRate int) (*AudioWriter, error) {
	info, err := findOutputDevice(dev)
	if err != nil {
		return nil, err
	}

	const numChannels = 1

	p := portaudio.HighLatencyParameters(nil, info)
	p.Input.Channels = 0
	p.Output.Channels = numChannels
	p.SampleRate = float64(sampleRate)
	p.FramesPerBuffer = sampleRate / 10 // 100ms

	buf32 := audio.Float32Buffer{
		Format: &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:   make([]float32, p.FramesPerBuffer),
	}

	stream, err := portaudio.OpenStream(p, buf32.Data)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("start output: %w", err)
	}

	return &AudioWriter{
		stream:       stream,
		streamBuffer: buf32,
	}, nil
}

// Write blocks until the whole buffer has been handed to the device,
// one stream buffer at a time. The last chunk is zero padded.
func (w *AudioWriter) Write(b *audio.FloatBuffer) error {
	buf32 := b.AsFloat32Buffer()
	chunk := len(w.streamBuffer.Data)

	for off := 0; off < len(buf32.Data); off += chunk {
		end := off + chunk
		if end > len(buf32.Data) {
			end = len(buf32.Data)
		}

		n := copy(w.streamBuffer.Data, buf32.Data[off:end])
		for i := n; i < chunk; i++ {
			w.streamBuffer.Data[i] = 0
		}

		if err := w.stream.Write(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

func (w *AudioWriter) Close() error {
	if w.stream == nil {
		return nil
	}

	if err := w.stream.Stop(); err != nil {
		return err
	}

	err := w.stream.Close()
	w.stream = nil
	return err
}

// WavWriter saves sample streams as a 16-bit mono PCM WAV file, so any
// external audio software can play the result.
type WavWriter struct {
	enc *wav.Encoder
}

func NewWavWriter(w io.WriteSeeker, sampleRate int) *WavWriter {
	return &WavWriter{
		enc: wav.NewEncoder(w, sampleRate, 16, 1, 1),
	}
}

func (w *WavWriter) Write(b *audio.FloatBuffer) error {
	// PCMScale modifies in place; keep the caller's buffer intact.
	pcm := &audio.FloatBuffer{
		Format: b.Format,
		Data:   append([]float64(nil), b.Data...),
	}

	if err := transforms.PCMScale(pcm, 16); err != nil {
		return fmt.Errorf("scale to pcm: %w", err)
	}

	ib := pcm.AsIntBuffer()
	ib.SourceBitDepth = 16

	if err := w.enc.Write(ib); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	return nil
}

func (w *WavWriter) Close() error {
	return w.enc.Close()
}
