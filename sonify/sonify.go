// Package sonify renders kernel signals as audio with github.com/gopxl/beep.
//
// A wave streamer listens to one terrain vertex: it plays
// wave.Height(probeX, probeZ, t·speed) normalized by the height bound. A
// noise streamer plays a noise field as 2·src.Sample(t·speed, seed) − 1.
// Both emit the same value on the left and right channel and stop after
// the requested duration. WriteWAV encodes any streamer to 16-bit stereo.
//
// Every emitted sample is in [-1, 1]; NaN is emitted as silence.
package sonify

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/katalvlaran/motionkit/noise"
	"github.com/katalvlaran/motionkit/tuning"
	"github.com/katalvlaran/motionkit/wave"
)

// DefaultSampleRate is the rate used by the preview host.
const DefaultSampleRate = beep.SampleRate(44100)

// DefaultSpeed maps one second of audio to 2π·110 seconds of animation time,
// which puts the wave's strongest partial near 220 Hz.
const DefaultSpeed = 2 * math.Pi * 110

var (
	// ErrBadRate indicates a sample rate ≤ 0.
	ErrBadRate = errors.New("sonify: sample rate must be > 0")

	// ErrBadDuration indicates a duration too short for a single sample.
	ErrBadDuration = errors.New("sonify: duration must cover at least one sample")

	// ErrBadSpeed indicates a NaN or infinite time scale.
	ErrBadSpeed = errors.New("sonify: speed must be finite")
)

// signal produces one sample for time t in seconds.
type signal func(t float64) float64

// signalStreamer is a finite beep.Streamer over a signal.
type signalStreamer struct {
	fn    signal
	rate  beep.SampleRate
	pos   int
	total int
}

// NewWaveStreamer plays the terrain height at (probeX, probeZ) for d.
func NewWaveStreamer(rate beep.SampleRate, probeX, probeZ float32, speed float64, d time.Duration) (beep.Streamer, error) {
	fn := func(t float64) float64 {
		return float64(wave.Height(probeX, probeZ, float32(t*speed))) / float64(tuning.WaveBound)
	}

	return newSignalStreamer("NewWaveStreamer", rate, speed, d, fn)
}

// NewNoiseStreamer plays the noise field of seed drawn from src for d.
// A nil src means value noise over the sine hash.
func NewNoiseStreamer(rate beep.SampleRate, src noise.Sampler, seed float32, speed float64, d time.Duration) (beep.Streamer, error) {
	if src == nil {
		src = noise.Value{}
	}
	fn := func(t float64) float64 {
		return 2*float64(src.Sample(float32(t*speed), seed)) - 1
	}

	return newSignalStreamer("NewNoiseStreamer", rate, speed, d, fn)
}

func newSignalStreamer(op string, rate beep.SampleRate, speed float64, d time.Duration, fn signal) (*signalStreamer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrBadRate)
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%s: %w", op, ErrBadSpeed)
	}
	total := rate.N(d)
	if total < 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrBadDuration)
	}

	return &signalStreamer{fn: fn, rate: rate, total: total}, nil
}

// Stream implements beep.Streamer.
func (s *signalStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		v := clamp(s.fn(float64(s.pos) / float64(s.rate)))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}

	return len(samples), true
}

// Err implements beep.Streamer.
func (s *signalStreamer) Err() error { return nil }

// Len returns the total number of samples.
func (s *signalStreamer) Len() int { return s.total }

// WriteWAV drains s into w as 16-bit stereo PCM at rate.
func WriteWAV(w io.WriteSeeker, s beep.Streamer, rate beep.SampleRate) error {
	if rate <= 0 {
		return fmt.Errorf("WriteWAV: %w", ErrBadRate)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, s, format); err != nil {
		return fmt.Errorf("WriteWAV: %w", err)
	}

	return nil
}

// clamp bounds v to [-1, 1] and maps NaN to 0.
func clamp(v float64) float64 {
	switch {
	case v != v:
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}

	return v
}
