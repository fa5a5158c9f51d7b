package sonify_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/katalvlaran/motionkit/noise"
	"github.com/katalvlaran/motionkit/sonify"
	"github.com/katalvlaran/motionkit/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(8000)

// drain reads every sample of s.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()

	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())

	return out
}

func TestWaveStreamer_LengthAndRange(t *testing.T) {
	s, err := sonify.NewWaveStreamer(testRate, 1.5, -2, sonify.DefaultSpeed, 250*time.Millisecond)
	require.NoError(t, err)

	samples := drain(t, s)
	assert.Len(t, samples, testRate.N(250*time.Millisecond))
	for i, sm := range samples {
		require.GreaterOrEqual(t, sm[0], -1.0, "sample %d", i)
		require.LessOrEqual(t, sm[0], 1.0, "sample %d", i)
		require.Equal(t, sm[0], sm[1], "mono in stereo at %d", i)
	}

	want := float64(wave.Height(1.5, -2, 0)) / 3
	assert.InDelta(t, want, samples[0][0], 1e-9)
}

func TestNoiseStreamer_Range(t *testing.T) {
	s, err := sonify.NewNoiseStreamer(testRate, nil, 7, 50, 100*time.Millisecond)
	require.NoError(t, err)

	for _, sm := range drain(t, s) {
		require.GreaterOrEqual(t, sm[0], -1.0)
		require.Less(t, sm[0], 1.0)
	}
}

func TestNoiseStreamer_Sampler(t *testing.T) {
	src := noise.NewSimplex(11)
	s, err := sonify.NewNoiseStreamer(testRate, src, 2, 50, testRate.D(16))
	require.NoError(t, err)

	samples := drain(t, s)
	require.Len(t, samples, 16)
	for i, sm := range samples {
		x := float32(float64(i) / float64(testRate) * 50)
		assert.InDelta(t, 2*float64(src.Sample(x, 2))-1, sm[0], 1e-9, "sample %d", i)
	}
}

func TestStreamer_Drained(t *testing.T) {
	s, err := sonify.NewWaveStreamer(testRate, 0, 0, 1, testRate.D(3))
	require.NoError(t, err)

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	assert.Equal(t, 3, n)
	assert.True(t, ok)

	n, ok = s.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestStreamer_Validation(t *testing.T) {
	_, err := sonify.NewWaveStreamer(0, 0, 0, 1, time.Second)
	assert.ErrorIs(t, err, sonify.ErrBadRate)

	_, err = sonify.NewNoiseStreamer(testRate, nil, 0, math.NaN(), time.Second)
	assert.ErrorIs(t, err, sonify.ErrBadSpeed)

	_, err = sonify.NewNoiseStreamer(testRate, nil, 0, 1, 0)
	assert.ErrorIs(t, err, sonify.ErrBadDuration)
}

// TestWriteWAV round-trips a short streamer through a file.
func TestWriteWAV(t *testing.T) {
	const d = 100 * time.Millisecond
	s, err := sonify.NewWaveStreamer(testRate, 0.5, 0.5, sonify.DefaultSpeed, d)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wave.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, sonify.WriteWAV(f, s, testRate))
	require.NoError(t, f.Close())

	r, err := os.Open(path)
	require.NoError(t, err)
	defer r.Close()

	dec, format, err := wav.Decode(r)
	require.NoError(t, err)
	defer dec.Close()

	assert.Equal(t, testRate, format.SampleRate)
	assert.Equal(t, 2, format.NumChannels)
	assert.Equal(t, testRate.N(d), dec.Len())

	assert.ErrorIs(t, sonify.WriteWAV(nil, s, 0), sonify.ErrBadRate)
}
