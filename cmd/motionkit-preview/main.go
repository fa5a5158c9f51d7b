// Command motionkit-preview animates the motion kernels in a terminal: the
// wave terrain seen from above, the spiral particles over it, and a HUD.
// With -wav it instead renders a probe of the wave (or the noise) as audio.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/katalvlaran/motionkit/fidelity"
	"github.com/katalvlaran/motionkit/field"
	"github.com/katalvlaran/motionkit/kernel"
	"github.com/katalvlaran/motionkit/noise"
	"github.com/katalvlaran/motionkit/sonify"
	"github.com/katalvlaran/motionkit/termview"
)

// driftSamples is the profile length of the fast-mode drift readout.
const driftSamples = 64

type config struct {
	fps        int
	fast       bool
	particles  int
	segments   int
	seed       float64
	offset     float64
	wavPath    string
	wavSeconds float64
	wavSource  string
	noise      string
}

func parseFlags() config {
	var c config
	flag.IntVar(&c.fps, "fps", 30, "frames per second")
	flag.BoolVar(&c.fast, "fast", false, "use the single-wave terrain")
	flag.IntVar(&c.particles, "particles", int(field.DefaultParticleCount), "number of spiral particles")
	flag.IntVar(&c.segments, "segments", field.DefaultTerrainSegments, "terrain segments per side")
	flag.Float64Var(&c.seed, "seed", 0, "noise seed for -wav-source=noise")
	flag.Float64Var(&c.offset, "offset", float64(kernel.DefaultTimeOffset), "time offset added to the clock")
	flag.StringVar(&c.wavPath, "wav", "", "write audio to this WAV file and exit")
	flag.Float64Var(&c.wavSeconds, "wav-seconds", 5, "length of the WAV export in seconds")
	flag.StringVar(&c.wavSource, "wav-source", "wave", "audio source: wave or noise")
	flag.StringVar(&c.noise, "noise", "value", "noise sampler: value, mix, perlin or simplex")
	flag.Parse()

	return c
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("motionkit: ")

	cfg := parseFlags()
	src, err := newSampler(cfg.noise, int64(cfg.seed))
	if err != nil {
		log.Fatal(err)
	}
	k := kernel.New(kernel.WithTimeOffset(float32(cfg.offset)), kernel.WithSampler(src))

	if cfg.wavPath != "" {
		if err = exportWAV(cfg, src); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err = run(cfg, k); err != nil {
		log.Fatal(err)
	}
}

// newSampler resolves the -noise flag; base seeds the gradient generators.
func newSampler(name string, base int64) (noise.Sampler, error) {
	switch name {
	case "value":
		return noise.Value{}, nil
	case "mix":
		return noise.Value{Lattice: noise.MixHash{}}, nil
	case "perlin":
		p, err := noise.NewPerlin(noise.DefaultPerlinAlpha, noise.DefaultPerlinBeta, noise.DefaultPerlinOctaves, base)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "simplex":
		return noise.NewSimplex(base), nil
	}

	return nil, errors.New("unknown -noise " + name)
}

func exportWAV(cfg config, src noise.Sampler) error {
	rate := sonify.DefaultSampleRate
	d := time.Duration(cfg.wavSeconds * float64(time.Second))

	var (
		s   beep.Streamer
		err error
	)
	switch cfg.wavSource {
	case "wave":
		s, err = sonify.NewWaveStreamer(rate, 0, 0, sonify.DefaultSpeed, d)
	case "noise":
		s, err = sonify.NewNoiseStreamer(rate, src, float32(cfg.seed), sonify.DefaultSpeed, d)
	default:
		return errors.New("unknown -wav-source " + cfg.wavSource)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.wavPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = sonify.WriteWAV(f, s, rate); err != nil {
		return err
	}
	log.Printf("wrote %s (%.1fs, %s)", cfg.wavPath, cfg.wavSeconds, cfg.wavSource)

	return nil
}

func run(cfg config, k *kernel.Kernel) error {
	if cfg.fps < 1 {
		return errors.New("-fps must be positive")
	}

	terrain, err := field.NewTerrain(field.DefaultTerrainSize, cfg.segments)
	if err != nil {
		return err
	}
	particles, err := field.NewParticles(int32(cfg.particles))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case now := <-ticker.C:
			t := k.Shifted(float32(now.Sub(start).Seconds()))
			terrain.Update(t, cfg.fast)
			if err = particles.Update(t); err != nil {
				return err
			}
			var drift float64
			if cfg.fast {
				half := terrain.Size() / 2
				if drift, err = fidelity.Compare(0, t, -half, half, driftSamples, fidelity.DefaultOptions()); err != nil {
					return err
				}
			}
			termview.Draw(screen, termview.Frame{
				Terrain:   terrain,
				Particles: particles,
				Time:      t,
				Fast:      cfg.fast,
				Drift:     drift,
				Noise:     k.Noise(t, float32(cfg.seed)),
			})
			screen.Show()
		}
	}
}
