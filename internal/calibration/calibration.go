// Package calibration measures the operand lengths at which Karatsuba and
// the number theoretic transform start beating the simpler strategy, and
// caches the result in a per-machine profile.
package calibration

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/config"
	"github.com/agbru/algebra/internal/digits"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/logging"
	"github.com/agbru/algebra/internal/sysmon"
)

// ProfileMaxAge is the age after which a cached profile is re-measured by
// the startup search.
const ProfileMaxAge = 30 * 24 * time.Hour

// defaultSeed makes calibration operands identical between runs.
var defaultSeed = []byte("algebra calibration")

// Options tunes a calibration run.
type Options struct {
	// Quick samples fewer operand lengths with fewer repetitions.
	Quick bool
	// Repeats is the number of timings per measurement; the fastest is
	// kept. Zero selects 5, or 2 in quick mode.
	Repeats int
	// Seed feeds the operand generator. Nil selects a fixed seed.
	Seed []byte
	// Logger receives one debug line per sample.
	Logger logging.Logger
}

// Sample is one timed comparison of two strategies at one operand length.
type Sample struct {
	Words     int
	Lower     time.Duration // the strategy below the threshold
	Upper     time.Duration // the strategy above the threshold
	UpperWins bool
}

// Result is the outcome of a calibration run. A zero threshold means no
// crossover was found among the sampled lengths.
type Result struct {
	Thresholds bigint.Thresholds
	Karatsuba  []Sample
	FFT        []Sample
	Elapsed    time.Duration
}

// Calibrate times schoolbook against one Karatsuba level, then Karatsuba
// against the transform, over the candidate operand lengths.
//
// Parameters:
//   - ctx: Checked between measurements.
//   - opts: Run options.
//
// Returns:
//   - Result: The samples and the derived thresholds.
//   - error: The context error when canceled.
func Calibrate(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	if opts.Repeats <= 0 {
		opts.Repeats = 5
		if opts.Quick {
			opts.Repeats = 2
		}
	}
	if opts.Seed == nil {
		opts.Seed = defaultSeed
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	rng, err := bigint.NewSeededReader(opts.Seed)
	if err != nil {
		return Result{}, err
	}

	kCandidates, fCandidates := GenerateKaratsubaCandidates(), GenerateFFTCandidates()
	if opts.Quick {
		kCandidates, fCandidates = GenerateQuickKaratsubaCandidates(), GenerateQuickFFTCandidates()
	}

	var res Result
	res.Karatsuba, err = sweep(ctx, rng, kCandidates, opts,
		func(x, y digits.Nat) { digits.MulBasic(x, y) },
		func(x, y digits.Nat) { digits.MulKaratsuba(x, y, len(y)/2+1) })
	if err != nil {
		return Result{}, err
	}
	res.Thresholds.Karatsuba = crossover(res.Karatsuba)

	leaf := res.Thresholds.Karatsuba
	if leaf == 0 {
		leaf = EstimateKaratsubaThreshold()
	}
	res.FFT, err = sweep(ctx, rng, fCandidates, opts,
		func(x, y digits.Nat) { digits.MulKaratsuba(x, y, leaf) },
		func(x, y digits.Nat) { digits.MulFFT(x, y) })
	if err != nil {
		return Result{}, err
	}
	res.Thresholds.FFT = crossover(res.FFT)
	res.Elapsed = time.Since(start)
	return res, nil
}

// sweep times lower and upper at every candidate length.
func sweep(ctx context.Context, rng io.Reader, candidates []int, opts Options, lower, upper func(x, y digits.Nat)) ([]Sample, error) {
	samples := make([]Sample, 0, len(candidates))
	for _, words := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		x, err := randomNat(rng, words)
		if err != nil {
			return nil, err
		}
		y, err := randomNat(rng, words)
		if err != nil {
			return nil, err
		}
		s := Sample{
			Words: words,
			Lower: fastest(opts.Repeats, func() { lower(x, y) }),
			Upper: fastest(opts.Repeats, func() { upper(x, y) }),
		}
		s.UpperWins = s.Upper < s.Lower
		opts.Logger.Debug("calibration sample",
			logging.Int("words", words),
			logging.Duration("lower", s.Lower),
			logging.Duration("upper", s.Upper))
		samples = append(samples, s)
	}
	return samples, nil
}

// crossover returns the first length from which the upper strategy wins
// at two consecutive samples, or at the last sample. It returns 0 when the
// upper strategy never wins.
func crossover(samples []Sample) int {
	for i, s := range samples {
		if !s.UpperWins {
			continue
		}
		if i == len(samples)-1 || samples[i+1].UpperWins {
			return s.Words
		}
	}
	return 0
}

func fastest(repeats int, fn func()) time.Duration {
	best := time.Duration(1<<63 - 1)
	for range repeats {
		start := time.Now()
		fn()
		best = min(best, time.Since(start))
	}
	return best
}

// randomNat reads a words-long magnitude with its top bit set.
func randomNat(r io.Reader, words int) (digits.Nat, error) {
	buf := make([]byte, 8*words)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("calibration operands: %w", err)
	}
	z := make(digits.Nat, words)
	for i := range z {
		z[i] = digits.Word(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	z[words-1] |= 1 << (wordBits() - 1)
	return z, nil
}

// fillThresholds replaces zero thresholds of res by hardware estimates.
func fillThresholds(t bigint.Thresholds) bigint.Thresholds {
	if t.Karatsuba == 0 {
		t.Karatsuba = EstimateKaratsubaThreshold()
	}
	if t.FFT == 0 {
		t.FFT = EstimateFFTThreshold()
	}
	return t
}

// ─── Entry points ──────────────────────────────────────────────────────────

// RunCalibration runs a full calibration, prints the samples, installs the
// thresholds and saves the profile.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - cfg: The configuration; CalibrationProfile selects the profile path.
//   - out: Where the report is printed.
//   - logger: Diagnostics.
//
// Returns:
//   - int: The process exit code.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) int {
	fmt.Fprintf(out, "--- Calibration ---\n")
	fmt.Fprintf(out, "Timing multiplication strategies, this can take a few seconds...\n")
	if load, err := sysmon.Sample(ctx); err == nil && load.Busy() {
		fmt.Fprintf(out, "Warning: CPU load is %.0f%%, crossovers may be overestimated.\n", load.CPUPercent)
	}

	res, err := Calibrate(ctx, Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(out, "Calibration interrupted: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	printSamples(out, "Schoolbook vs Karatsuba", res.Karatsuba, res.Thresholds.Karatsuba)
	printSamples(out, "Karatsuba vs FFT", res.FFT, res.Thresholds.FFT)

	th := fillThresholds(res.Thresholds)
	bigint.SetThresholds(th)

	profile := NewProfile()
	profile.KaratsubaThreshold = th.Karatsuba
	profile.FFTThreshold = th.FFT
	profile.CalibrationTime = res.Elapsed.Round(time.Millisecond).String()

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		logger.Error("saving calibration profile", err, logging.String("path", path))
		fmt.Fprintf(out, "Warning: profile not saved: %v\n", err)
	} else {
		fmt.Fprintf(out, "Profile saved to %s\n", path)
	}
	printCalibrationOutput(th, out)
	return apperrors.ExitSuccess
}

// AutoCalibrate resolves the thresholds at startup. Explicit thresholds in
// cfg are kept; otherwise a valid, fresh cached profile is used; otherwise
// a quick search runs and its result is cached.
//
// Returns:
//   - config.AppConfig: cfg with both thresholds set.
//   - bool: Whether a measurement was run.
func AutoCalibrate(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) (config.AppConfig, bool) {
	if cfg.KaratsubaThreshold > 0 && cfg.FFTThreshold > 0 {
		return cfg, false
	}
	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if p, ok := LoadOrCreateProfile(path); ok && !p.IsStale(ProfileMaxAge) {
		return mergeThresholds(cfg, p.Thresholds()), false
	}

	res, err := Calibrate(ctx, Options{Quick: true, Logger: logger})
	if err != nil {
		logger.Debug("quick calibration skipped", logging.Err(err))
		return config.ApplyAdaptiveThresholds(cfg), false
	}
	th := fillThresholds(res.Thresholds)
	profile := NewProfile()
	profile.KaratsubaThreshold, profile.FFTThreshold = th.Karatsuba, th.FFT
	profile.CalibrationTime = res.Elapsed.Round(time.Millisecond).String()
	profile.Quick = true
	if err := profile.SaveProfile(path); err != nil {
		logger.Debug("quick calibration profile not saved", logging.Err(err))
	}
	cfg = mergeThresholds(cfg, th)
	printCalibrationOutput(cfg.Thresholds(), out)
	return cfg, true
}

// ResolveThresholds fills zero thresholds of cfg from the cached profile,
// then from hardware estimates. It never measures.
func ResolveThresholds(cfg config.AppConfig) config.AppConfig {
	if cached, ok := LoadCachedThresholds(cfg.CalibrationProfile); ok {
		cfg = mergeThresholds(cfg, cached)
	}
	return config.ApplyAdaptiveThresholds(cfg)
}

func mergeThresholds(cfg config.AppConfig, t bigint.Thresholds) config.AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = t.Karatsuba
	}
	if cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = t.FFT
	}
	return cfg
}
