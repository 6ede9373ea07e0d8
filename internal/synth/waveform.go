// Package synth generates deterministic pseudo-random waveforms and text
// fragments from arbitrary input strings. Both generators are pure: the
// output depends only on the input text, never on wall-clock time or
// process state, so concurrent callers need no coordination.
package synth

import (
	"errors"
	"math"
	"math/rand"
)

// Synthesis defaults and component parameters.
const (
	// DefaultSampleRate is the sample rate of generated waveforms in Hz.
	DefaultSampleRate = 44100

	// DefaultDuration is the length of generated waveforms in seconds.
	DefaultDuration = 2.0

	// componentCount is the number of mixed sine components.
	componentCount = 5

	// minFreq and maxFreq bound the component frequency draw in Hz.
	minFreq = 100.0
	maxFreq = 1200.0

	// noiseScale scales the per-sample Gaussian noise.
	noiseScale = 0.1
)

// ErrDegenerateBuffer is returned when a synthesized buffer is identically
// zero and cannot be peak-normalized. With the noise term this is
// practically unreachable, but dividing by zero would silently fill the
// buffer with NaN, so it is an explicit failure instead.
var ErrDegenerateBuffer = errors.New("waveform buffer is all zeros, cannot normalize")

// Waveform generates a deterministic pseudo-random waveform for the given
// text using default duration and sample rate. It returns the normalized
// float32 samples and the sample rate.
func Waveform(text string) ([]float32, int, error) {
	return WaveformWith(text, DefaultDuration, DefaultSampleRate)
}

// WaveformWith is Waveform with explicit duration (seconds) and sample
// rate (Hz). Both must be positive.
//
// The buffer is a sum of five sine components with frequencies drawn
// uniformly from [100, 1200) Hz and phases from [0, 2π), plus scaled
// Gaussian noise, peak-normalized so the maximum absolute sample is 1.0.
// All randomness comes from a PRNG seeded by WaveformSeed(text), so the
// output is bit-for-bit reproducible for a given text.
func WaveformWith(text string, duration float64, sampleRate int) ([]float32, int, error) {
	if duration <= 0 {
		return nil, 0, errors.New("duration must be positive")
	}
	if sampleRate <= 0 {
		return nil, 0, errors.New("sample rate must be positive")
	}

	rng := rand.New(rand.NewSource(int64(WaveformSeed(text))))
	n := int(math.Round(float64(sampleRate) * duration))
	if n == 0 {
		return nil, 0, errors.New("duration too short for sample rate, buffer would be empty")
	}

	// Frequencies are drawn as a batch up front; each component's phase is
	// drawn just before mixing it. Changing this order changes every output,
	// so it is part of the format.
	freqs := make([]float64, componentCount)
	for i := range freqs {
		freqs[i] = minFreq + rng.Float64()*(maxFreq-minFreq)
	}

	// Mix in float64, cast to float32 only after normalization.
	buf := make([]float64, n)
	for _, freq := range freqs {
		phase := rng.Float64() * 2 * math.Pi
		for j := range buf {
			t := float64(j) * duration / float64(n)
			buf[j] += math.Sin(2*math.Pi*freq*t + phase)
		}
	}

	for j := range buf {
		buf[j] += noiseScale * rng.NormFloat64()
	}

	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, 0, ErrDegenerateBuffer
	}

	out := make([]float32, n)
	for j, v := range buf {
		out[j] = float32(v / peak)
	}
	return out, sampleRate, nil
}
