// Package rawpcm implements the headerless raw PCM contract used for
// transporting synthesized waveforms: little-endian 32-bit IEEE-754 float
// samples with no header, length prefix, or embedded metadata. Sample rate
// and channel count are fixed conventions carried out-of-band.
package rawpcm

import (
	"encoding/binary"
	"errors"
	"math"
)

// Contractual constants of the raw format. The bytes themselves carry no
// metadata, so readers and writers must agree on these out-of-band.
const (
	// SampleRate is the implied sample rate in Hz.
	SampleRate = 44100

	// Channels is the implied channel count (mono).
	Channels = 1

	// BytesPerSample is the width of one float32 sample.
	BytesPerSample = 4
)

// ErrInvalidByteLength is returned when a raw byte buffer's length is not a
// multiple of the sample width and cannot be interpreted as float32 PCM.
var ErrInvalidByteLength = errors.New("byte length is not a multiple of 4")

// Info describes a raw PCM byte buffer.
type Info struct {
	// SampleCount is the number of float32 samples in the buffer.
	SampleCount int
	// Duration is the playback length in seconds at the contractual rate.
	Duration float64
	// ByteSize is the total size of the buffer in bytes.
	ByteSize int
}

// Encode serializes samples as headerless little-endian float32 bytes.
func Encode(samples []float32) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*BytesPerSample:], math.Float32bits(s))
	}
	return out
}

// Decode reinterprets headerless little-endian float32 bytes as samples.
// Returns ErrInvalidByteLength if the length is not a multiple of 4.
func Decode(data []byte) ([]float32, error) {
	if len(data)%BytesPerSample != 0 {
		return nil, ErrInvalidByteLength
	}
	samples := make([]float32, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*BytesPerSample:]))
	}
	return samples, nil
}

// Describe reports sample count, duration, and byte size for a raw buffer
// without decoding it. Returns ErrInvalidByteLength for misaligned input.
func Describe(data []byte) (Info, error) {
	if len(data)%BytesPerSample != 0 {
		return Info{}, ErrInvalidByteLength
	}
	count := len(data) / BytesPerSample
	return Info{
		SampleCount: count,
		Duration:    float64(count) / SampleRate,
		ByteSize:    len(data),
	}, nil
}

// ToPCM16 converts float samples to 16-bit signed PCM bytes for playback
// tooling: each sample is clamped to [-1, 1], scaled by 32767, and rounded
// to the nearest integer. The transform is lossy and one-way.
func ToPCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := float64(s)
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(math.Round(v*32767))))
	}
	return out
}
