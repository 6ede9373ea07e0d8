package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/dgnsrekt/resonator-go/internal/rawpcm"
)

// WriteWAV writes float32 samples as a 16-bit mono WAV file. Samples are
// clamped to [-1, 1] and scaled to the int16 range; the transform is lossy
// and intended for playback, not round-tripping.
func WriteWAV(ws io.WriteSeeker, samples []float32, sampleRate int) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		v := float64(s)
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		data[i] = int(math.Round(v * 32767))
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: rawpcm.Channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, rawpcm.Channels, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav encoder: %w", err)
	}
	return nil
}
