package synth

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// WaveformSeed derives the waveform PRNG seed from input text.
// It computes a version-5 (name-based, SHA-1) UUID of the text under the
// DNS namespace and keeps the low 32 bits, so identical text always maps
// to the same seed while distinct texts spread across the full range.
func WaveformSeed(text string) uint32 {
	u := uuid.NewSHA1(uuid.NameSpaceDNS, []byte(text))
	return binary.BigEndian.Uint32(u[12:16])
}

// FragmentSeed derives the fragment PRNG seed from input text as the sum
// of its rune code points. Collisions between permutations of the same
// characters are accepted.
func FragmentSeed(text string) int64 {
	var sum int64
	for _, r := range text {
		sum += int64(r)
	}
	return sum
}
