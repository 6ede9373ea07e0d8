package synth

import (
	"math/rand"
	"strings"
)

// FallbackWord is used as the fragment's first token when the input text
// contains no words.
const FallbackWord = "echo"

// vocabulary is the fixed pool the fragment's trailing tokens are drawn from.
var vocabulary = [...]string{"veil", "echo", "rift", "pulse", "haze", "shard", "lumen", "flux"}

// Fragment generates a short deterministic text fragment for the given
// input: one word taken from the input itself followed by three words
// drawn (with replacement) from a fixed vocabulary, space-joined. The
// result always has exactly four tokens.
func Fragment(text string) string {
	words := strings.Fields(text)
	rng := rand.New(rand.NewSource(FragmentSeed(text)))

	// No draw is consumed for the fallback, which keeps the vocabulary
	// picks for empty input stable.
	cryptic := FallbackWord
	if len(words) > 0 {
		cryptic = words[rng.Intn(len(words))]
	}

	parts := make([]string, 0, 4)
	parts = append(parts, cryptic)
	for i := 0; i < 3; i++ {
		parts = append(parts, vocabulary[rng.Intn(len(vocabulary))])
	}
	return strings.Join(parts, " ")
}
