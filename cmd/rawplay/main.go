// Package main provides the rawplay CLI for working with .raw audio files
// produced by the resonator service.
//
// The .raw files contain 32-bit float PCM (little-endian) at 44100 Hz,
// mono, with no header.
//
// Usage:
//
//	rawplay info <file.raw>     - show file information
//	rawplay convert <file.raw>  - convert to WAV for easier playback
//	rawplay play <file.raw>     - play through ffplay
package main

import (
	"fmt"
	"os"

	"github.com/dgnsrekt/resonator-go/cmd/rawplay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
