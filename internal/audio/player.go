// Package audio converts and plays raw float32 PCM files produced by the
// resonator service.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/dgnsrekt/resonator-go/internal/rawpcm"
)

var (
	// ErrPlayerNotFound is returned when ffplay is not installed.
	ErrPlayerNotFound = errors.New("ffplay not found in PATH")
	// ErrPlaybackFailed is returned when ffplay exits with an error.
	ErrPlaybackFailed = errors.New("audio playback failed")
)

// Player plays raw PCM files through ffplay.
type Player struct {
	ffplayPath string
}

// NewPlayer creates a new player, verifying ffplay is available.
func NewPlayer() (*Player, error) {
	path, err := exec.LookPath("ffplay")
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	return &Player{ffplayPath: path}, nil
}

// NewPlayerWithPath creates a player with a specific ffplay path.
func NewPlayerWithPath(path string) *Player {
	return &Player{ffplayPath: path}
}

// Play plays a raw PCM file and blocks until playback finishes. The file
// carries no header, so the format is passed to ffplay explicitly:
// 32-bit float little-endian, 44100 Hz, mono.
func (p *Player) Play(ctx context.Context, path string) error {
	args := []string{
		"-f", "f32le",
		"-ar", fmt.Sprintf("%d", rawpcm.SampleRate),
		"-ac", fmt.Sprintf("%d", rawpcm.Channels),
		"-autoexit",
		"-loglevel", "error",
		path,
	}

	cmd := exec.CommandContext(ctx, p.ffplayPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s", ErrPlaybackFailed, stderr.String())
	}

	return nil
}
