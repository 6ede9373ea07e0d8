package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/resonator-go/internal/audio"
)

var playCmd = &cobra.Command{
	Use:   "play <file.raw>",
	Short: "Play a raw audio file through ffplay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := audio.NewPlayer()
		if err != nil {
			if errors.Is(err, audio.ErrPlayerNotFound) {
				cmd.PrintErrln("ffplay not found. Install ffmpeg to use this command.")
				cmd.PrintErrf("Or convert to WAV first: rawplay convert %s\n", args[0])
			}
			return err
		}

		if err := player.Play(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("play %s: %w", args[0], err)
		}
		return nil
	},
}
