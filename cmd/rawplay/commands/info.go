package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/resonator-go/internal/rawpcm"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.raw>",
	Short: "Show information about a raw audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		info, err := rawpcm.Describe(data)
		if err != nil {
			return fmt.Errorf("describe %s: %w", args[0], err)
		}

		cmd.Printf("File: %s\n", args[0])
		cmd.Printf("Size: %d bytes\n", info.ByteSize)
		cmd.Printf("Samples: %d\n", info.SampleCount)
		cmd.Printf("Duration: %.2f seconds\n", info.Duration)
		cmd.Printf("Format: 32-bit float PCM\n")
		cmd.Printf("Sample Rate: %d Hz\n", rawpcm.SampleRate)
		cmd.Printf("Channels: %d\n", rawpcm.Channels)
		return nil
	},
}
