package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/resonator-go/internal/audio"
	"github.com/dgnsrekt/resonator-go/internal/rawpcm"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <file.raw>",
	Short: "Convert a raw audio file to WAV",
	Long: `Convert a raw float32 PCM file to a 16-bit mono WAV file.

The conversion clamps samples to [-1, 1] and scales to the int16 range,
so it is lossy and meant for playback, not archival.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		samples, err := rawpcm.Decode(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		out := convertOutput
		if out == "" {
			out = outputName(args[0])
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		if err := audio.WriteWAV(f, samples, rawpcm.SampleRate); err != nil {
			return err
		}

		cmd.Printf("Converted %s to %s\n", args[0], out)
		cmd.Printf("Duration: %.2f seconds\n", float64(len(samples))/rawpcm.SampleRate)
		cmd.Printf("Samples: %d\n", len(samples))
		return nil
	},
}

// outputName derives the WAV filename from the input path.
func outputName(in string) string {
	if strings.HasSuffix(in, ".raw") {
		return strings.TrimSuffix(in, ".raw") + ".wav"
	}
	return in + ".wav"
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output WAV filename")
}
