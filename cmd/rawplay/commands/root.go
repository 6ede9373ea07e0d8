// Package commands implements the rawplay command tree.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rawplay",
	Short: "Inspect, convert, and play raw float32 PCM audio files",
	Long: `rawplay works with .raw audio files produced by the resonator service.

The files are headerless 32-bit float PCM (little-endian) at 44100 Hz,
mono. Since the format carries no metadata, these parameters are fixed
conventions shared with the service.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(playCmd)
}
