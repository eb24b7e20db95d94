package cli

import (
	"srtclean/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtclean",
	Short: "Clean, renumber, and shift SubRip subtitle files",
	Long: `Srtclean parses SRT subtitle files, drops spam and broken entries,
renumbers what is left, and writes the result back in canonical form.

It can also shift subtitle start times by a fixed duration and extract
embedded subtitle tracks from media containers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
