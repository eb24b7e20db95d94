package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"srtclean/internal/srt"

	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift subtitle start times by a fixed duration",
	Long: `Shift the start time of every entry in an SRT file forward or backward
by a fixed duration. Start times never go below zero: shifting backward
past the beginning clamps at 00:00:00,000. End times are left untouched.

Examples:
  srtclean shift movie.srt --by 2s
  srtclean shift movie.srt --by 1500ms --direction backward
  srtclean shift movie.srt --by 1.5s -o movie.synced.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		StringP("by", "b", "", "Shift amount as a duration, e.g. 2s, 1500ms (required)")
	shiftCmd.Flags().
		StringP("direction", "d", "forward", "Shift direction (forward, backward)")

	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	byStr, _ := cmd.Flags().GetString("by")
	directionStr, _ := cmd.Flags().GetString("direction")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", inputPath)
	}

	delta, err := time.ParseDuration(byStr)
	if err != nil {
		return fmt.Errorf("invalid shift amount %q: %w", byStr, err)
	}
	if delta < 0 {
		return fmt.Errorf(
			"shift amount must be positive: use --direction backward instead of %q",
			byStr,
		)
	}

	direction, err := srt.ParseDirection(directionStr)
	if err != nil {
		return err
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + ".shifted.srt"
	}

	logger.Infow("Shifting subtitle start times",
		"input", inputPath,
		"output", outputPath,
		"by", delta.String(),
		"direction", direction.String(),
	)

	doc := srt.NewDocument(inputPath)
	if err := doc.ReadFile(); err != nil {
		return err
	}

	logger.Infow("Parsed subtitle file", "entries", doc.Len())

	if err := doc.ShiftStarts(delta, direction); err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}

	if err := doc.WriteFile(outputPath); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles shifted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", doc.Len())

	return nil
}
