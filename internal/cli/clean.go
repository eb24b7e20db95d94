package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srtclean/internal/srt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [subtitle_file]",
	Short: "Remove spam and broken entries from an SRT file",
	Long: `Parse an SRT file, drop entries whose text is empty, punctuation-only,
or contains a denylisted phrase, and write the remaining entries back with
fresh sequential numbering.

Malformed blocks are skipped, not reported: a broken entry in the middle
of a file never aborts the run.

Use --denylist to reject additional phrases on top of the built-in set,
one phrase per line (blank lines and lines starting with # are ignored).

Examples:
  srtclean clean movie.srt
  srtclean clean movie.srt -o movie.fixed.srt
  srtclean clean movie.srt --denylist extra_phrases.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().
		String("denylist", "", "File with extra phrases to reject, one per line")
}

func runClean(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	denylistPath, _ := cmd.Flags().GetString("denylist")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", inputPath)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + ".cleaned.srt"
	}

	doc := srt.NewDocument(inputPath)

	if denylistPath != "" {
		phrases, err := loadDenylist(denylistPath)
		if err != nil {
			return fmt.Errorf("failed to load denylist: %w", err)
		}
		doc.AddDenyPhrases(phrases...)
		logger.Debugw("Loaded extra denylist",
			"path", denylistPath,
			"phrases", len(phrases),
		)
	}

	logger.Infow("Cleaning subtitle file",
		"input", inputPath,
		"output", outputPath,
	)

	if err := doc.ReadFile(); err != nil {
		return err
	}

	logger.Infow("Parsed subtitle file", "entries", doc.Len())

	if err := doc.WriteFile(outputPath); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles cleaned successfully: %s\n", absOutput)
	fmt.Printf("  Entries kept: %d\n", doc.Len())

	return nil
}

func loadDenylist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var phrases []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	return phrases, nil
}
