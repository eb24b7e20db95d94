package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srtclean/internal/media"
	"srtclean/internal/srt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle track from a media file",
	Long: `Extract a subtitle stream from a media container (mkv, mp4, ...) into an
SRT file, then clean it the same way the clean command does.

Use --stream to pick a subtitle track other than the first, and
--keep-raw to skip the cleaning pass and keep the track exactly as
demuxed. Requires ffmpeg on the PATH.

Examples:
  srtclean extract movie.mkv
  srtclean extract movie.mkv --stream 1 -o movie.srt
  srtclean extract movie.mkv --keep-raw`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the file")
	extractCmd.Flags().
		Bool("keep-raw", false, "Keep the demuxed track as-is, without cleaning")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	stream, _ := cmd.Flags().GetInt("stream")
	keepRaw, _ := cmd.Flags().GetBool("keep-raw")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", mediaPath)
	}
	if stream < 0 {
		return fmt.Errorf("stream index must be non-negative, got %d", stream)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + ".srt"
	}

	logger.Infow("Extracting subtitle track",
		"media", mediaPath,
		"output", outputPath,
		"stream", stream,
		"keep_raw", keepRaw,
	)

	rawPath := outputPath
	if !keepRaw {
		tempDir, err := os.MkdirTemp("", "srtclean-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)
		rawPath = filepath.Join(tempDir, "track.srt")
	}

	extractor := media.NewExtractor()
	opts := media.ExtractOptions{Stream: stream}

	if err := extractor.ExtractSubtitles(ctx, mediaPath, rawPath, opts); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if !keepRaw {
		doc := srt.NewDocument(rawPath)
		if err := doc.ReadFile(); err != nil {
			return err
		}
		logger.Infow("Cleaning extracted track", "entries", doc.Len())
		if err := doc.WriteFile(outputPath); err != nil {
			return err
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted successfully: %s\n", absOutput)

	return nil
}
