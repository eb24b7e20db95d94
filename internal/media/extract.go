package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// options for demuxing an embedded subtitle stream
type ExtractOptions struct {
	Stream int // subtitle stream index within the file (0 = first)
}

// interface for pulling subtitle tracks out of media containers
type Extractor interface {
	ExtractSubtitles(
		ctx context.Context,
		mediaPath, outputPath string,
		opts ExtractOptions,
	) error
}

// default implementation using ffmpeg
type FFmpegExtractor struct{}

func NewExtractor() *FFmpegExtractor {
	return &FFmpegExtractor{}
}

// ExtractSubtitles demuxes subtitle stream opts.Stream from the container
// into an SRT file at outputPath.
func (e *FFmpegExtractor) ExtractSubtitles(
	ctx context.Context,
	mediaPath, outputPath string,
	opts ExtractOptions,
) error {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", mediaPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Stream), // subtitle stream only
		"c:s": "srt",
	}

	err := ffmpeg.Input(mediaPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	return nil
}
