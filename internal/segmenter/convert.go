package segmenter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

var encoders = map[string]string{
	"mp3":  "libmp3lame",
	"wav":  "pcm_s16le",
	"flac": "flac",
	"m4a":  "aac",
	"ogg":  "libvorbis",
}

// Convert re-encodes sourcePath into the target format inside workDir.
// A source already in the target format is returned unchanged.
func (s *implSegmenter) Convert(ctx context.Context, sourcePath, workDir string) (string, error) {
	src := models.NewAudioSource(sourcePath)
	if src.Format == s.cfg.TargetFormat {
		s.logger.Info(ctx, "Source already %s, skipping conversion: %s", s.cfg.TargetFormat, sourcePath)
		return sourcePath, nil
	}

	encoder, ok := encoders[s.cfg.TargetFormat]
	if !ok {
		return "", fmt.Errorf("%w: unsupported target format %q", errs.ErrConversion, s.cfg.TargetFormat)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	outPath := filepath.Join(workDir, base+"."+s.cfg.TargetFormat)

	s.logger.Info(ctx, "Converting %s -> %s", sourcePath, outPath)

	// -vn drops cover art streams that m4a files often carry
	args := []string{
		"-y",
		"-i", sourcePath,
		"-vn",
		"-c:a", encoder,
		"-b:a", s.cfg.Bitrate,
		outPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.FFmpegBinary, args...); err != nil {
		return "", fmt.Errorf("%w: ffmpeg convert: %w", errs.ErrConversion, err)
	}

	s.logger.Info(ctx, "Converted %s to %s", sourcePath, s.cfg.TargetFormat)
	return outPath, nil
}
