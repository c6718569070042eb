package segmenter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Probe reads the container duration with ffprobe.
func (s *implSegmenter) Probe(ctx context.Context, path string) (models.AudioSource, error) {
	src := models.NewAudioSource(path)

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := s.executor.Execute(ctx, s.cfg.FFprobeBinary, args...)
	if err != nil {
		return src, fmt.Errorf("ffprobe: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return src, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	src.Duration = duration
	return src, nil
}

// PlanChunks lays out ceil(total/chunkSeconds) consecutive chunks covering
// [0, total). The last chunk ends exactly at total. Paths are left empty.
func PlanChunks(total, chunkSeconds float64) []models.AudioChunk {
	if total <= 0 || chunkSeconds <= 0 {
		return nil
	}

	var chunks []models.AudioChunk
	for i := 0; float64(i)*chunkSeconds < total; i++ {
		start := float64(i) * chunkSeconds
		chunks = append(chunks, models.AudioChunk{
			Index: i + 1,
			Start: start,
			End:   min(start+chunkSeconds, total),
		})
	}
	return chunks
}

// Split exports every planned chunk of path into workDir as
// <base>_part<N>.<format>. Any failure removes the chunks written so far and
// returns no chunks.
func (s *implSegmenter) Split(ctx context.Context, path string, chunkSeconds int, workDir string) ([]models.AudioChunk, error) {
	if chunkSeconds <= 0 {
		return nil, fmt.Errorf("%w: chunk length must be positive, got %d", errs.ErrSegmentation, chunkSeconds)
	}

	src, err := s.Probe(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSegmentation, err)
	}

	plan := PlanChunks(src.Duration, float64(chunkSeconds))
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: source %s has no duration", errs.ErrSegmentation, path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s.logger.Info(ctx, "Splitting %s (%.1fs) into %d segments of %ds", path, src.Duration, len(plan), chunkSeconds)

	chunks := make([]models.AudioChunk, 0, len(plan))
	for _, c := range plan {
		c.Path = filepath.Join(workDir, fmt.Sprintf("%s_part%d.%s", base, c.Index, s.cfg.TargetFormat))

		if err := s.export(ctx, path, c); err != nil {
			s.discard(ctx, chunks)
			return nil, fmt.Errorf("%w: export part %d: %w", errs.ErrSegmentation, c.Index, err)
		}

		s.logger.Debug(ctx, "Exported segment: %s [%.1f, %.1f)", c.Path, c.Start, c.End)
		chunks = append(chunks, c)
	}

	s.logger.Info(ctx, "Split audio into %d segments", len(chunks))
	return chunks, nil
}

func (s *implSegmenter) export(ctx context.Context, path string, c models.AudioChunk) error {
	encoder := encoders[s.cfg.TargetFormat]
	if encoder == "" {
		encoder = "copy"
	}

	// -ss ahead of -i seeks the input instead of decoding up to the offset
	args := []string{
		"-y",
		"-ss", formatSeconds(c.Start),
		"-t", formatSeconds(c.Duration()),
		"-i", path,
		"-vn",
		"-c:a", encoder,
		"-b:a", s.cfg.Bitrate,
		c.Path,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.FFmpegBinary, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

func (s *implSegmenter) discard(ctx context.Context, chunks []models.AudioChunk) {
	for _, c := range chunks {
		if err := os.Remove(c.Path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn(ctx, "Failed to remove partial segment %s: %v", c.Path, err)
		}
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
