package media

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/oxidamotion/Tikauto/internal/config"
	"github.com/oxidamotion/Tikauto/internal/model"
)

// Service runs the ffmpeg-backed processing stages
type Service struct {
	cfg *config.Config
}

// NewService creates a media service bound to the given config
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Stack renders the vertical composite of two video files to outPath: top
// above bottom, both rescaled to the smaller input width, bottom looped to
// cover top's duration, bottom's audio discarded. The composite is encoded
// with the fixed codec and frame rate from config.
func (s *Service) Stack(ctx context.Context, topPath, bottomPath, outPath string) error {
	top, err := ProbeClip(ctx, s.cfg.FFprobeBin, topPath)
	if err != nil {
		return model.NewStageError(model.FailureComposition,
			fmt.Errorf("probe top clip: %w", err))
	}

	bottom, err := ProbeClip(ctx, s.cfg.FFprobeBin, bottomPath)
	if err != nil {
		return model.NewStageError(model.FailureComposition,
			fmt.Errorf("probe bottom clip: %w", err))
	}

	plan, err := ReconcileDurations(top.Duration, bottom.Duration)
	if err != nil {
		return err
	}

	if !plan.IsIdentity() {
		log.Printf("Bottom video is shorter than top video (%.1fs < %.1fs), looping to match",
			bottom.Duration, top.Duration)
	}

	width := top.Width
	if bottom.Width < width {
		width = bottom.Width
	}

	args := buildStackArgs(topPath, bottomPath, outPath, width, plan)
	if err := runFFmpeg(ctx, s.cfg.FFmpegBin, args); err != nil {
		return model.NewStageError(model.FailureComposition,
			fmt.Errorf("render composite: %w", err))
	}

	log.Printf("Combined video saved to %s", outPath)
	return nil
}

// buildStackArgs assembles the ffmpeg argument slice for the stack render.
// The bottom input carries the loop plan as input options; its audio is
// never mapped, so the output audio derives solely from the top clip.
func buildStackArgs(topPath, bottomPath, outPath string, width int, plan LoopPlan) []string {
	args := make([]string, 0, 32)

	// Preamble
	args = append(args, "-hide_banner", "-nostdin", "-y", "-loglevel", "error")

	// Top input
	args = append(args, "-i", topPath)

	// Bottom input, looped and trimmed per the reconciliation plan
	if plan.Loops > 0 {
		args = append(args, "-stream_loop", strconv.Itoa(plan.Loops))
	}
	if plan.Limit > 0 {
		args = append(args, "-t", formatSeconds(plan.Limit))
	}
	args = append(args, "-i", bottomPath)

	// Rescale both clips to the shared width (even height for H.264) and
	// stack top over bottom; canvas height is the sum of scaled heights.
	filter := fmt.Sprintf(
		"[0:v]scale=%d:-2[top];[1:v]scale=%d:-2[bottom];[top][bottom]vstack=inputs=2[stacked]",
		width, width)
	args = append(args, "-filter_complex", filter)

	// Map the composite video and the top clip's audio only.
	args = append(args, "-map", "[stacked]", "-map", "0:a?")

	// Fixed render settings
	args = append(args,
		"-c:v", config.VideoCodec,
		"-preset", config.VideoPreset,
		"-crf", config.VideoCRF,
		"-r", config.VideoFPS,
		"-pix_fmt", config.PixelFormat,
		"-c:a", config.AudioCodec,
		"-b:a", config.AudioBitrate,
		"-movflags", config.FastStartFlag,
	)

	args = append(args, outPath)
	return args
}

// formatSeconds renders a duration for ffmpeg's -t option.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
