package media

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/oxidamotion/Tikauto/internal/config"
	"github.com/oxidamotion/Tikauto/internal/model"
)

// window is one chunk's [start, start+length) slice of the source, in whole
// seconds.
type window struct {
	start  int
	length int
}

// chunkWindows partitions [0, total) into consecutive windows of
// chunkSeconds each; the final window may be shorter. A non-positive total
// yields no windows.
func chunkWindows(total, chunkSeconds int) []window {
	if chunkSeconds <= 0 {
		return nil
	}
	var windows []window
	for start := 0; start < total; start += chunkSeconds {
		length := chunkSeconds
		if start+length > total {
			length = total - start
		}
		windows = append(windows, window{start: start, length: length})
	}
	return windows
}

// SplitChunks splits srcPath into consecutive fixed-length segments rendered
// into outDir as chunk_1.mp4, chunk_2.mp4, ... with the same codec and frame
// rate as the stacker. On failure the chunks already rendered are returned
// alongside the error; partial output files are kept on disk.
func (s *Service) SplitChunks(ctx context.Context, srcPath, outDir string) ([]string, error) {
	clip, err := ProbeClip(ctx, s.cfg.FFprobeBin, srcPath)
	if err != nil {
		return nil, model.NewStageError(model.FailureChunking,
			fmt.Errorf("probe source: %w", err))
	}

	total := int(clip.Duration)
	windows := chunkWindows(total, s.cfg.ChunkSeconds)

	chunks := make([]string, 0, len(windows))
	for i, w := range windows {
		chunkPath := filepath.Join(outDir, chunkFileName(i+1))

		args := buildChunkArgs(srcPath, chunkPath, w)
		if err := runFFmpeg(ctx, s.cfg.FFmpegBin, args); err != nil {
			return chunks, model.NewStageError(model.FailureChunking,
				fmt.Errorf("render chunk %d: %w", i+1, err))
		}

		chunks = append(chunks, chunkPath)
		log.Printf("Saved chunk: %s", chunkPath)
	}
	return chunks, nil
}

// chunkFileName returns the 1-indexed chunk file name.
func chunkFileName(n int) string {
	return fmt.Sprintf("%s%d%s", config.ChunkFilePrefix, n, config.OutputExtension)
}

// buildChunkArgs assembles the ffmpeg argument slice for one chunk render.
func buildChunkArgs(srcPath, outPath string, w window) []string {
	return []string{
		"-hide_banner", "-nostdin", "-y", "-loglevel", "error",
		"-ss", strconv.Itoa(w.start),
		"-i", srcPath,
		"-t", strconv.Itoa(w.length),
		"-c:v", config.VideoCodec,
		"-preset", config.VideoPreset,
		"-crf", config.VideoCRF,
		"-r", config.VideoFPS,
		"-pix_fmt", config.PixelFormat,
		"-c:a", config.AudioCodec,
		"-b:a", config.AudioBitrate,
		"-movflags", config.FastStartFlag,
		outPath,
	}
}
