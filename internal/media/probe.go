package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Clip holds the probed properties of a video file that the stacker and
// chunker need: overall duration and the primary video stream geometry.
type Clip struct {
	Path     string
	Duration float64
	Width    int
	Height   int
}

// ProbeClip runs a single ffprobe JSON call against path and returns the
// parsed clip properties.
func ProbeClip(ctx context.Context, bin, path string) (*Clip, error) {
	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	clip, err := ParseProbeJSON(out)
	if err != nil {
		return nil, err
	}
	clip.Path = path
	return clip, nil
}

// ParseProbeJSON converts raw ffprobe JSON output into a Clip.
// Exported for testing without a real ffprobe binary.
func ParseProbeJSON(data []byte) (*Clip, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	clip := &Clip{
		Duration: parseFloat(raw.Format.Duration),
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType != "video" || s.Disposition["attached_pic"] == 1 {
			continue
		}
		clip.Width = s.Width
		clip.Height = s.Height
		break
	}

	if clip.Width <= 0 || clip.Height <= 0 {
		return nil, fmt.Errorf("no usable video stream found")
	}
	return clip, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType   string         `json:"codec_type"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Disposition map[string]int `json:"disposition"`
}

// parseFloat parses ffprobe's string-encoded numbers, returning 0 on failure.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
