// Package config holds runtime settings with compiled-in defaults. There is
// no config file, environment lookup, or flag parsing: a run is fully
// described by DefaultConfig plus the URLs typed into the menu.
package config

import (
	"errors"
	"fmt"
)

// Default values
const (
	DefaultOutputBase   = "output"
	DefaultChunkSeconds = 75
)

// FFmpeg render settings shared by the stacker and the chunker
const (
	VideoCodec   = "libx264"
	VideoPreset  = "medium"
	VideoCRF     = "23"
	VideoFPS     = "30"
	PixelFormat  = "yuv420p"
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	FastStartFlag = "+faststart"

	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// Output naming
const (
	CombinedFileName = "combined_video.mp4"
	ChunksDirName    = "chunks"
	ChunkFilePrefix  = "chunk_"
	OutputExtension  = ".mp4"
	PairDirPrefix    = "pair_"
)

// Config holds all runtime settings. It is populated by DefaultConfig and
// passed (by pointer) to the packages that need it.
type Config struct {
	// OutputBase is the prefix of the timestamped run directory.
	OutputBase string

	// ChunkSeconds is the fixed chunk window length in whole seconds.
	ChunkSeconds int

	// FFmpegBin and FFprobeBin name the external binaries; overridable in
	// tests, always the bare command names in production.
	FFmpegBin  string
	FFprobeBin string
}

// DefaultConfig returns the compiled-in defaults
func DefaultConfig() *Config {
	return &Config{
		OutputBase:   DefaultOutputBase,
		ChunkSeconds: DefaultChunkSeconds,
		FFmpegBin:    FFmpegCommand,
		FFprobeBin:   FFprobeCommand,
	}
}

// Validate checks the config for values the pipeline cannot work with
func (c *Config) Validate() error {
	if c.OutputBase == "" {
		return errors.New("output base name must not be empty")
	}
	if c.ChunkSeconds <= 0 {
		return fmt.Errorf("chunk duration must be positive, got %d", c.ChunkSeconds)
	}
	if c.FFmpegBin == "" || c.FFprobeBin == "" {
		return errors.New("ffmpeg and ffprobe commands must be set")
	}
	return nil
}
