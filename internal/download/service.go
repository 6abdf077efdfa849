package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/oxidamotion/Tikauto/internal/model"
)

// Download settings
const (
	// OutputTemplate names downloaded files after the video title, with the
	// host-provided extension.
	OutputTemplate = "%(title)s.%(ext)s"

	// BestSingleFormat selects the single highest-resolution stream offered
	// for the URL, without merging separate audio/video tracks.
	BestSingleFormat = "best"
)

// Service handles video fetch operations
type Service struct{}

// NewService creates a new download service
func NewService() *Service {
	return &Service{}
}

// Fetch downloads the highest-resolution stream for url into outDir and
// returns the local file path. Failures come back as a StageError with
// FailureDownload; the caller treats that as "skip this pair". The call
// blocks until the download finishes; there is no timeout and no retry.
func (s *Service) Fetch(ctx context.Context, url, outDir string) (string, error) {
	log.Printf("Downloading video: %s", url)

	dl := ytdlp.New().
		Format(BestSingleFormat).
		ForceOverwrites().
		RestrictFilenames().
		Output(filepath.Join(outDir, OutputTemplate))

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", model.NewStageError(model.FailureDownload,
			fmt.Errorf("fetch %s: %w", url, err))
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", model.NewStageError(model.FailureDownload,
			fmt.Errorf("fetch %s: read extracted info: %w", url, err))
	}

	path, ok := downloadedPath(info)
	if !ok {
		return "", model.NewStageError(model.FailureDownload,
			fmt.Errorf("fetch %s: no output filename reported", url))
	}

	if title, ok := downloadedTitle(info); ok {
		log.Printf("Downloaded: %s (%s)", path, title)
	} else {
		log.Printf("Downloaded: %s", path)
	}
	return path, nil
}

// downloadedPath picks the first reported output filename from yt-dlp's
// extracted info.
func downloadedPath(info []*ytdlp.ExtractedInfo) (string, bool) {
	for _, entry := range info {
		if entry == nil || entry.Filename == nil || *entry.Filename == "" {
			continue
		}
		return *entry.Filename, true
	}
	return "", false
}

// downloadedTitle picks the first non-empty video title, for log lines only.
func downloadedTitle(info []*ytdlp.ExtractedInfo) (string, bool) {
	for _, entry := range info {
		if entry == nil || entry.Title == nil || *entry.Title == "" {
			continue
		}
		return *entry.Title, true
	}
	return "", false
}
