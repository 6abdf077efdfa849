package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/oxidamotion/Tikauto/internal/config"
	"github.com/oxidamotion/Tikauto/internal/download"
	"github.com/oxidamotion/Tikauto/internal/media"
	"github.com/oxidamotion/Tikauto/internal/model"
	"github.com/oxidamotion/Tikauto/internal/platform"
	"github.com/oxidamotion/Tikauto/internal/playlist"
)

// Processor defines the media stages the runner sequences.
type Processor interface {
	Stack(ctx context.Context, topPath, bottomPath, outPath string) error
	SplitChunks(ctx context.Context, srcPath, outDir string) ([]string, error)
}

// Resolver defines playlist URL resolution.
type Resolver interface {
	Resolve(ctx context.Context, url string) ([]string, error)
}

// Runner sequences the pipeline stages for pairs of video URLs. All work is
// strictly sequential and blocking; a stage failure aborts only the current
// pair, never the run.
type Runner struct {
	cfg      *config.Config
	fetcher  download.Fetcher
	media    Processor
	resolver Resolver
}

// NewRunner wires a runner with the production fetch, media, and playlist
// services.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:      cfg,
		fetcher:  download.NewService(),
		media:    media.NewService(cfg),
		resolver: playlist.NewResolver(),
	}
}

// ProcessPair runs fetch -> stack -> chunk for one (top, bottom) URL pair
// inside dir. The returned task carries the artifact paths and, on failure,
// the stage that aborted the pair.
func (r *Runner) ProcessPair(ctx context.Context, topURL, bottomURL, dir string) *model.PairTask {
	task := model.NewPairTask(topURL, bottomURL)

	task.Status = model.PairStatusDownloading
	topPath, err := r.fetcher.Fetch(ctx, topURL, dir)
	if err != nil {
		log.Printf("Failed to download top video: %v", err)
		log.Printf("Skipping pair %s", task.ID)
		task.Fail(err)
		return task
	}
	task.TopPath = topPath

	bottomPath, err := r.fetcher.Fetch(ctx, bottomURL, dir)
	if err != nil {
		log.Printf("Failed to download bottom video: %v", err)
		log.Printf("Skipping pair %s", task.ID)
		task.Fail(err)
		return task
	}
	task.BottomPath = bottomPath

	task.Status = model.PairStatusCombining
	combinedPath := filepath.Join(dir, config.CombinedFileName)
	if err := r.media.Stack(ctx, topPath, bottomPath, combinedPath); err != nil {
		log.Printf("Failed to combine videos: %v", err)
		log.Printf("Skipping pair %s", task.ID)
		task.Fail(err)
		return task
	}
	task.CombinedPath = combinedPath

	task.Status = model.PairStatusChunking
	chunksDir := filepath.Join(dir, config.ChunksDirName)
	if err := platform.CreateDirectoryIfNotExists(chunksDir); err != nil {
		err = model.NewStageError(model.FailureChunking,
			fmt.Errorf("create chunks directory: %w", err))
		log.Printf("Failed to split video: %v", err)
		task.Fail(err)
		return task
	}

	chunks, err := r.media.SplitChunks(ctx, combinedPath, chunksDir)
	task.ChunkPaths = chunks
	if err != nil {
		// Chunks rendered before the failure stay on disk and in the task.
		log.Printf("Failed to split video: %v", err)
		task.Fail(err)
		return task
	}

	task.Complete()
	return task
}

// SingleRun creates a fresh run directory and processes one manually entered
// pair in it.
func (r *Runner) SingleRun(ctx context.Context, topURL, bottomURL string) (*model.PairTask, error) {
	runDir, err := platform.NewRunDir(r.cfg.OutputBase)
	if err != nil {
		return nil, err
	}
	log.Printf("Run directory: %s", runDir)

	return r.ProcessPair(ctx, topURL, bottomURL, runDir), nil
}

// PlaylistRun resolves two playlists, pairs their videos positionally
// (truncating to the shorter list), and processes each pair in its own
// pair_<index> subdirectory of a fresh run directory.
func (r *Runner) PlaylistRun(ctx context.Context, topPlaylistURL, bottomPlaylistURL string) (RunStats, error) {
	var stats RunStats

	runDir, err := platform.NewRunDir(r.cfg.OutputBase)
	if err != nil {
		return stats, err
	}
	log.Printf("Run directory: %s", runDir)

	topURLs, err := r.resolver.Resolve(ctx, topPlaylistURL)
	if err != nil {
		return stats, fmt.Errorf("resolve top playlist: %w", err)
	}
	bottomURLs, err := r.resolver.Resolve(ctx, bottomPlaylistURL)
	if err != nil {
		return stats, fmt.Errorf("resolve bottom playlist: %w", err)
	}

	log.Printf("Found %d videos in top playlist.", len(topURLs))
	log.Printf("Found %d videos in bottom playlist.", len(bottomURLs))

	pairs := playlist.PairURLs(topURLs, bottomURLs)
	stats.Total = len(pairs)
	for i, p := range pairs {
		log.Printf("Processing pair %d/%d: Top = %s, Bottom = %s", i+1, len(pairs), p.TopURL, p.BottomURL)

		pairDir := filepath.Join(runDir, fmt.Sprintf("%s%d", config.PairDirPrefix, i+1))
		if err := platform.CreateDirectoryIfNotExists(pairDir); err != nil {
			log.Printf("Cannot create pair directory %s: %v", pairDir, err)
			stats.Failed++
			continue
		}

		task := r.ProcessPair(ctx, p.TopURL, p.BottomURL, pairDir)
		if task.Status == model.PairStatusCompleted {
			stats.Succeeded++
			stats.Chunks += len(task.ChunkPaths)
		} else {
			stats.Failed++
		}
	}

	log.Printf("%s", stats.Summary())
	return stats, nil
}
