package download

// Package download implements the video fetch stage built on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). It resolves the highest-resolution
// stream for a URL and saves it under the run directory with host-default
// (restricted) naming.
