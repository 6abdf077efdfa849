package pipeline

// Package pipeline orchestrates the fetch -> stack -> chunk sequence for one
// video pair and drives the two run modes (single pair, paired playlists)
// over a shared timestamped run directory.
