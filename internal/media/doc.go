package media

// Package media implements the video processing stages on top of the ffmpeg
// and ffprobe binaries: input probing, duration reconciliation of the bottom
// clip, vertical stacking of a (top, bottom) pair, and fixed-length chunking
// of the rendered composite. Commands are assembled as argument slices and
// executed with captured stderr for error reporting.
