package playlist

// Package playlist resolves YouTube playlist URLs into ordered video URL
// lists and pairs two lists positionally for the playlist run mode.
