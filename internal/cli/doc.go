package cli

// Package cli hosts the interactive top-level menu. The menu loop is a pure
// dispatch function over an explicit input source and output writer, so run
// modes can be exercised with scripted input in tests.
