package platform

// Package platform contains filesystem glue shared by the pipeline:
// directory creation and the timestamped run-directory naming scheme.
