package model

// Package model defines domain data structures used across the app: pair
// processing tasks, pipeline status enums, and typed stage failures. Statuses
// follow explicit state transitions driven by the pipeline runner.
