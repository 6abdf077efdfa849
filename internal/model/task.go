package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task ID constants
const (
	TaskIDPrefix = "pair-"
)

// PairTask represents one (top, bottom) video pair moving through the
// fetch -> stack -> chunk pipeline.
type PairTask struct {
	ID           string
	TopURL       string
	BottomURL    string
	Status       PairStatus
	TopPath      string   // path to downloaded top video
	BottomPath   string   // path to downloaded bottom video
	CombinedPath string   // path to the rendered composite
	ChunkPaths   []string // chunk files produced from the composite
	LastError    string   // last error message if any
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewPairTask creates a pending pair task for the given URLs
func NewPairTask(topURL, bottomURL string) *PairTask {
	return &PairTask{
		ID:        generateTaskID(),
		TopURL:    topURL,
		BottomURL: bottomURL,
		Status:    PairStatusPending,
		StartedAt: time.Now(),
	}
}

// Fail marks the task failed with the given error
func (t *PairTask) Fail(err error) {
	t.Status = PairStatusFailed
	if err != nil {
		t.LastError = err.Error()
	}
	t.FinishedAt = time.Now()
}

// Complete marks the task finished successfully
func (t *PairTask) Complete() {
	t.Status = PairStatusCompleted
	t.FinishedAt = time.Now()
}

// GetDisplayName returns a compact label for log lines, preferring the
// downloaded top file name over the raw URL.
func (t *PairTask) GetDisplayName() string {
	if t.TopPath != "" {
		parts := strings.FieldsFunc(t.TopPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name := parts[len(parts)-1]
			if idx := strings.LastIndex(name, "."); idx > 0 {
				name = name[:idx]
			}
			return name
		}
	}
	return t.TopURL
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
