package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunDirName(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		at       time.Time
		expected string
	}{
		{
			name:     "default base",
			base:     "output",
			at:       time.Date(2026, 8, 26, 14, 30, 5, 0, time.UTC),
			expected: "output_20260826_143005",
		},
		{
			name:     "custom base",
			base:     "runs",
			at:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			expected: "runs_20250102_030405",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RunDirName(tt.base, tt.at); got != tt.expected {
				t.Errorf("RunDirName(%q) = %q, expected %q", tt.base, got, tt.expected)
			}
		})
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "chunks")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Creating again is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error on existing directory, got %v", err)
	}
}
