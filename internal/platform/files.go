package platform

import (
	"fmt"
	"os"
	"time"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// RunDirTimeFormat is the timestamp suffix of a run directory name.
const RunDirTimeFormat = "20060102_150405"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RunDirName derives the run directory name for a run starting at now:
// "<base>_<YYYYMMDD_HHMMSS>".
func RunDirName(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s", base, now.Format(RunDirTimeFormat))
}

// NewRunDir creates and returns a timestamped run directory under the
// current working directory. The directory is never cleaned up; every
// artifact of the run lives inside it.
func NewRunDir(base string) (string, error) {
	name := RunDirName(base, time.Now())
	if err := os.MkdirAll(name, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create run directory %s: %w", name, err)
	}
	return name, nil
}
