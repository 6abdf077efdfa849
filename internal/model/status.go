package model

// PairStatus represents the status of a pair processing task
type PairStatus string

const (
	// PairStatusPending means the pair is queued but not started
	PairStatusPending PairStatus = "Pending"

	// PairStatusDownloading means one of the two source videos is downloading
	PairStatusDownloading PairStatus = "Downloading"

	// PairStatusCombining means the two videos are being stacked and rendered
	PairStatusCombining PairStatus = "Combining"

	// PairStatusChunking means the combined video is being split into chunks
	PairStatusChunking PairStatus = "Chunking"

	// PairStatusCompleted means the pair finished successfully
	PairStatusCompleted PairStatus = "Completed"

	// PairStatusFailed means a stage failed and the pair was skipped
	PairStatusFailed PairStatus = "Failed"
)

// String returns the string representation of PairStatus
func (ps PairStatus) String() string {
	return string(ps)
}

// IsActive returns true if the pair is in an active processing state
func (ps PairStatus) IsActive() bool {
	return ps == PairStatusDownloading || ps == PairStatusCombining || ps == PairStatusChunking
}

// IsFinished returns true if the pair is in a terminal state
func (ps PairStatus) IsFinished() bool {
	return ps == PairStatusCompleted || ps == PairStatusFailed
}
