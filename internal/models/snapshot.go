package models

import "time"

// Snapshot states reported by EC2
const (
	SnapshotStatePending   = "pending"
	SnapshotStateCompleted = "completed"
	SnapshotStateError     = "error"
)

// SnapshotInfo represents an EBS snapshot of a volume
type SnapshotInfo struct {
	SnapshotID string
	VolumeID   string
	State      string
	Progress   string // e.g. "100%"
	StartTime  time.Time
}

// IsCompleted reports whether the snapshot has finished
func (s SnapshotInfo) IsCompleted() bool {
	return s.State == SnapshotStateCompleted
}

// IsPending reports whether the snapshot is still in flight
func (s SnapshotInfo) IsPending() bool {
	return s.State == SnapshotStatePending
}
