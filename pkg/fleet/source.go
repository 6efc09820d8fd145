package fleet

import (
	"context"
	"iter"

	"github.com/younsl/shotty/internal/models"
)

// InstanceSource lists instances and changes their power state
type InstanceSource interface {
	// Instances yields all instances, or only those tagged Project=project
	// when project is non-empty. Each call issues a fresh query.
	Instances(ctx context.Context, project string) iter.Seq2[models.InstanceInfo, error]
	StopInstance(ctx context.Context, instanceID string) error
	StartInstance(ctx context.Context, instanceID string) error
	WaitUntilStopped(ctx context.Context, instanceID string) error
	WaitUntilRunning(ctx context.Context, instanceID string) error
}

// VolumeSource lists the volumes attached to an instance
type VolumeSource interface {
	Volumes(ctx context.Context, instanceID string) iter.Seq2[models.VolumeInfo, error]
}

// SnapshotSource lists and creates volume snapshots
type SnapshotSource interface {
	// Snapshots returns the snapshots of a volume, most recent first
	Snapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error)
	CreateSnapshot(ctx context.Context, volumeID, description string) (models.SnapshotInfo, error)
}

// Provider is everything the controller needs from the cloud
type Provider interface {
	InstanceSource
	VolumeSource
	SnapshotSource
}
