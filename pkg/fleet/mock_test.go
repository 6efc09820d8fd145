package fleet

import (
	"context"
	"iter"

	"github.com/younsl/shotty/internal/models"
)

// mockProvider is an in-memory Provider that records every call it receives
type mockProvider struct {
	instances []models.InstanceInfo
	volumes   map[string][]models.VolumeInfo   // instance ID -> volumes
	snapshots map[string][]models.SnapshotInfo // volume ID -> snapshots, most recent first

	listErr     error
	stopErrs    map[string]error
	startErrs   map[string]error
	waitErrs    map[string]error
	snapshotErr error

	queries []string // project of each Instances query
	calls   []string
}

func (m *mockProvider) Instances(ctx context.Context, project string) iter.Seq2[models.InstanceInfo, error] {
	return func(yield func(models.InstanceInfo, error) bool) {
		m.queries = append(m.queries, project)
		if m.listErr != nil {
			yield(models.InstanceInfo{}, m.listErr)
			return
		}
		for _, instance := range m.instances {
			if project != "" && !hasProject(instance, project) {
				continue
			}
			if !yield(instance, nil) {
				return
			}
		}
	}
}

func hasProject(instance models.InstanceInfo, project string) bool {
	v, ok := instance.Tags.Get(models.ProjectTagKey)
	return ok && v == project
}

func (m *mockProvider) Volumes(ctx context.Context, instanceID string) iter.Seq2[models.VolumeInfo, error] {
	return func(yield func(models.VolumeInfo, error) bool) {
		for _, volume := range m.volumes[instanceID] {
			if !yield(volume, nil) {
				return
			}
		}
	}
}

func (m *mockProvider) Snapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error) {
	return m.snapshots[volumeID], nil
}

func (m *mockProvider) StopInstance(ctx context.Context, instanceID string) error {
	m.calls = append(m.calls, "stop "+instanceID)
	return m.stopErrs[instanceID]
}

func (m *mockProvider) StartInstance(ctx context.Context, instanceID string) error {
	m.calls = append(m.calls, "start "+instanceID)
	return m.startErrs[instanceID]
}

func (m *mockProvider) WaitUntilStopped(ctx context.Context, instanceID string) error {
	m.calls = append(m.calls, "wait-stopped "+instanceID)
	return m.waitErrs[instanceID]
}

func (m *mockProvider) WaitUntilRunning(ctx context.Context, instanceID string) error {
	m.calls = append(m.calls, "wait-running "+instanceID)
	return m.waitErrs[instanceID]
}

func (m *mockProvider) CreateSnapshot(ctx context.Context, volumeID, description string) (models.SnapshotInfo, error) {
	m.calls = append(m.calls, "snapshot "+volumeID+" "+description)
	if m.snapshotErr != nil {
		return models.SnapshotInfo{}, m.snapshotErr
	}
	return models.SnapshotInfo{SnapshotID: "snap-" + volumeID, VolumeID: volumeID, State: models.SnapshotStatePending}, nil
}
