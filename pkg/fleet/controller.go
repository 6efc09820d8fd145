package fleet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/formatter"
)

// SnapshotDescription is attached to every snapshot the workflow creates
const SnapshotDescription = "Created by SnapshotAlyzer30000"

// Controller runs the shotty commands against a Provider
type Controller struct {
	provider Provider
	out      io.Writer
	location *time.Location
}

// Option configures a Controller
type Option func(*Controller)

// WithLocation sets the time zone snapshot start times are printed in.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		c.location = loc
	}
}

// New creates a Controller writing its report to out
func New(provider Provider, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		out:      out,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListInstances prints one line per instance
func (c *Controller) ListInstances(ctx context.Context, project string) error {
	for instance, err := range c.provider.Instances(ctx, project) {
		if err != nil {
			return err
		}
		c.println(formatter.InstanceLine(instance))
	}
	return nil
}

// ListVolumes prints one line per volume attached to each instance
func (c *Controller) ListVolumes(ctx context.Context, project string) error {
	for instance, err := range c.provider.Instances(ctx, project) {
		if err != nil {
			return err
		}
		for volume, err := range c.provider.Volumes(ctx, instance.InstanceID) {
			if err != nil {
				return err
			}
			c.println(formatter.VolumeLine(instance, volume))
		}
	}
	return nil
}

// ListSnapshots prints the snapshots of every volume of each instance.
// Unless all is set, printing for a volume stops after the first completed
// snapshot; newer pending or failed snapshots are printed before it.
func (c *Controller) ListSnapshots(ctx context.Context, project string, all bool) error {
	for instance, err := range c.provider.Instances(ctx, project) {
		if err != nil {
			return err
		}
		for volume, err := range c.provider.Volumes(ctx, instance.InstanceID) {
			if err != nil {
				return err
			}

			snapshots, err := c.provider.Snapshots(ctx, volume.VolumeID)
			if err != nil {
				return err
			}

			for _, snapshot := range snapshots {
				c.println(formatter.SnapshotLine(instance, volume, snapshot, c.location))
				if snapshot.IsCompleted() && !all {
					break
				}
			}
		}
	}
	return nil
}

// StopInstances requests a stop of every instance without waiting.
// A client error on one instance is reported inline and the batch continues.
func (c *Controller) StopInstances(ctx context.Context, project string) error {
	return c.eachInstance(ctx, project, "stop", "Stopping", c.provider.StopInstance)
}

// StartInstances requests a start of every instance without waiting.
// A client error on one instance is reported inline and the batch continues.
func (c *Controller) StartInstances(ctx context.Context, project string) error {
	return c.eachInstance(ctx, project, "start", "Starting", c.provider.StartInstance)
}

func (c *Controller) eachInstance(ctx context.Context, project, verb, progress string, action func(context.Context, string) error) error {
	for instance, err := range c.provider.Instances(ctx, project) {
		if err != nil {
			return err
		}

		id := instance.InstanceID
		c.printf("%s %s...\n", progress, id)

		actionErr := action(ctx, id)
		if actionErr == nil {
			continue
		}

		var clientErr *models.ClientError
		if !errors.As(actionErr, &clientErr) {
			return fmt.Errorf("error trying to %s %s: %w", verb, id, actionErr)
		}

		slog.Debug("instance request rejected",
			slog.String("instance", id),
			slog.String("action", verb),
			slog.String("code", clientErr.Code))
		c.printf(" Could not %s %s. %s\n", verb, id, clientErr)
	}
	return nil
}

// SnapshotInstances stops each instance, snapshots every attached volume that
// has no snapshot in progress, and starts the instance again. Instances are
// handled one at a time and the first error aborts the batch.
func (c *Controller) SnapshotInstances(ctx context.Context, project string) error {
	for instance, err := range c.provider.Instances(ctx, project) {
		if err != nil {
			return err
		}

		id := instance.InstanceID

		c.printf("Stopping %s...\n", id)
		if err := c.provider.StopInstance(ctx, id); err != nil {
			return fmt.Errorf("error stopping %s: %w", id, err)
		}
		if err := c.provider.WaitUntilStopped(ctx, id); err != nil {
			return err
		}

		for volume, err := range c.provider.Volumes(ctx, id) {
			if err != nil {
				return err
			}
			if err := c.snapshotVolume(ctx, volume); err != nil {
				return err
			}
		}

		c.printf("Starting %s...\n", id)
		if err := c.provider.StartInstance(ctx, id); err != nil {
			return fmt.Errorf("error starting %s: %w", id, err)
		}
		if err := c.provider.WaitUntilRunning(ctx, id); err != nil {
			return err
		}
	}

	c.println("Jobs done!!")
	return nil
}

func (c *Controller) snapshotVolume(ctx context.Context, volume models.VolumeInfo) error {
	pending, err := c.hasPendingSnapshot(ctx, volume.VolumeID)
	if err != nil {
		return err
	}
	if pending {
		c.printf("  Skipping %s, snapshot already in progress\n", volume.VolumeID)
		return nil
	}

	c.printf("  Creating snapshot of %s\n", volume.VolumeID)
	snapshot, err := c.provider.CreateSnapshot(ctx, volume.VolumeID, SnapshotDescription)
	if err != nil {
		return err
	}

	slog.Debug("snapshot requested",
		slog.String("volume", volume.VolumeID),
		slog.String("snapshot", snapshot.SnapshotID))
	return nil
}

// hasPendingSnapshot reports whether any snapshot of the volume is still in flight
func (c *Controller) hasPendingSnapshot(ctx context.Context, volumeID string) (bool, error) {
	snapshots, err := c.provider.Snapshots(ctx, volumeID)
	if err != nil {
		return false, err
	}
	for _, snapshot := range snapshots {
		if snapshot.IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (c *Controller) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
