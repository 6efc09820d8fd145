package aws

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/utils"
)

const (
	// DefaultMaxWait bounds each wait for an instance state transition
	DefaultMaxWait = 10 * time.Minute

	// Polling delays used by the EC2 instance waiters
	defaultWaitMinDelay = 15 * time.Second
	defaultWaitMaxDelay = 120 * time.Second
)

// ec2API is the subset of *ec2.Client used by EC2Client
type ec2API interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeVolumesAPIClient
	ec2.DescribeSnapshotsAPIClient
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	CreateSnapshot(ctx context.Context, params *ec2.CreateSnapshotInput, optFns ...func(*ec2.Options)) (*ec2.CreateSnapshotOutput, error)
}

// EC2Client struct for EC2 client
type EC2Client struct {
	client ec2API
	region string

	maxWait      time.Duration
	waitMinDelay time.Duration
	waitMaxDelay time.Duration
}

// NewEC2Client creates a new EC2Client bound to the session's account and region
func NewEC2Client(cfg aws.Config) *EC2Client {
	return newEC2Client(ec2.NewFromConfig(cfg), cfg.Region)
}

func newEC2Client(api ec2API, region string) *EC2Client {
	return &EC2Client{
		client:       api,
		region:       region,
		maxWait:      DefaultMaxWait,
		waitMinDelay: defaultWaitMinDelay,
		waitMaxDelay: defaultWaitMaxDelay,
	}
}

// Region returns the region the client talks to
func (c *EC2Client) Region() string {
	return c.region
}

// Instances returns every instance in the region, or only those tagged
// Project=<project> when project is non-empty. Each iteration issues a fresh
// paginated query.
func (c *EC2Client) Instances(ctx context.Context, project string) iter.Seq2[models.InstanceInfo, error] {
	return func(yield func(models.InstanceInfo, error) bool) {
		input := &ec2.DescribeInstancesInput{}
		if project != "" {
			input.Filters = []types.Filter{utils.TagFilter(models.ProjectTagKey, project)}
		}

		slog.Debug("describing instances", slog.String("region", c.region), slog.String("project", project))

		paginator := ec2.NewDescribeInstancesPaginator(c.client, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				yield(models.InstanceInfo{}, fmt.Errorf("error querying EC2 instances: %w", asClientError("DescribeInstances", err)))
				return
			}

			for _, reservation := range page.Reservations {
				for _, instance := range reservation.Instances {
					if !yield(toInstanceInfo(instance), nil) {
						return
					}
				}
			}
		}
	}
}

// Volumes returns the EBS volumes attached to an instance in API order
func (c *EC2Client) Volumes(ctx context.Context, instanceID string) iter.Seq2[models.VolumeInfo, error] {
	return func(yield func(models.VolumeInfo, error) bool) {
		input := &ec2.DescribeVolumesInput{
			Filters: []types.Filter{{
				Name:   aws.String("attachment.instance-id"),
				Values: []string{instanceID},
			}},
		}

		paginator := ec2.NewDescribeVolumesPaginator(c.client, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				yield(models.VolumeInfo{}, fmt.Errorf("error querying EBS volumes of %s: %w", instanceID, asClientError("DescribeVolumes", err)))
				return
			}

			for _, volume := range page.Volumes {
				if !yield(toVolumeInfo(volume, instanceID), nil) {
					return
				}
			}
		}
	}
}

// Snapshots returns the snapshots of a volume, most recent first
func (c *EC2Client) Snapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error) {
	input := &ec2.DescribeSnapshotsInput{
		Filters: []types.Filter{{
			Name:   aws.String("volume-id"),
			Values: []string{volumeID},
		}},
	}

	snapshots := []models.SnapshotInfo{}

	paginator := ec2.NewDescribeSnapshotsPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying snapshots of %s: %w", volumeID, asClientError("DescribeSnapshots", err))
		}

		for _, snapshot := range page.Snapshots {
			snapshots = append(snapshots, toSnapshotInfo(snapshot))
		}
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].StartTime.After(snapshots[j].StartTime)
	})

	return snapshots, nil
}

// StopInstance requests a stop without waiting for it to complete
func (c *EC2Client) StopInstance(ctx context.Context, instanceID string) error {
	_, err := c.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
	})
	return asClientError("StopInstances", err)
}

// StartInstance requests a start without waiting for it to complete
func (c *EC2Client) StartInstance(ctx context.Context, instanceID string) error {
	_, err := c.client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
	})
	return asClientError("StartInstances", err)
}

// WaitUntilStopped blocks until EC2 reports the instance as stopped
func (c *EC2Client) WaitUntilStopped(ctx context.Context, instanceID string) error {
	waiter := ec2.NewInstanceStoppedWaiter(c.client, func(o *ec2.InstanceStoppedWaiterOptions) {
		o.MinDelay = c.waitMinDelay
		o.MaxDelay = c.waitMaxDelay
	})

	input := &ec2.DescribeInstancesInput{InstanceIds: []string{instanceID}}
	if err := waiter.Wait(ctx, input, c.maxWait); err != nil {
		return fmt.Errorf("error waiting for %s to stop: %w", instanceID, asClientError("DescribeInstances", err))
	}
	return nil
}

// WaitUntilRunning blocks until EC2 reports the instance as running
func (c *EC2Client) WaitUntilRunning(ctx context.Context, instanceID string) error {
	waiter := ec2.NewInstanceRunningWaiter(c.client, func(o *ec2.InstanceRunningWaiterOptions) {
		o.MinDelay = c.waitMinDelay
		o.MaxDelay = c.waitMaxDelay
	})

	input := &ec2.DescribeInstancesInput{InstanceIds: []string{instanceID}}
	if err := waiter.Wait(ctx, input, c.maxWait); err != nil {
		return fmt.Errorf("error waiting for %s to run: %w", instanceID, asClientError("DescribeInstances", err))
	}
	return nil
}

// CreateSnapshot requests a new snapshot of a volume
func (c *EC2Client) CreateSnapshot(ctx context.Context, volumeID, description string) (models.SnapshotInfo, error) {
	out, err := c.client.CreateSnapshot(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    aws.String(volumeID),
		Description: aws.String(description),
	})
	if err != nil {
		return models.SnapshotInfo{}, fmt.Errorf("error creating snapshot of %s: %w", volumeID, asClientError("CreateSnapshot", err))
	}

	return models.SnapshotInfo{
		SnapshotID: aws.ToString(out.SnapshotId),
		VolumeID:   aws.ToString(out.VolumeId),
		State:      string(out.State),
		Progress:   aws.ToString(out.Progress),
		StartTime:  aws.ToTime(out.StartTime),
	}, nil
}

func toInstanceInfo(instance types.Instance) models.InstanceInfo {
	info := models.InstanceInfo{
		InstanceID:     aws.ToString(instance.InstanceId),
		InstanceType:   string(instance.InstanceType),
		PrivateDNSName: aws.ToString(instance.PrivateDnsName),
		Tags:           utils.GetTagsMap(instance.Tags),
	}
	if instance.Placement != nil {
		info.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		info.State = string(instance.State.Name)
	}
	return info
}

func toVolumeInfo(volume types.Volume, instanceID string) models.VolumeInfo {
	return models.VolumeInfo{
		VolumeID:   aws.ToString(volume.VolumeId),
		InstanceID: instanceID,
		State:      string(volume.State),
		Size:       utils.SafeDerefInt32(volume.Size),
		Encrypted:  utils.SafeDerefBool(volume.Encrypted),
	}
}

func toSnapshotInfo(snapshot types.Snapshot) models.SnapshotInfo {
	return models.SnapshotInfo{
		SnapshotID: aws.ToString(snapshot.SnapshotId),
		VolumeID:   aws.ToString(snapshot.VolumeId),
		State:      string(snapshot.State),
		Progress:   aws.ToString(snapshot.Progress),
		StartTime:  aws.ToTime(snapshot.StartTime),
	}
}
