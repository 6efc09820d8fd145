package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/younsl/shotty/internal/models"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{0, "0GiB"},
		{8, "8GiB"},
		{16384, "16384GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.size))
	}
}

func TestFormatEncrypted(t *testing.T) {
	assert.Equal(t, "Encrypted", FormatEncrypted(true))
	assert.Equal(t, "Not Encrypted", FormatEncrypted(false))
}

func TestInstanceLine(t *testing.T) {
	i := models.InstanceInfo{
		InstanceID:       "i-1",
		InstanceType:     "t3.micro",
		AvailabilityZone: "us-east-1a",
		State:            "running",
		PrivateDNSName:   "ip-10-0-0-1.ec2.internal",
		Tags:             models.Tags{"Project": "demo"},
	}

	assert.Equal(t, "i-1, t3.micro, us-east-1a, running, ip-10-0-0-1.ec2.internal, demo", InstanceLine(i))

	i.Tags = nil
	i.PrivateDNSName = ""
	assert.Equal(t, "i-1, t3.micro, us-east-1a, running, , <no project>", InstanceLine(i))
}

func TestVolumeLine(t *testing.T) {
	i := models.InstanceInfo{InstanceID: "i-1"}
	v := models.VolumeInfo{VolumeID: "vol-1", InstanceID: "i-1", State: "in-use", Size: 8}

	assert.Equal(t, "vol-1, i-1, in-use, 8GiB, Not Encrypted, <no project>", VolumeLine(i, v))
}

func TestSnapshotLine(t *testing.T) {
	i := models.InstanceInfo{InstanceID: "i-1", Tags: models.Tags{"Project": "demo"}}
	v := models.VolumeInfo{VolumeID: "vol-1"}
	s := models.SnapshotInfo{
		SnapshotID: "snap-1",
		State:      "completed",
		Progress:   "100%",
		StartTime:  time.Date(2026, 10, 4, 13, 5, 9, 0, time.UTC),
	}

	assert.Equal(t, "snap-1, vol-1, i-1, completed, 100%, Sun Oct  4 13:05:09 2026, demo", SnapshotLine(i, v, s, time.UTC))
}
