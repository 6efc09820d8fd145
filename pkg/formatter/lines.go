package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/younsl/shotty/internal/models"
)

// separator joins the fields of one report line
const separator = ", "

// SnapshotTimeLayout matches the C locale date/time representation
const SnapshotTimeLayout = time.ANSIC

// FormatSize renders a volume size in GiB, e.g. "8GiB"
func FormatSize(sizeGiB int) string {
	return fmt.Sprintf("%dGiB", sizeGiB)
}

// FormatEncrypted renders the encryption flag of a volume
func FormatEncrypted(encrypted bool) string {
	if encrypted {
		return "Encrypted"
	}
	return "Not Encrypted"
}

// InstanceLine formats one line of the instance report
func InstanceLine(i models.InstanceInfo) string {
	return strings.Join([]string{
		i.InstanceID,
		i.InstanceType,
		i.AvailabilityZone,
		i.State,
		i.PrivateDNSName,
		i.Project(),
	}, separator)
}

// VolumeLine formats one line of the volume report
func VolumeLine(i models.InstanceInfo, v models.VolumeInfo) string {
	return strings.Join([]string{
		v.VolumeID,
		i.InstanceID,
		v.State,
		FormatSize(v.Size),
		FormatEncrypted(v.Encrypted),
		i.Project(),
	}, separator)
}

// SnapshotLine formats one line of the snapshot report.
// The start time is rendered in loc.
func SnapshotLine(i models.InstanceInfo, v models.VolumeInfo, s models.SnapshotInfo, loc *time.Location) string {
	return strings.Join([]string{
		s.SnapshotID,
		v.VolumeID,
		i.InstanceID,
		s.State,
		s.Progress,
		s.StartTime.In(loc).Format(SnapshotTimeLayout),
		i.Project(),
	}, separator)
}
