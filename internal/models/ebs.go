package models

// VolumeInfo represents an EBS volume attached to an instance
type VolumeInfo struct {
	VolumeID   string
	InstanceID string
	State      string
	Size       int // GiB
	Encrypted  bool
}
