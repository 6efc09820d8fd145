package models

// InstanceInfo represents EC2 instance information
type InstanceInfo struct {
	InstanceID       string
	InstanceType     string
	AvailabilityZone string
	State            string // running, stopped, pending, stopping, terminated ...
	PrivateDNSName   string
	Tags             Tags
}

// Project returns the Project tag value or the display default
func (i InstanceInfo) Project() string {
	return i.Tags.GetDefault(ProjectTagKey, NoProject)
}
