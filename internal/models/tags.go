package models

const (
	// ProjectTagKey is the tag used to group instances
	ProjectTagKey = "Project"

	// NoProject is displayed when an instance has no Project tag
	NoProject = "<no project>"
)

// Tags is a resource tag set keyed by tag name
type Tags map[string]string

// Get returns the value for key and whether it was present
func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// GetDefault returns the value for key, or def when the key is missing
func (t Tags) GetDefault(key, def string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return def
}
