package domain

// Source records where a topic or blog title came from.
type Source string

const (
	SourceManual    Source = "manual"
	SourceWebhook   Source = "webhook"
	SourceRequested Source = "requested"
	SourceGenerated Source = "generated"
)

// Valid reports whether the source is one of the known values.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceWebhook, SourceRequested, SourceGenerated:
		return true
	}
	return false
}

func (s Source) String() string { return string(s) }

// Status is the lifecycle state of a topic or blog title.
// Rows are never hard-deleted; a delete sets StatusDeleted so that
// used_post_id audit history survives.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDeleted
}

func (s Status) String() string { return string(s) }
