package activity

// DefaultListLimit caps listings when no limit is given.
const DefaultListLimit = 50

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	SessionID    string
	MessageID    *int64
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
