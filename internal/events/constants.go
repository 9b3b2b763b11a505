package events

// Event type constants
const (
	// Before events may be cancelled by a listener to veto the change
	EventTypeBeforeRecordToggle EventType = "before_record_toggle"
	EventTypeBeforeRecordDelete EventType = "before_record_delete"

	EventTypeAfterRecordCreate EventType = "after_record_create"
	EventTypeAfterRecordToggle EventType = "after_record_toggle"
	EventTypeAfterRecordDelete EventType = "after_record_delete"
)

// Priority levels for listener order
const (
	PriorityRules    = 100 // House rules that may veto changes
	PriorityDefault  = 200
	PriorityObserver = 500 // Audit and cache listeners
)
