package types

import "time"

// History actions recorded for every mutating call.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// HistoryEntry is an immutable copy of a record at the moment of a create,
// update or delete. For updates Record holds the pre-update values.
type HistoryEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Record    any       `json:"record"`
}

// TrashEntry is an immutable copy of a deleted record.
type TrashEntry struct {
	DeletedAt time.Time `json:"deleted_timestamp"`
	Record    any       `json:"record"`
}
