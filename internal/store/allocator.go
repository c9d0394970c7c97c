package store

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/footadmin/footadmin/pkg/types"
)

// Allocator produces the identity of a new record given the identities
// already in the table.
type Allocator interface {
	Next(existing []types.ID) (types.ID, error)
}

// Sequential allocates max(existing)+1, starting at 1 for an empty table.
// Identities that are not integers are ignored. It is only safe while the
// caller holds the store's write lock.
type Sequential struct{}

func (Sequential) Next(existing []types.ID) (types.ID, error) {
	var max int64
	for _, id := range existing {
		n, err := strconv.ParseInt(string(id), 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return types.ID(strconv.FormatInt(max+1, 10)), nil
}

// UUIDv7 allocates opaque, time-ordered tokens.
type UUIDv7 struct{}

func (UUIDv7) Next(existing []types.ID) (types.ID, error) {
	taken := make(map[types.ID]bool, len(existing))
	for _, id := range existing {
		taken[id] = true
	}
	for range 3 {
		id := types.ID(generateUUID())
		if !taken[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("allocating uuid: collided with existing ids")
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
