// Package store persists per-user task collections. A collection is always
// read and written whole; the repository layer owns the read-modify-write
// cycle on top.
package store

import (
	"context"

	"github.com/dayfocus/dayfocus/internal/task"
)

// Store is the per-user persistence contract. Implementations partition
// strictly by user id; no task is visible across collections.
//
// LoadAll returns the user's full collection, seeding it with example data
// on first access. SaveAll replaces the stored collection. Both return data
// the caller owns outright.
type Store interface {
	LoadAll(ctx context.Context, userID string) ([]task.Task, error)
	SaveAll(ctx context.Context, userID string, tasks []task.Task) error
}
