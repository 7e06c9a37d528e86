package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dayfocus/dayfocus/internal/logger"
	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/gosimple/slug"
	"github.com/nats-io/nats.go/jetstream"
)

// KV persists collections in a JetStream key/value bucket, one entry per
// user. Durability is best-effort: storage failures are logged and absorbed
// rather than surfaced, so a full disk or corrupt entry never breaks the
// caller. A failed read degrades to the seed set, a failed write keeps the
// in-memory state authoritative until the next successful save.
type KV struct {
	kv  jetstream.KeyValue
	now func() time.Time
}

// NewKV wraps a JetStream key/value bucket.
func NewKV(kv jetstream.KeyValue) *KV {
	return &KV{kv: kv, now: time.Now}
}

// UserKey derives the bucket key for a user id. Ids are opaque and may
// contain characters NATS keys reject, so they are slugified first.
func UserKey(userID string) string {
	if s := slug.Make(userID); s != "" {
		return "tasks." + s
	}
	return "tasks.anonymous"
}

// LoadAll returns the user's collection, seeding and persisting the example
// set on first access.
func (s *KV) LoadAll(ctx context.Context, userID string) ([]task.Task, error) {
	key := UserKey(userID)

	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		logger.Info("No stored tasks for user %s, seeding", userID)
		tasks := Seed(s.now())
		if err := s.SaveAll(ctx, userID, tasks); err != nil {
			logger.Warn("Failed to persist seed tasks for %s: %v", userID, err)
		}
		return tasks, nil
	}
	if err != nil {
		logger.Warn("Failed to read tasks for %s, using seed data: %v", userID, err)
		return Seed(s.now()), nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(entry.Value(), &tasks); err != nil {
		logger.Warn("Stored tasks for %s are unreadable, using seed data: %v", userID, err)
		return Seed(s.now()), nil
	}
	return tasks, nil
}

// SaveAll replaces the user's stored collection. Errors are logged, never
// returned.
func (s *KV) SaveAll(ctx context.Context, userID string, tasks []task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		logger.Error("Failed to serialize tasks for %s: %v", userID, err)
		return nil
	}

	if _, err := s.kv.Put(ctx, UserKey(userID), data); err != nil {
		logger.Error("Failed to store tasks for %s: %v", userID, err)
		return nil
	}

	logger.Debug("Stored %d tasks for user %s", len(tasks), userID)
	return nil
}
