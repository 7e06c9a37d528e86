package store

import (
	"context"
	"sync"
	"time"

	"github.com/dayfocus/dayfocus/internal/task"
)

// Memory is an in-process Store for tests and ephemeral runs. Unlike KV it
// propagates injected failures verbatim, which is how rollback paths get
// exercised.
type Memory struct {
	mu    sync.Mutex
	users map[string][]task.Task
	now   func() time.Time

	// LoadErr and SaveErr, when set, fail the corresponding operation.
	LoadErr error
	SaveErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users: make(map[string][]task.Task),
		now:   time.Now,
	}
}

// SetClock overrides the clock used for seed data.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// LoadAll returns a deep copy of the user's collection, seeding on first
// access like the durable store.
func (m *Memory) LoadAll(_ context.Context, userID string) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}

	tasks, ok := m.users[userID]
	if !ok {
		tasks = Seed(m.now())
		m.users[userID] = task.CloneAll(tasks)
	}
	return task.CloneAll(tasks), nil
}

// SaveAll replaces the user's collection with a deep copy of tasks.
func (m *Memory) SaveAll(_ context.Context, userID string, tasks []task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.users[userID] = task.CloneAll(tasks)
	return nil
}
