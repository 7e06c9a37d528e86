package store

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	dfnats "github.com/dayfocus/dayfocus/internal/nats"
	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/nats-io/nats.go/jetstream"
)

func newTestKV(t *testing.T) (*KV, jetstream.KeyValue) {
	t.Helper()
	ctx := context.Background()

	ns, err := dfnats.StartEmbedded(t.TempDir())
	if err != nil {
		t.Fatalf("failed to start NATS: %v", err)
	}
	t.Cleanup(ns.Shutdown)

	nc, err := dfnats.ConnectInProcess(ns)
	if err != nil {
		t.Fatalf("failed to connect to NATS: %v", err)
	}
	t.Cleanup(nc.Close)

	js, err := dfnats.NewJetStream(nc)
	if err != nil {
		t.Fatalf("failed to create JetStream: %v", err)
	}

	bucket, err := dfnats.TasksBucket(ctx, js)
	if err != nil {
		t.Fatalf("failed to create KV bucket: %v", err)
	}

	return NewKV(bucket), bucket
}

func TestKVSeedsOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestKV(t)

	tasks, err := s.LoadAll(ctx, "user-a")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(tasks) != 6 {
		t.Fatalf("expected 6 seed tasks, got %d", len(tasks))
	}

	wantIDs := []string{"1", "2", "3", "4", "5", "6"}
	for i, id := range wantIDs {
		if tasks[i].ID != id {
			t.Errorf("seed task %d: expected id %s, got %s", i, id, tasks[i].ID)
		}
	}

	today := task.FormatDate(time.Now())
	if tasks[0].Date != today {
		t.Errorf("expected first seed task dated today (%s), got %s", today, tasks[0].Date)
	}
	if tasks[2].Status != task.StatusCompleted {
		t.Errorf("expected seed task 3 completed, got %s", tasks[2].Status)
	}

	// The seed is persisted, so a second load returns the same collection.
	again, err := s.LoadAll(ctx, "user-a")
	if err != nil {
		t.Fatalf("second LoadAll failed: %v", err)
	}
	if !reflect.DeepEqual(tasks, again) {
		t.Error("expected stable collection across loads after seeding")
	}
}

func TestKVSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestKV(t)

	now := time.Now().UTC().Truncate(time.Second)
	tasks := []task.Task{
		{ID: "t1", Title: "Water plants", Date: "2024-06-01", Status: task.StatusOpen, SortIndex: 1, CreatedAt: now, UpdatedAt: now},
		{ID: "t2", Title: "Book flights", Date: "2024-06-02", Status: task.StatusOpen, SortIndex: 1, Prerequisites: []string{"t1"}, CreatedAt: now, UpdatedAt: now},
	}

	if err := s.SaveAll(ctx, "user-b", tasks); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	loaded, err := s.LoadAll(ctx, "user-b")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if !reflect.DeepEqual(tasks, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", tasks, loaded)
	}
}

func TestKVIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestKV(t)

	if err := s.SaveAll(ctx, "alice@example.com", []task.Task{{ID: "a1", Title: "Alice only", Date: "2024-06-01", Status: task.StatusOpen, SortIndex: 1}}); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}
	if err := s.SaveAll(ctx, "bob@example.com", []task.Task{{ID: "b1", Title: "Bob only", Date: "2024-06-01", Status: task.StatusOpen, SortIndex: 1}}); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	aliceTasks, err := s.LoadAll(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(aliceTasks) != 1 || aliceTasks[0].ID != "a1" {
		t.Errorf("expected alice's collection untouched by bob's writes, got %+v", aliceTasks)
	}
}

func TestKVDegradesToSeedOnCorruptEntry(t *testing.T) {
	ctx := context.Background()
	s, bucket := newTestKV(t)

	if _, err := bucket.Put(ctx, UserKey("user-c"), []byte("{not json")); err != nil {
		t.Fatalf("failed to plant corrupt entry: %v", err)
	}

	tasks, err := s.LoadAll(ctx, "user-c")
	if err != nil {
		t.Fatalf("LoadAll should absorb corrupt data, got error: %v", err)
	}
	if len(tasks) != 6 {
		t.Errorf("expected seed fallback of 6 tasks, got %d", len(tasks))
	}
}

func TestUserKey(t *testing.T) {
	got := UserKey("alice@example.com")
	if !strings.HasPrefix(got, "tasks.") {
		t.Errorf("expected tasks. prefix, got %s", got)
	}
	if strings.ContainsAny(got, "@ ") {
		t.Errorf("key must be NATS-safe, got %s", got)
	}
	if UserKey("107534123456789") != UserKey("107534123456789") {
		t.Error("key derivation must be deterministic")
	}
	if got := UserKey(""); got != "tasks.anonymous" {
		t.Errorf("expected anonymous fallback, got %s", got)
	}
}
