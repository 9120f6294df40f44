package mirror

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *stubStore) record(call string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return s.err
}

func (s *stubStore) Upsert(table, id string, doc map[string]any) error {
	return s.record("upsert " + table + ":" + id)
}

func (s *stubStore) Delete(table, id string) error {
	return s.record("delete " + table + ":" + id)
}

func (s *stubStore) Increment(table, id, field string, delta int) error {
	return s.record(fmt.Sprintf("increment %s:%s %s %d", table, id, field, delta))
}

func (s *stubStore) NoteFiles(noteID string) ([]map[string]any, error) {
	return nil, nil
}

func (s *stubStore) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func TestWriterAppliesOpsInOrder(t *testing.T) {
	store := &stubStore{}
	writer := NewWriter(store, 16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go writer.Start(ctx)

	writer.Upsert(TableNotes, "n1", map[string]any{"title": "a"})
	writer.Increment(TableNotes, "n1", "likes", 1)
	writer.Delete(TableNotes, "n1")

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 3
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{
		"upsert notes:n1",
		"increment notes:n1 likes 1",
		"delete notes:n1",
	}, store.snapshot())
}

func TestWriterSwallowsStoreErrors(t *testing.T) {
	store := &stubStore{err: errors.New("mirror down")}
	writer := NewWriter(store, 16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go writer.Start(ctx)

	// Failures are logged, never surfaced; later ops still apply.
	writer.Upsert(TableUsers, "u1", map[string]any{"name": "alice"})
	writer.Delete(TableUsers, "u1")

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestWriterDropsWhenFull(t *testing.T) {
	store := &stubStore{}
	// No consumer is running, so the buffer fills and the surplus op
	// is dropped instead of blocking the caller.
	writer := NewWriter(store, 1)

	done := make(chan struct{})
	go func() {
		writer.Upsert(TableNotes, "n1", nil)
		writer.Upsert(TableNotes, "n2", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full buffer")
	}
	assert.Len(t, writer.ops, 1)
}
