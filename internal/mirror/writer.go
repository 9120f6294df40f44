package mirror

import (
	"context"

	"github.com/labstack/gommon/log"
)

type opKind string

const (
	opUpsert    opKind = "upsert"
	opDelete    opKind = "delete"
	opIncrement opKind = "increment"
)

type op struct {
	kind  opKind
	table string
	id    string
	field string
	delta int
	doc   map[string]any
}

// Writer applies mirror operations asynchronously. Enqueueing never
// blocks the request path: when the buffer is full the operation is
// dropped and logged, matching the mirror's best-effort contract.
// Store failures are logged and never surfaced to callers.
type Writer struct {
	store Store
	ops   chan op
}

func NewWriter(store Store, buffer int) *Writer {
	if buffer <= 0 {
		buffer = 256
	}
	return &Writer{
		store: store,
		ops:   make(chan op, buffer),
	}
}

// Start consumes the queue until ctx is cancelled. Run it on its own
// goroutine; there is exactly one consumer, so mirror writes for the
// same record apply in enqueue order.
func (w *Writer) Start(ctx context.Context) {
	log.Info("mirror writer started")

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping mirror writer...")
			return
		case o := <-w.ops:
			w.apply(o)
		}
	}
}

func (w *Writer) Upsert(table, id string, doc map[string]any) {
	w.enqueue(op{kind: opUpsert, table: table, id: id, doc: doc})
}

func (w *Writer) Delete(table, id string) {
	w.enqueue(op{kind: opDelete, table: table, id: id})
}

func (w *Writer) Increment(table, id, field string, delta int) {
	w.enqueue(op{kind: opIncrement, table: table, id: id, field: field, delta: delta})
}

func (w *Writer) enqueue(o op) {
	select {
	case w.ops <- o:
	default:
		log.Warnf("mirror: queue full, dropping %s %s:%s", o.kind, o.table, o.id)
	}
}

func (w *Writer) apply(o op) {
	var err error
	switch o.kind {
	case opUpsert:
		err = w.store.Upsert(o.table, o.id, o.doc)
	case opDelete:
		err = w.store.Delete(o.table, o.id)
	case opIncrement:
		err = w.store.Increment(o.table, o.id, o.field, o.delta)
	}

	if err != nil {
		log.Errorf("mirror: %s %s:%s failed: %v", o.kind, o.table, o.id, err)
	}
}
