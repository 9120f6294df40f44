package service

// Mirror is the fire-and-forget write surface of the secondary store.
// Calls return immediately; delivery is best effort and failures never
// reach the request that triggered them.
type Mirror interface {
	Upsert(table, id string, doc map[string]any)
	Delete(table, id string)
	Increment(table, id, field string, delta int)
}

// MirrorReader is the one place the secondary store is read: the
// reconciled note-file listing. Errors here degrade the listing to
// primary-only, they are never surfaced.
type MirrorReader interface {
	NoteFiles(noteID string) ([]map[string]any, error)
}
