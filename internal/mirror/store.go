package mirror

// Store is the document-store surface the writer and the file-listing
// fan-out need. The production implementation talks to SurrealDB.
type Store interface {
	// Upsert replaces the document's content under table:id.
	Upsert(table, id string, doc map[string]any) error
	// Delete removes the document, if present.
	Delete(table, id string) error
	// Increment applies an atomic counter delta on the stored document,
	// independent of whatever value the primary store holds.
	Increment(table, id, field string, delta int) error
	// NoteFiles returns the raw file documents mirrored for a note.
	NoteFiles(noteID string) ([]map[string]any, error)
}
