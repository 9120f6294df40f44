package mirror

import (
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealStore implements Store over the SurrealDB RPC connection.
// Record ids go through type::thing so UUIDs with dashes need no
// escaping in the query text.
type SurrealStore struct {
	db *surrealdb.DB
}

func NewSurrealStore(url, user, pass, namespace, database string) (*SurrealStore, error) {
	db, err := surrealdb.New(url)
	if err != nil {
		return nil, err
	}

	if user != "" {
		_, err = db.Signin(map[string]any{"user": user, "pass": pass})
		if err != nil {
			return nil, err
		}
	}

	_, err = db.Use(namespace, database)
	if err != nil {
		return nil, err
	}
	return &SurrealStore{db: db}, nil
}

func (s *SurrealStore) Upsert(table, id string, doc map[string]any) error {
	_, err := s.db.Query(
		"UPDATE type::thing($tb, $id) CONTENT $data",
		map[string]any{"tb": table, "id": id, "data": doc},
	)
	return err
}

func (s *SurrealStore) Delete(table, id string) error {
	_, err := s.db.Query(
		"DELETE type::thing($tb, $id)",
		map[string]any{"tb": table, "id": id},
	)
	return err
}

func (s *SurrealStore) Increment(table, id, field string, delta int) error {
	// field is one of our own constants, never caller input.
	_, err := s.db.Query(
		fmt.Sprintf("UPDATE type::thing($tb, $id) SET %s += $delta", field),
		map[string]any{"tb": table, "id": id, "delta": delta},
	)
	return err
}

func (s *SurrealStore) NoteFiles(noteID string) ([]map[string]any, error) {
	res, err := s.db.Query(
		"SELECT * FROM type::table($tb) WHERE noteId = $noteId",
		map[string]any{"tb": TableNoteFiles, "noteId": noteID},
	)
	if err != nil {
		return nil, err
	}
	return queryRows(res), nil
}

// queryRows flattens the driver's untyped query response into the row
// maps of the first statement. Anything unexpected yields no rows.
func queryRows(res any) []map[string]any {
	results, ok := res.([]any)
	if !ok || len(results) == 0 {
		return nil
	}

	first, ok := results[0].(map[string]any)
	if !ok {
		return nil
	}

	rawRows, ok := first["result"].([]any)
	if !ok {
		return nil
	}

	rows := make([]map[string]any, 0, len(rawRows))
	for _, raw := range rawRows {
		if row, ok := raw.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func (s *SurrealStore) Close() {
	s.db.Close()
}
