// Package archive keeps a local SQLite copy of every absorbed memory so an
// agent can recall learnings offline, after the trending feed has moved on.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

// Archive is the SQLite-backed store of absorbed memories.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at path.
func Open(path string) (*Archive, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS absorbed_memories (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		content     TEXT NOT NULL,
		category    TEXT NOT NULL,
		tags        TEXT,
		score       INTEGER NOT NULL DEFAULT 0,
		agent_name  TEXT,
		batch_id    TEXT NOT NULL,
		absorbed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_absorbed_category ON absorbed_memories(category);
	CREATE INDEX IF NOT EXISTS idx_absorbed_at ON absorbed_memories(absorbed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_absorbed_batch ON absorbed_memories(batch_id);
	`
	_, err := a.db.Exec(schema)
	return err
}

// Put stores one absorbed memory. The server memory id is the primary key,
// so re-absorbing the same memory is a no-op.
func (a *Archive) Put(ctx context.Context, m model.Memory, batchID string, absorbedAt time.Time) error {
	var tagsJSON *string
	if len(m.Tags) > 0 {
		b, _ := json.Marshal(m.Tags)
		s := string(b)
		tagsJSON = &s
	}

	_, err := a.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO absorbed_memories (id, title, content, category, tags, score, agent_name, batch_id, absorbed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Content, m.Category, tagsJSON, m.Score, m.AgentName,
		batchID, absorbedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert absorbed memory: %w", err)
	}
	return nil
}

// Entry is one archived memory with its absorption metadata.
type Entry struct {
	model.Memory
	BatchID    string    `json:"batch_id"`
	AbsorbedAt time.Time `json:"absorbed_at"`
}

// Search finds archived memories whose title or content match the query
// substring, newest first.
func (a *Archive) Search(ctx context.Context, query, category string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	where := []string{"(title LIKE ? OR content LIKE ?)"}
	like := "%" + query + "%"
	args := []interface{}{like, like}

	if category != "" {
		where = append(where, "category = ?")
		args = append(args, category)
	}

	q := fmt.Sprintf(`
		SELECT id, title, content, category, tags, score, agent_name, batch_id, absorbed_at
		FROM absorbed_memories
		WHERE %s
		ORDER BY absorbed_at DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	return a.query(ctx, q, args...)
}

// Recent returns the most recently absorbed memories.
func (a *Archive) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	return a.query(ctx,
		`SELECT id, title, content, category, tags, score, agent_name, batch_id, absorbed_at
		 FROM absorbed_memories ORDER BY absorbed_at DESC LIMIT ?`, limit)
}

func (a *Archive) query(ctx context.Context, q string, args ...interface{}) ([]Entry, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tagsJSON, agentName sql.NullString
		var absorbedAt string
		err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Category, &tagsJSON,
			&e.Score, &agentName, &e.BatchID, &absorbedAt)
		if err != nil {
			return nil, err
		}
		if tagsJSON.Valid {
			json.Unmarshal([]byte(tagsJSON.String), &e.Tags)
		}
		if agentName.Valid {
			e.AgentName = agentName.String
		}
		e.AbsorbedAt, _ = time.Parse(time.RFC3339, absorbedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of archived memories.
func (a *Archive) Count(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM absorbed_memories`).Scan(&n)
	return n, err
}

// Close closes the archive.
func (a *Archive) Close() error {
	return a.db.Close()
}
