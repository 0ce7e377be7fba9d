package ledger

import (
	"path/filepath"
	"time"
)

// SharedRecord tracks one memory this agent authored on the exchange.
type SharedRecord struct {
	MemoryID string     `json:"memory_id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	SharedAt time.Time  `json:"shared_at"`
	EditedAt *time.Time `json:"edited_at,omitempty"`
}

// Shared is the ledger of memories authored by this agent.
type Shared struct {
	path string
}

// NewShared returns the shared ledger rooted at dir.
func NewShared(dir string) *Shared {
	return &Shared{path: filepath.Join(dir, "shared.json")}
}

type sharedFile struct {
	Shared []SharedRecord `json:"shared"`
}

// Load returns all shared records, empty on a missing file.
func (l *Shared) Load() ([]SharedRecord, error) {
	var f sharedFile
	if err := readJSON(l.path, &f); err != nil {
		return nil, err
	}
	return f.Shared, nil
}

func (l *Shared) save(recs []SharedRecord) error {
	return writeJSON(l.path, sharedFile{Shared: recs})
}

// Add appends a record. An existing record with the same memory id is
// replaced, keeping ids unique within the ledger.
func (l *Shared) Add(rec SharedRecord) error {
	recs, err := l.Load()
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].MemoryID == rec.MemoryID {
			recs[i] = rec
			return l.save(recs)
		}
	}
	return l.save(append(recs, rec))
}

// Update applies an edit to the record for id. Empty title or category
// means "not supplied" and leaves the field alone. The record's EditedAt is
// set to editedAt. Unknown ids are a no-op: the server accepted the edit,
// so a missing local record just means the share predates this ledger.
func (l *Shared) Update(id, title, category string, editedAt time.Time) error {
	recs, err := l.Load()
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].MemoryID != id {
			continue
		}
		if title != "" {
			recs[i].Title = title
		}
		if category != "" {
			recs[i].Category = category
		}
		t := editedAt
		recs[i].EditedAt = &t
		return l.save(recs)
	}
	return nil
}

// Remove drops the record for id, if present.
func (l *Shared) Remove(id string) error {
	recs, err := l.Load()
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].MemoryID == id {
			return l.save(append(recs[:i], recs[i+1:]...))
		}
	}
	return nil
}
