package ledger

import (
	"path/filepath"
	"time"
)

// MaxAbsorbedIDs bounds the absorbed-id set. Insertion order stands in for
// recency: when the bound is exceeded the oldest ids are evicted first.
const MaxAbsorbedIDs = 500

// AbsorbedState is the persisted absorption bookkeeping.
type AbsorbedState struct {
	AbsorbedIDs []string  `json:"absorbed_ids"`
	LastAbsorb  time.Time `json:"last_absorb"`
	LastCount   int       `json:"last_count"`
}

// Has reports whether id was already absorbed.
func (s AbsorbedState) Has(id string) bool {
	for _, v := range s.AbsorbedIDs {
		if v == id {
			return true
		}
	}
	return false
}

// Absorbed is the ledger of trending memory ids already pulled into local
// notes.
type Absorbed struct {
	path string
}

// NewAbsorbed returns the absorbed ledger rooted at dir.
func NewAbsorbed(dir string) *Absorbed {
	return &Absorbed{path: filepath.Join(dir, "absorbed.json")}
}

// Load returns the current state, zero on a missing file.
func (l *Absorbed) Load() (AbsorbedState, error) {
	var s AbsorbedState
	if err := readJSON(l.path, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Record appends ids and stamps the run. LastAbsorb and LastCount are
// written even for an empty batch, so "ran, nothing new" is distinguishable
// from "never ran". The id set is trimmed to MaxAbsorbedIDs, dropping the
// oldest entries.
func (l *Absorbed) Record(ids []string, now time.Time) (AbsorbedState, error) {
	s, err := l.Load()
	if err != nil {
		return s, err
	}
	s.AbsorbedIDs = append(s.AbsorbedIDs, ids...)
	if n := len(s.AbsorbedIDs); n > MaxAbsorbedIDs {
		s.AbsorbedIDs = s.AbsorbedIDs[n-MaxAbsorbedIDs:]
	}
	s.LastAbsorb = now
	s.LastCount = len(ids)
	return s, writeJSON(l.path, s)
}
