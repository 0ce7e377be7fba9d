package ledger

import (
	"path/filepath"
	"time"
)

// AppliedContext is one free-text note about how a memory was used.
type AppliedContext struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// AppliedRecord tracks one memory this agent has consumed and may vote on.
type AppliedRecord struct {
	MemoryID     string           `json:"memory_id"`
	AppliedAt    time.Time        `json:"applied_at"`
	LastApplied  time.Time        `json:"last_applied"`
	AppliedCount int              `json:"applied_count"`
	Contexts     []AppliedContext `json:"contexts"`
	Voted        bool             `json:"voted"`
	VoteValue    int              `json:"vote_value,omitempty"`
	VoteOutcome  string           `json:"vote_outcome,omitempty"`
	VotedAt      *time.Time       `json:"voted_at,omitempty"`
}

// Applied is the ledger of memories this agent has used.
type Applied struct {
	path string
}

// NewApplied returns the applied ledger rooted at dir.
func NewApplied(dir string) *Applied {
	return &Applied{path: filepath.Join(dir, "applied.json")}
}

type appliedFile struct {
	Applied []AppliedRecord `json:"applied"`
}

// Load returns all applied records, empty on a missing file.
func (l *Applied) Load() ([]AppliedRecord, error) {
	var f appliedFile
	if err := readJSON(l.path, &f); err != nil {
		return nil, err
	}
	return f.Applied, nil
}

func (l *Applied) save(recs []AppliedRecord) error {
	return writeJSON(l.path, appliedFile{Applied: recs})
}

// Unvoted returns the records that have not been voted on yet.
func (l *Applied) Unvoted() ([]AppliedRecord, error) {
	recs, err := l.Load()
	if err != nil {
		return nil, err
	}
	var out []AppliedRecord
	for _, r := range recs {
		if !r.Voted {
			out = append(out, r)
		}
	}
	return out, nil
}

// Mark records one application of id at now. A new record starts at count 1;
// an existing one is incremented and its LastApplied advanced. A non-empty
// context note is appended either way.
func (l *Applied) Mark(id, context string, now time.Time) (AppliedRecord, error) {
	recs, err := l.Load()
	if err != nil {
		return AppliedRecord{}, err
	}
	for i := range recs {
		if recs[i].MemoryID != id {
			continue
		}
		recs[i].AppliedCount++
		recs[i].LastApplied = now
		if context != "" {
			recs[i].Contexts = append(recs[i].Contexts, AppliedContext{Text: context, At: now})
		}
		return recs[i], l.save(recs)
	}
	rec := AppliedRecord{
		MemoryID:     id,
		AppliedAt:    now,
		LastApplied:  now,
		AppliedCount: 1,
		Contexts:     []AppliedContext{},
	}
	if context != "" {
		rec.Contexts = append(rec.Contexts, AppliedContext{Text: context, At: now})
	}
	return rec, l.save(append(recs, rec))
}

// RecordVote marks the record for id as voted with the given value and
// outcome. Repeat votes overwrite the previous vote state. Returns false
// without touching the ledger when no applied record exists for id; votes
// never fabricate an application.
func (l *Applied) RecordVote(id string, value int, outcome string, now time.Time) (bool, error) {
	recs, err := l.Load()
	if err != nil {
		return false, err
	}
	for i := range recs {
		if recs[i].MemoryID != id {
			continue
		}
		t := now
		recs[i].Voted = true
		recs[i].VoteValue = value
		recs[i].VoteOutcome = outcome
		recs[i].VotedAt = &t
		return true, l.save(recs)
	}
	return false, nil
}
