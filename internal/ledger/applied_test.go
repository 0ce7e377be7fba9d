package ledger

import (
	"testing"
	"time"
)

func TestMarkCreatesAndIncrements(t *testing.T) {
	l := NewApplied(t.TempDir())
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rec, err := l.Mark("mem-1", "first use", t0)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if rec.AppliedCount != 1 {
		t.Errorf("expected count 1, got %d", rec.AppliedCount)
	}
	if !rec.AppliedAt.Equal(t0) || !rec.LastApplied.Equal(t0) {
		t.Error("expected applied_at and last_applied set to mark time")
	}
	if len(rec.Contexts) != 1 || rec.Contexts[0].Text != "first use" {
		t.Errorf("expected one context note, got %+v", rec.Contexts)
	}

	// Count tracks the number of calls, last_applied the most recent one.
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)
	l.Mark("mem-1", "", t1)
	rec, err = l.Mark("mem-1", "again", t2)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if rec.AppliedCount != 3 {
		t.Errorf("expected count 3, got %d", rec.AppliedCount)
	}
	if !rec.LastApplied.Equal(t2) {
		t.Errorf("expected last_applied %v, got %v", t2, rec.LastApplied)
	}
	if !rec.AppliedAt.Equal(t0) {
		t.Error("applied_at must keep the first application time")
	}
	if len(rec.Contexts) != 2 {
		t.Errorf("expected 2 context notes, got %d", len(rec.Contexts))
	}
}

func TestRecordVote(t *testing.T) {
	l := NewApplied(t.TempDir())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	l.Mark("mem-1", "", now)

	found, err := l.RecordVote("mem-1", 1, "worked great", now)
	if err != nil {
		t.Fatalf("record vote: %v", err)
	}
	if !found {
		t.Fatal("expected vote to find the applied record")
	}

	recs, _ := l.Load()
	if !recs[0].Voted || recs[0].VoteValue != 1 || recs[0].VoteOutcome != "worked great" {
		t.Errorf("vote state not recorded: %+v", recs[0])
	}
	if recs[0].VotedAt == nil {
		t.Error("expected voted_at to be set")
	}

	// A repeat vote overwrites the previous vote state.
	later := now.Add(time.Hour)
	l.RecordVote("mem-1", -1, "broke in v2", later)
	recs, _ = l.Load()
	if recs[0].VoteValue != -1 || recs[0].VoteOutcome != "broke in v2" {
		t.Errorf("repeat vote should overwrite, got %+v", recs[0])
	}
	if !recs[0].Voted {
		t.Error("voted must stay true")
	}
}

func TestRecordVoteWithoutApplication(t *testing.T) {
	l := NewApplied(t.TempDir())
	now := time.Now().UTC()

	found, err := l.RecordVote("unknown", 1, "", now)
	if err != nil {
		t.Fatalf("record vote: %v", err)
	}
	if found {
		t.Error("expected no record for unknown id")
	}

	recs, _ := l.Load()
	if len(recs) != 0 {
		t.Errorf("vote must not fabricate applied records, got %d", len(recs))
	}
}

func TestUnvoted(t *testing.T) {
	l := NewApplied(t.TempDir())
	now := time.Now().UTC()

	l.Mark("a", "", now)
	l.Mark("b", "", now)
	l.RecordVote("a", 1, "", now)

	pending, err := l.Unvoted()
	if err != nil {
		t.Fatalf("unvoted: %v", err)
	}
	if len(pending) != 1 || pending[0].MemoryID != "b" {
		t.Errorf("expected only 'b' pending, got %+v", pending)
	}
}

func TestAppliedLoadMissingFile(t *testing.T) {
	l := NewApplied(t.TempDir())
	recs, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty ledger, got %d records", len(recs))
	}
}
