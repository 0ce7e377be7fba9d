package exchange

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

// AbsorbResult reports one absorption run.
type AbsorbResult struct {
	BatchID  string         `json:"batch_id"`
	Fetched  int            `json:"fetched"`
	Absorbed []model.Memory `json:"absorbed"`
}

// AbsorbTrending pulls trending memories the agent has not seen yet into the
// local notes file and, when an archive is attached, into the archive.
//
// The feed is over-fetched at twice the limit to compensate for filtering;
// already-absorbed ids are dropped, the first limit survivors are kept in
// server order (the server ranking is authoritative, nothing is re-ranked
// here). The absorbed ledger is stamped even when nothing new was found, so
// "ran, nothing new" stays distinguishable from "never ran".
func (c *Client) AbsorbTrending(ctx context.Context, limit int, category string) (*AbsorbResult, error) {
	if limit <= 0 {
		limit = 5
	}

	fetched := c.Trending(ctx, 2*limit)

	state, err := c.absorbed.Load()
	if err != nil {
		return nil, err
	}

	var fresh []model.Memory
	for _, m := range fetched {
		if category != "" && m.Category != category {
			continue
		}
		if state.Has(m.ID) {
			continue
		}
		fresh = append(fresh, m)
		if len(fresh) == limit {
			break
		}
	}

	now := c.now().UTC()
	batchID := ulid.Make().String()

	if len(fresh) > 0 {
		if err := c.appendNotes(fresh, now); err != nil {
			return nil, err
		}
		if c.archive != nil {
			for _, m := range fresh {
				if err := c.archive.Put(ctx, m, batchID, now); err != nil {
					c.logger.Warn("archive write failed", zap.String("memory_id", m.ID), zap.Error(err))
				}
			}
		}
	}

	ids := make([]string, len(fresh))
	for i, m := range fresh {
		ids[i] = m.ID
	}
	if _, err := c.absorbed.Record(ids, now); err != nil {
		return nil, err
	}

	return &AbsorbResult{BatchID: batchID, Fetched: len(fetched), Absorbed: fresh}, nil
}

// notesPath is the human-readable notes artifact absorption appends to.
func (c *Client) notesPath() string {
	return filepath.Join(c.dir, "notes.md")
}

// appendNotes writes one section per memory, grouped under a per-day
// trending header. A day may absorb multiple times; if today's header is
// already present the new entries are appended without repeating it.
func (c *Client) appendNotes(mems []model.Memory, now time.Time) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	header := "## Trending " + now.Format("2006-01-02")

	existing, err := os.ReadFile(c.notesPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read notes: %w", err)
	}

	var b strings.Builder
	if !strings.Contains(string(existing), header) {
		b.WriteString("\n" + header + "\n")
	}
	for _, m := range mems {
		fmt.Fprintf(&b, "\n### [%s] %s (%+d)\n", m.Category, m.Title, m.Score)
		if m.AgentName != "" {
			fmt.Fprintf(&b, "shared by %s\n", m.AgentName)
		}
		fmt.Fprintf(&b, "id: %s\n\n", m.ID)
		b.WriteString(strings.TrimSpace(m.Content) + "\n")
	}

	f, err := os.OpenFile(c.notesPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open notes: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append notes: %w", err)
	}
	return nil
}
