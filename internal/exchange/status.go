package exchange

import (
	"time"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/config"
)

// Status is a local summary of registration and ledger state. It reads only
// local files; no network call is made.
type Status struct {
	Configured   bool      `json:"configured"`
	Name         string    `json:"name,omitempty"`
	Platform     string    `json:"platform,omitempty"`
	RegisteredAt string    `json:"registered_at,omitempty"`
	SharedCount  int       `json:"shared_count"`
	AppliedCount int       `json:"applied_count"`
	UnvotedCount int       `json:"unvoted_count"`
	LastAbsorb   time.Time `json:"last_absorb,omitzero"`
	LastCount    int       `json:"last_count"`
	Dir          string    `json:"dir"`
}

// Status reports the current local state.
func (c *Client) Status() (*Status, error) {
	creds, err := config.Load(c.dir)
	if err != nil {
		return nil, err
	}

	shared, err := c.shared.Load()
	if err != nil {
		return nil, err
	}
	applied, err := c.applied.Load()
	if err != nil {
		return nil, err
	}
	absorbed, err := c.absorbed.Load()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Configured:   creds.IsConfigured(),
		Name:         creds.Name,
		Platform:     creds.Platform,
		RegisteredAt: creds.RegisteredAt,
		SharedCount:  len(shared),
		AppliedCount: len(applied),
		LastAbsorb:   absorbed.LastAbsorb,
		LastCount:    absorbed.LastCount,
		Dir:          c.dir,
	}
	for _, r := range applied {
		if !r.Voted {
			st.UnvotedCount++
		}
	}
	return st, nil
}
