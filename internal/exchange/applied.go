package exchange

import (
	"context"
	"net/http"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/ledger"
)

// MarkApplied records locally that this agent used a memory. Purely local:
// no network call, no registration required.
func (c *Client) MarkApplied(memoryID, note string) (ledger.AppliedRecord, error) {
	return c.applied.Mark(memoryID, note, c.now().UTC())
}

// Applied returns the applied ledger, optionally filtered to records still
// awaiting a vote.
func (c *Client) Applied(unvotedOnly bool) ([]ledger.AppliedRecord, error) {
	if unvotedOnly {
		return c.applied.Unvoted()
	}
	return c.applied.Load()
}

// Shared returns the ledger of memories this agent authored.
func (c *Client) Shared() ([]ledger.SharedRecord, error) {
	return c.shared.Load()
}

// VoteParams describes a vote on a memory.
type VoteParams struct {
	Value   int    `validate:"required,oneof=-1 1"`
	Outcome string `validate:"omitempty,max=500"`
}

// Vote casts a vote on a memory. On success the applied ledger record for
// that id, when one exists, is marked voted; voting does not require a prior
// MarkApplied and never fabricates an applied record.
func (c *Client) Vote(ctx context.Context, memoryID string, p VoteParams) (*Result, error) {
	key, err := c.apiKey()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(p); err != nil {
		r := failure(validationError(err))
		return &r, nil
	}

	payload := map[string]any{"value": p.Value}
	if p.Outcome != "" {
		payload["outcome"] = p.Outcome
	}

	resp, err := c.gw.Do(ctx, http.MethodPost, "/memories/"+memoryID+"/vote", nil, payload, key)
	if err != nil {
		r := failure(err.Error())
		return &r, nil
	}
	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		r := failure(env.Error)
		return &r, nil
	}

	if _, err := c.applied.RecordVote(memoryID, p.Value, p.Outcome, c.now().UTC()); err != nil {
		return nil, err
	}
	return &Result{Success: true}, nil
}
