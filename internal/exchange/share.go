package exchange

import (
	"context"
	"net/http"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/ledger"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

// ShareParams describes a memory to publish. Limits mirror the server-side
// validation so obviously bad payloads are rejected before the network.
type ShareParams struct {
	Title     string   `validate:"required,min=5,max=200"`
	Content   string   `validate:"required,min=10,max=10000"`
	Category  string   `validate:"required,oneof=code api tool technique fact tip warning"`
	Tags      []string `validate:"omitempty,dive,min=1,max=50"`
	SourceURL string   `validate:"omitempty,url"`
}

// ShareResult is the outcome of Share.
type ShareResult struct {
	Result
	Memory *model.Memory `json:"memory,omitempty"`
}

// Share publishes a memory. On success the shared ledger gains a record and
// the notification relay fires.
func (c *Client) Share(ctx context.Context, p ShareParams) (*ShareResult, error) {
	key, err := c.apiKey()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(p); err != nil {
		return &ShareResult{Result: failure(validationError(err))}, nil
	}

	payload := map[string]any{
		"title":    p.Title,
		"content":  p.Content,
		"category": p.Category,
	}
	if len(p.Tags) > 0 {
		payload["tags"] = p.Tags
	}
	if p.SourceURL != "" {
		payload["source_url"] = p.SourceURL
	}

	resp, err := c.gw.Do(ctx, http.MethodPost, "/memories", nil, payload, key)
	if err != nil {
		return &ShareResult{Result: failure(err.Error())}, nil
	}
	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		return &ShareResult{Result: failure(env.Error)}, nil
	}
	if env.Memory == nil {
		return &ShareResult{Result: failure("share response missing memory")}, nil
	}

	now := c.now().UTC()
	if err := c.shared.Add(ledger.SharedRecord{
		MemoryID: env.Memory.ID,
		Title:    env.Memory.Title,
		Category: env.Memory.Category,
		SharedAt: now,
	}); err != nil {
		return nil, err
	}

	c.notifyShared(ShareEvent{
		MemoryID: env.Memory.ID,
		Title:    env.Memory.Title,
		Category: env.Memory.Category,
		ViewURL:  c.ViewURL(env.Memory.ID),
		At:       now,
	})

	return &ShareResult{Result: Result{Success: true}, Memory: env.Memory}, nil
}

// EditParams carries the fields to change. Empty fields are omitted from
// the request rather than sent as nulls.
type EditParams struct {
	Title    string `validate:"omitempty,min=5,max=200"`
	Content  string `validate:"omitempty,min=10,max=10000"`
	Category string `validate:"omitempty,oneof=code api tool technique fact tip warning"`
}

// Edit updates a memory this agent authored. On success the shared ledger
// record picks up the supplied fields and an edited timestamp.
func (c *Client) Edit(ctx context.Context, memoryID string, p EditParams) (*ShareResult, error) {
	key, err := c.apiKey()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(p); err != nil {
		return &ShareResult{Result: failure(validationError(err))}, nil
	}

	payload := map[string]any{}
	if p.Title != "" {
		payload["title"] = p.Title
	}
	if p.Content != "" {
		payload["content"] = p.Content
	}
	if p.Category != "" {
		payload["category"] = p.Category
	}
	if len(payload) == 0 {
		return &ShareResult{Result: failure("nothing to edit")}, nil
	}

	resp, err := c.gw.Do(ctx, http.MethodPatch, "/memories/"+memoryID, nil, payload, key)
	if err != nil {
		return &ShareResult{Result: failure(err.Error())}, nil
	}
	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		return &ShareResult{Result: failure(env.Error)}, nil
	}

	if err := c.shared.Update(memoryID, p.Title, p.Category, c.now().UTC()); err != nil {
		return nil, err
	}
	return &ShareResult{Result: Result{Success: true}, Memory: env.Memory}, nil
}

// Delete removes a memory this agent authored. The shared ledger record is
// dropped only after the server confirms.
func (c *Client) Delete(ctx context.Context, memoryID string) (*Result, error) {
	key, err := c.apiKey()
	if err != nil {
		return nil, err
	}

	resp, err := c.gw.Do(ctx, http.MethodDelete, "/memories/"+memoryID, nil, nil, key)
	if err != nil {
		r := failure(err.Error())
		return &r, nil
	}
	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		r := failure(env.Error)
		return &r, nil
	}

	if err := c.shared.Remove(memoryID); err != nil {
		return nil, err
	}
	return &Result{Success: true}, nil
}

// Report flags a memory as spam, wrong, or harmful.
func (c *Client) Report(ctx context.Context, memoryID, reason string) (*Result, error) {
	key, err := c.apiKey()
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if reason != "" {
		payload["reason"] = reason
	}
	resp, err := c.gw.Do(ctx, http.MethodPost, "/memories/"+memoryID+"/report", nil, payload, key)
	if err != nil {
		r := failure(err.Error())
		return &r, nil
	}
	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		r := failure(env.Error)
		return &r, nil
	}
	return &Result{Success: true}, nil
}
