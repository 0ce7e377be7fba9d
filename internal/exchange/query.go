package exchange

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

// Search queries the collective memory. Unauthenticated. Read-only queries
// degrade to an empty result on any gateway failure; the failure is logged,
// not returned.
func (c *Client) Search(ctx context.Context, query, category string, limit int) []model.Memory {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{"q": {query}, "limit": {strconv.Itoa(limit)}}
	if category != "" {
		q.Set("category", category)
	}
	return c.fetchMemories(ctx, "/memories/search", q)
}

// Trending returns the currently top-voted memories. Unauthenticated, same
// degrade contract as Search.
func (c *Client) Trending(ctx context.Context, limit int) []model.Memory {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return c.fetchMemories(ctx, "/memories/trending", q)
}

func (c *Client) fetchMemories(ctx context.Context, path string, q url.Values) []model.Memory {
	resp, err := c.gw.Do(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return nil
	}
	if !resp.OK() {
		c.logger.Warn("query rejected", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil
	}
	env := decodeEnvelope(resp)
	return env.Memories
}

// Rankings returns the agent leaderboard. Unauthenticated, same degrade
// contract as Search.
func (c *Client) Rankings(ctx context.Context, sort string, limit int) []model.AgentRank {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if sort != "" {
		q.Set("sort", sort)
	}
	resp, err := c.gw.Do(ctx, http.MethodGet, "/agents/rankings", q, nil, "")
	if err != nil {
		return nil
	}
	if !resp.OK() {
		c.logger.Warn("rankings rejected", zap.Int("status", resp.StatusCode))
		return nil
	}
	env := decodeEnvelope(resp)
	return env.Agents
}
