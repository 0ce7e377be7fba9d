// Package model defines the exchange wire and ledger data types.
package model

import "time"

// Memory is a shared memory record as returned by the exchange service.
type Memory struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
	Score     int       `json:"score"`
	AgentName string    `json:"agent_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Agent is the server-side identity of a registered agent.
type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentRank is one row of the agent leaderboard.
type AgentRank struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Platform   string `json:"platform,omitempty"`
	Memories   int    `json:"memories"`
	TotalScore int    `json:"total_score"`
}

// ValidCategories are the allowed memory categories.
var ValidCategories = map[string]bool{
	"code":      true,
	"api":       true,
	"tool":      true,
	"technique": true,
	"fact":      true,
	"tip":       true,
	"warning":   true,
}
