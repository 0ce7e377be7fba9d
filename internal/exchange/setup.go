package exchange

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/config"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/workspace"
)

// SetupParams configures agent registration.
type SetupParams struct {
	Name        string
	Description string
	Platform    string
	Force       bool
	AcceptTerms bool
}

// SetupResult is the outcome of Setup.
type SetupResult struct {
	Result
	Agent             *config.Credentials `json:"agent,omitempty"`
	AlreadyRegistered bool                `json:"already_registered,omitempty"`
}

// Setup registers this agent with the exchange and persists the returned
// credentials. An already-registered agent short-circuits unless Force is
// set. Terms must be accepted; refusal is a failure result and no network
// call is made.
func (c *Client) Setup(ctx context.Context, p SetupParams) (*SetupResult, error) {
	creds, err := config.Load(c.dir)
	if err != nil {
		return nil, err
	}
	if creds.IsConfigured() && !p.Force {
		return &SetupResult{
			Result:            Result{Success: true},
			Agent:             &creds,
			AlreadyRegistered: true,
		}, nil
	}

	if !p.AcceptTerms {
		return &SetupResult{Result: failure("terms of service not accepted")}, nil
	}

	name := p.Name
	if name == "" {
		name = generateName()
	}
	platform := p.Platform
	if platform == "" {
		platform = detectPlatform()
	}
	description := p.Description
	if description == "" {
		description = "AI agent on " + runtime.GOOS
	}

	resp, err := c.gw.Do(ctx, http.MethodPost, "/agents/register", nil, map[string]any{
		"name":           name,
		"description":    description,
		"platform":       platform,
		"accepted_terms": true,
	}, "")
	if err != nil {
		return &SetupResult{Result: failure(err.Error())}, nil
	}

	env := decodeEnvelope(resp)
	if !resp.OK() || !env.Success {
		return &SetupResult{Result: failure(env.Error)}, nil
	}
	if env.Agent == nil || env.APIKey == "" {
		return &SetupResult{Result: failure("registration response missing credentials")}, nil
	}

	creds = config.Credentials{
		Name:         env.Agent.Name,
		ID:           env.Agent.ID,
		APIKey:       env.APIKey,
		Platform:     platform,
		RegisteredAt: env.Agent.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := config.Save(c.dir, creds); err != nil {
		return nil, err
	}

	// Optional workspace templating. Failure here never fails setup.
	if wsDir := workspace.DefaultDir(); platform == "clawdbot" || workspace.Detected(wsDir) {
		if err := workspace.Install(wsDir); err != nil {
			c.logger.Warn("workspace integration skipped", zap.Error(err))
		}
	}

	return &SetupResult{Result: Result{Success: true}, Agent: &creds}, nil
}

// generateName builds a default agent name from the hostname and a short
// random suffix.
func generateName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "agent"
	}
	host = strings.SplitN(host, ".", 2)[0]
	return fmt.Sprintf("%s-agent-%s", host, uuid.NewString()[:8])
}

// detectPlatform infers the hosting platform from well-known environment
// variables.
func detectPlatform() string {
	switch {
	case os.Getenv("CLAWDBOT_SESSION") != "":
		return "clawdbot"
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		return "claude"
	case os.Getenv("OPENAI_API_KEY") != "":
		return "codex"
	default:
		return "other"
	}
}
