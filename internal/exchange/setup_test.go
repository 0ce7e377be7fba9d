package exchange

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/config"
)

func TestSetupRequiresTermsWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	result, err := c.Setup(context.Background(), SetupParams{Name: "agent-x"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if result.Success {
		t.Error("setup without accepted terms must fail")
	}
	if calls.Load() != 0 {
		t.Errorf("expected no network call, got %d", calls.Load())
	}
}

func TestSetupRegistersAndSavesCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c := newTestClient(t, jsonHandler(http.StatusOK, `{
		"success": true,
		"api_key": "sk-new",
		"agent": {"id": "agent-7", "name": "agent-x", "created_at": "2026-03-01T09:30:00Z"}
	}`))

	result, err := c.Setup(context.Background(), SetupParams{
		Name: "agent-x", Platform: "other", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !result.Success {
		t.Fatalf("setup failed: %s", result.Error)
	}

	creds, err := config.Load(c.dir)
	if err != nil {
		t.Fatalf("load credentials: %v", err)
	}
	if creds.APIKey != "sk-new" || creds.ID != "agent-7" || creds.Name != "agent-x" {
		t.Errorf("credentials not persisted: %+v", creds)
	}
	if creds.RegisteredAt != "2026-03-01T09:30:00Z" {
		t.Errorf("unexpected registered_at: %q", creds.RegisteredAt)
	}
}

func TestSetupShortCircuitsWhenRegistered(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	register(t, c)

	result, err := c.Setup(context.Background(), SetupParams{AcceptTerms: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !result.Success || !result.AlreadyRegistered {
		t.Errorf("expected already-registered success, got %+v", result)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no network call, got %d", calls.Load())
	}
}

func TestSetupForceReRegisters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c := newTestClient(t, jsonHandler(http.StatusOK, `{
		"success": true,
		"api_key": "sk-rotated",
		"agent": {"id": "agent-7", "name": "agent-x", "created_at": "2026-03-01T09:30:00Z"}
	}`))
	register(t, c)

	result, err := c.Setup(context.Background(), SetupParams{
		Name: "agent-x", Platform: "other", Force: true, AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !result.Success || result.AlreadyRegistered {
		t.Fatalf("expected fresh registration, got %+v", result)
	}

	creds, _ := config.Load(c.dir)
	if creds.APIKey != "sk-rotated" {
		t.Errorf("force setup must overwrite credentials, got %q", creds.APIKey)
	}
}

func TestSetupServerRejection(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c := newTestClient(t, jsonHandler(http.StatusConflict, `{"success":false,"error":"name already taken"}`))

	result, err := c.Setup(context.Background(), SetupParams{
		Name: "taken", Platform: "other", AcceptTerms: true,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if result.Success {
		t.Error("expected failure result")
	}
	if result.Error != "name already taken" {
		t.Errorf("expected server error surfaced, got %q", result.Error)
	}

	creds, _ := config.Load(c.dir)
	if creds.IsConfigured() {
		t.Error("rejected registration must not persist credentials")
	}
}

func TestDetectPlatform(t *testing.T) {
	t.Setenv("CLAWDBOT_SESSION", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	if got := detectPlatform(); got != "other" {
		t.Errorf("expected other, got %q", got)
	}

	t.Setenv("OPENAI_API_KEY", "x")
	if got := detectPlatform(); got != "codex" {
		t.Errorf("expected codex, got %q", got)
	}
	t.Setenv("ANTHROPIC_API_KEY", "x")
	if got := detectPlatform(); got != "claude" {
		t.Errorf("expected claude, got %q", got)
	}
	t.Setenv("CLAWDBOT_SESSION", "x")
	if got := detectPlatform(); got != "clawdbot" {
		t.Errorf("expected clawdbot, got %q", got)
	}
}
