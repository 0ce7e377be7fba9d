package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.IsConfigured() {
		t.Error("empty record must not be configured")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	in := Credentials{
		Name:         "box-agent-ab12cd34",
		ID:           "agent-9",
		APIKey:       "sk-secret",
		Platform:     "claude",
		RegisteredAt: "2026-03-01T09:00:00Z",
	}
	if err := Save(dir, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Errorf("roundtrip mismatch: %+v != %+v", out, in)
	}
	if !out.IsConfigured() {
		t.Error("record with api key must be configured")
	}
}

func TestSaveRestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()
	if err := Save(dir, Credentials{APIKey: "sk"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600, got %o", perm)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600)

	if _, err := Load(dir); err == nil {
		t.Error("expected error for corrupt credentials")
	}
}

func TestDirResolution(t *testing.T) {
	if got := Dir("/explicit"); got != "/explicit" {
		t.Errorf("explicit dir ignored: %q", got)
	}
	t.Setenv("AGENTMEMORY_EXCHANGE_DIR", "/from-env")
	if got := Dir(""); got != "/from-env" {
		t.Errorf("env dir ignored: %q", got)
	}
}

func TestAPIURLResolution(t *testing.T) {
	t.Setenv("AGENTMEMORY_EXCHANGE_API", "")
	if got := APIURL(""); got != DefaultAPIURL {
		t.Errorf("expected default API URL, got %q", got)
	}
	t.Setenv("AGENTMEMORY_EXCHANGE_API", "http://localhost:9999/api")
	if got := APIURL(""); got != "http://localhost:9999/api" {
		t.Errorf("env API URL ignored: %q", got)
	}
}
