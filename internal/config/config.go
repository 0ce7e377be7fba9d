// Package config persists the agent's exchange credentials and resolves the
// local state directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultAPIURL is the exchange deployment the client talks to unless
// overridden by flag or environment.
const DefaultAPIURL = "https://agentmemory-ashy.vercel.app/api"

// Credentials is the singleton identity record for this installation.
// Presence of APIKey means the agent is registered.
type Credentials struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	APIKey       string `json:"api_key"`
	Platform     string `json:"platform"`
	RegisteredAt string `json:"registered_at"`
}

// IsConfigured reports whether the record carries an API key.
func (c Credentials) IsConfigured() bool {
	return c.APIKey != ""
}

// Dir resolves the state directory: explicit value, then
// $AGENTMEMORY_EXCHANGE_DIR, then ~/.agentmemory-exchange.
func Dir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("AGENTMEMORY_EXCHANGE_DIR"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agentmemory-exchange")
}

// APIURL resolves the service base URL: explicit value, then
// $AGENTMEMORY_EXCHANGE_API, then the default deployment.
func APIURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("AGENTMEMORY_EXCHANGE_API"); env != "" {
		return env
	}
	return DefaultAPIURL
}

func credentialsPath(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Load reads the credential record. A missing file is not an error and
// returns the zero value; an unreadable or corrupt file is.
func Load(dir string) (Credentials, error) {
	var c Credentials
	b, err := os.ReadFile(credentialsPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read credentials: %w", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse credentials: %w", err)
	}
	return c, nil
}

// Save writes the credential record with owner-only permissions. The write
// goes through a temp file and rename so a crash cannot leave a truncated
// singleton behind.
func Save(dir string, c Credentials) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	path := credentialsPath(dir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write credentials: %w", err)
	}
	return os.Chmod(path, 0o600)
}
