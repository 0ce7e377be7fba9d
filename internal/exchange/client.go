// Package exchange implements the AgentMemory Exchange client: registration,
// memory operations, trending absorption, and the local ledgers that track
// what this agent has shared, applied, and absorbed.
package exchange

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/archive"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/config"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/gateway"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/ledger"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

// ErrNotRegistered is returned when an authenticated operation is attempted
// before setup. It fails fast: no network call is made.
var ErrNotRegistered = errors.New("not registered: run setup first")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client talks to one exchange deployment and owns the ledgers under one
// state directory. The share callback is per-client, so multiple clients in
// one process do not clobber each other.
type Client struct {
	dir      string
	gw       *gateway.Client
	logger   *zap.Logger
	now      func() time.Time
	onShare  func(ShareEvent)
	archive  *archive.Archive
	shared   *ledger.Shared
	applied  *ledger.Applied
	absorbed *ledger.Absorbed
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. Default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithOnShare registers a callback invoked after every successful share.
// A panicking callback is recovered and logged; the share still succeeds.
func WithOnShare(fn func(ShareEvent)) Option {
	return func(c *Client) { c.onShare = fn }
}

// WithArchive attaches a local archive that absorption mirrors into.
func WithArchive(a *archive.Archive) Option {
	return func(c *Client) { c.archive = a }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New builds a client for the given state directory and API base URL.
func New(dir, apiURL string, opts ...Option) *Client {
	c := &Client{
		dir:      dir,
		logger:   zap.NewNop(),
		now:      time.Now,
		shared:   ledger.NewShared(dir),
		applied:  ledger.NewApplied(dir),
		absorbed: ledger.NewAbsorbed(dir),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.gw = gateway.New(apiURL, c.logger)
	return c
}

// Dir returns the client's state directory.
func (c *Client) Dir() string { return c.dir }

// Result is the outcome of an exchange operation. Application-level
// rejections land here with Success=false rather than as Go errors, so
// automated callers can branch without error handling.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// envelope is the common response body shape of the exchange service.
type envelope struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error"`
	Memory   *model.Memory     `json:"memory"`
	Memories []model.Memory    `json:"memories"`
	Agent    *model.Agent      `json:"agent"`
	Agents   []model.AgentRank `json:"agents"`
	APIKey   string            `json:"api_key"`
}

// decodeEnvelope interprets a non-5xx response. 4xx bodies carry a
// structured error field; a missing one still yields a usable message.
func decodeEnvelope(resp *gateway.Response) envelope {
	var env envelope
	if err := resp.Decode(&env); err != nil {
		env.Error = "unexpected response from server"
		return env
	}
	if !resp.OK() && env.Error == "" {
		env.Error = "request rejected by server"
	}
	return env
}

// apiKey loads the local credential, failing fast when the agent is not
// registered.
func (c *Client) apiKey() (string, error) {
	creds, err := config.Load(c.dir)
	if err != nil {
		return "", err
	}
	if !creds.IsConfigured() {
		return "", ErrNotRegistered
	}
	return creds.APIKey, nil
}

// ViewURL returns the human-facing URL for a memory id.
func (c *Client) ViewURL(memoryID string) string {
	base := strings.TrimSuffix(c.gw.BaseURL(), "/api")
	return base + "/memories/" + memoryID
}

// validationError flattens a validator error into a short message.
func validationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid " + strings.ToLower(fe.Field()) + ": failed " + fe.Tag() + " constraint"
	}
	return err.Error()
}
