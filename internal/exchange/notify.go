package exchange

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ShareEvent describes a memory that was just shared.
type ShareEvent struct {
	MemoryID string    `json:"memory_id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	ViewURL  string    `json:"view_url"`
	At       time.Time `json:"at"`
}

// notifyShared fans a share event out to the always-on notification log and
// to the registered callback, if any. Both paths are best-effort: the share
// already completed server-side, so nothing here may fail it.
func (c *Client) notifyShared(ev ShareEvent) {
	if err := c.appendNotification(ev); err != nil {
		c.logger.Warn("notification log append failed", zap.Error(err))
	}
	if c.onShare != nil {
		c.invokeCallback(ev)
	}
}

func (c *Client) invokeCallback(ev ShareEvent) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("share callback panicked", zap.Any("panic", r))
		}
	}()
	c.onShare(ev)
}

func (c *Client) appendNotification(ev ShareEvent) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(c.dir, "notifications.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	block := fmt.Sprintf("[%s] shared %q (%s)\n  id:  %s\n  url: %s\n",
		ev.At.Format(time.RFC3339), ev.Title, ev.Category, ev.MemoryID, ev.ViewURL)
	_, err = f.WriteString(block)
	return err
}
