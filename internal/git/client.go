// Package git looks up repository metadata for report headers. It is a
// best-effort provider: when git is unavailable or the working
// directory is not a repository, every lookup degrades to "unknown".
package git

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const lookupTimeout = 5 * time.Second

// Unknown is the fallback value for every metadata field.
const Unknown = "unknown"

// Client reads metadata from the ambient git repository.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Commit returns the short hash of HEAD, or "unknown".
func (c *Client) Commit() string {
	return c.lookup("rev-parse", "--short", "HEAD")
}

// Branch returns the current branch name, or "unknown".
func (c *Client) Branch() string {
	return c.lookup("rev-parse", "--abbrev-ref", "HEAD")
}

func (c *Client) lookup(args ...string) string {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return Unknown
	}
	value := strings.TrimSpace(string(out))
	if value == "" {
		return Unknown
	}
	return value
}
