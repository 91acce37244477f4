// Package solanacli wraps the solana CLI for configuration changes and the
// low-level program-call escape hatch.
package solanacli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tokensmith/internal/logging"
	"tokensmith/internal/services"
	"tokensmith/internal/toolrunner"
)

// Client wraps solana CLI interactions.
type Client struct {
	binary      string
	keypairPath string
	runner      toolrunner.Runner
	logger      *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom runner (primarily for tests).
func WithRunner(r toolrunner.Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a solana CLI client bound to a keypair path.
func New(binary, keypairPath string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("solana binary required")
	}
	client := &Client{
		binary:      binary,
		keypairPath: keypairPath,
		runner:      toolrunner.ExecRunner{},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.WithComponent(client.logger, "solana")
	return client, nil
}

// KeypairPath returns the configured signing keypair location.
func (c *Client) KeypairPath() string {
	return c.keypairPath
}

// SetURL points the CLI at an RPC endpoint via `solana config set --url`.
func (c *Client) SetURL(ctx context.Context, url string) error {
	res := c.run(ctx, "config", "set", "--url", url)
	return c.classify(res, "config set --url")
}

// SetKeypair verifies the keypair file exists, then applies it via
// `solana config set --keypair`.
func (c *Client) SetKeypair(ctx context.Context) error {
	if _, err := os.Stat(c.keypairPath); err != nil {
		return services.Wrap(services.ErrConfiguration, "solana", "set keypair",
			fmt.Sprintf("keypair file not found at %s", c.keypairPath), err)
	}
	res := c.run(ctx, "config", "set", "--keypair", c.keypairPath)
	return c.classify(res, "config set --keypair")
}

// CallProgram issues a direct on-chain program call. Accounts are positional
// and data is passed as raw call bytes; this is the last-resort path when no
// purpose-built tool is installed.
func (c *Client) CallProgram(ctx context.Context, programID, method string, accounts []string, data string) error {
	args := []string{"program", "call", "--keypair", c.keypairPath, programID, method}
	args = append(args, accounts...)
	args = append(args, "--bytes", data)
	res := c.run(ctx, args...)
	return c.classify(res, "program call")
}

// Version probes the binary. Used by startup verification.
func (c *Client) Version(ctx context.Context) error {
	res := c.run(ctx, "--version")
	return c.classify(res, "--version")
}

func (c *Client) run(ctx context.Context, args ...string) toolrunner.Result {
	c.logger.Debug("invoking tool",
		logging.String(logging.FieldTool, c.binary),
		logging.String("args", strings.Join(args, " ")),
	)
	return c.runner.Run(ctx, c.binary, args...)
}

func (c *Client) classify(res toolrunner.Result, operation string) error {
	switch {
	case !res.ToolFound:
		return services.Wrap(services.ErrToolNotFound, "solana", operation, c.binary+" not found in PATH", nil)
	case !res.ExitedSuccessfully:
		return services.Wrap(services.ErrToolFailed, "solana", operation, res.Failure(), nil)
	default:
		return nil
	}
}
