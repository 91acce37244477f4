// Package spltoken wraps the spl-token CLI. Every method shells out through
// the tool runner and interprets the textual result; nothing here signs or
// submits transactions directly.
package spltoken

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"tokensmith/internal/extract"
	"tokensmith/internal/logging"
	"tokensmith/internal/services"
	"tokensmith/internal/toolrunner"
)

// Client wraps spl-token CLI interactions.
type Client struct {
	binary string
	runner toolrunner.Runner
	logger *slog.Logger
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

// New constructs an spl-token client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("spl-token binary required")
	}
	client := &Client{
		binary: binary,
		runner: toolrunner.ExecRunner{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.WithComponent(client.logger, "spl-token")
	return client, nil
}

// CreateToken runs create-token and extracts the new mint address from the
// tool's output.
func (c *Client) CreateToken(ctx context.Context, decimals uint8) (string, error) {
	res := c.run(ctx, "create-token", "--decimals", strconv.Itoa(int(decimals)))
	if err := c.classify(res, "create-token"); err != nil {
		return "", err
	}
	mint, err := extract.Address(res.Stdout, extract.TokenMarkers)
	if err != nil {
		return "", err
	}
	return mint, nil
}

// CreateAccount creates the associated token account for mint and extracts
// its address.
func (c *Client) CreateAccount(ctx context.Context, mint string) (string, error) {
	res := c.run(ctx, "create-account", mint)
	if err := c.classify(res, "create-account"); err != nil {
		return "", err
	}
	account, err := extract.Address(res.Stdout, extract.AccountMarkers)
	if err != nil {
		return "", err
	}
	return account, nil
}

// Mint mints amount tokens to the mint's associated account. Amount is kept
// as operator-entered text; the tool owns numeric interpretation.
func (c *Client) Mint(ctx context.Context, mint, amount string) error {
	res := c.run(ctx, "mint", mint, amount)
	return c.classify(res, "mint")
}

// DisableAuthority revokes the named authority kind ("mint" or "freeze")
// for the token.
func (c *Client) DisableAuthority(ctx context.Context, mint, kind string) error {
	res := c.run(ctx, "authorize", mint, kind, "--disable")
	return c.classify(res, "authorize "+kind)
}

// TokenExists reports whether the mint is visible on the selected network,
// using the supply query as an existence probe.
func (c *Client) TokenExists(ctx context.Context, mint string) bool {
	res := c.run(ctx, "supply", mint)
	return res.ToolFound && res.ExitedSuccessfully
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
		return services.Wrap(services.ErrToolNotFound, "spl-token", operation, c.binary+" not found in PATH", nil)
	case !res.ExitedSuccessfully:
		return services.Wrap(services.ErrToolFailed, "spl-token", operation, res.Failure(), nil)
	default:
		return nil
	}
}
