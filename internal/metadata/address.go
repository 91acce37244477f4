package metadata

import (
	"context"
	"log/slog"

	"tokensmith/internal/extract"
	"tokensmith/internal/logging"
	"tokensmith/internal/pda"
	"tokensmith/internal/toolrunner"
)

// ProgramID is the on-chain token-metadata program.
const ProgramID = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

// Resolver produces a metadata-account address for a mint. It never fails:
// the tool lookup is tried first, then local PDA derivation, and as an
// absolute last resort a placeholder that downstream calls will reject.
type Resolver struct {
	binary string
	runner toolrunner.Runner
	logger *slog.Logger
}

// ResolverOption configures the resolver.
type ResolverOption func(*Resolver)

// WithResolverRunner injects a custom runner (primarily for tests).
func WithResolverRunner(r toolrunner.Runner) ResolverOption {
	return func(res *Resolver) {
		if r != nil {
			res.runner = r
		}
	}
}

// NewResolver constructs a resolver backed by the spl-token-metadata binary.
func NewResolver(binary string, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		binary: binary,
		runner: toolrunner.ExecRunner{},
		logger: logging.WithComponent(logger, "metadata-address"),
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

// MetadataAddress resolves the metadata account for mint. The lookup tool's
// answer wins when available; otherwise the address is derived locally. The
// placeholder fallback is not a real derived address and is returned only
// when the mint itself is not decodable, so later stages fail loudly rather
// than silently.
func (r *Resolver) MetadataAddress(ctx context.Context, mint string) string {
	res := r.runner.Run(ctx, r.binary, "find", mint)
	if res.ToolFound && res.ExitedSuccessfully {
		if addr, err := extract.Address(res.Stdout, extract.MetadataAddressMarkers); err == nil {
			return addr
		}
		r.logger.Warn("lookup tool output had no metadata address line",
			logging.String(logging.FieldMint, mint),
		)
	}

	addr, err := pda.MetadataAddress(mint, ProgramID)
	if err == nil {
		r.logger.Debug("derived metadata address locally",
			logging.String(logging.FieldMint, mint),
		)
		return addr
	}

	r.logger.Warn("metadata address underivable, using non-functional placeholder",
		logging.String(logging.FieldMint, mint),
		logging.Error(err),
	)
	return "metadata_" + mint
}
