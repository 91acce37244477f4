package metadata

import (
	"context"
	"log/slog"

	"tokensmith/internal/logging"
	"tokensmith/internal/services"
	"tokensmith/internal/toolrunner"
)

// UpdateAuthorityRevoker removes the metadata-update authority for a token.
// Like the write chain it is a fallback pair: the dedicated metadata tool
// first, then metaboss pointed at the resolved metadata account.
type UpdateAuthorityRevoker struct {
	metadataBinary string
	metabossBinary string
	keypairPath    string
	runner         toolrunner.Runner
	resolver       *Resolver
	logger         *slog.Logger
}

// RevokerDeps collects the revoker's collaborators.
type RevokerDeps struct {
	MetadataBinary string
	MetabossBinary string
	KeypairPath    string
	Runner         toolrunner.Runner
	Resolver       *Resolver
	Logger         *slog.Logger
}

// NewUpdateAuthorityRevoker constructs the two-step revoker.
func NewUpdateAuthorityRevoker(deps RevokerDeps) *UpdateAuthorityRevoker {
	runner := deps.Runner
	if runner == nil {
		runner = toolrunner.ExecRunner{}
	}
	return &UpdateAuthorityRevoker{
		metadataBinary: deps.MetadataBinary,
		metabossBinary: deps.MetabossBinary,
		keypairPath:    deps.KeypairPath,
		runner:         runner,
		resolver:       deps.Resolver,
		logger:         logging.WithComponent(deps.Logger, "update-authority"),
	}
}

// Revoke sets the token's update authority to null. The dedicated tool's
// failure falls through to metaboss; only the second failure surfaces.
func (u *UpdateAuthorityRevoker) Revoke(ctx context.Context, mint string) error {
	res := u.runner.Run(ctx, u.metadataBinary, "update", "authority",
		"--keypair", u.keypairPath,
		"--mint", mint,
		"--new-update-authority", "null",
	)
	if res.ToolFound && res.ExitedSuccessfully {
		return nil
	}
	u.logger.Warn("dedicated tool could not revoke update authority, trying metaboss",
		logging.String(logging.FieldMint, mint),
		logging.Bool("tool_found", res.ToolFound),
	)

	metadataAddr := u.resolver.MetadataAddress(ctx, mint)
	res = u.runner.Run(ctx, u.metabossBinary, "update", "authority",
		"--keypair", u.keypairPath,
		"--account", metadataAddr,
		"--new-authority", "null",
	)
	switch {
	case !res.ToolFound:
		return services.Wrap(services.ErrToolNotFound, "update-authority", "metaboss",
			u.metabossBinary+" not found in PATH", nil)
	case !res.ExitedSuccessfully:
		return services.Wrap(services.ErrToolFailed, "update-authority", "metaboss", res.Failure(), nil)
	default:
		return nil
	}
}
