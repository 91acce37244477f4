package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tokensmith/internal/logging"
	"tokensmith/internal/metadata"
	"tokensmith/internal/services"
)

// EditMetadata runs the metadata pass: resolve the target mint (defaulting
// to the session's token), collect the required fields, drive the strategy
// chain, and offer update-authority revocation.
func (f *Flows) EditMetadata(ctx context.Context) error {
	return f.editMetadata(ctx, "")
}

// EditMetadataFor runs the metadata pass against a known mint, skipping the
// target prompt. Used by the one-shot metadata command.
func (f *Flows) EditMetadataFor(ctx context.Context, mint string) error {
	mint = strings.TrimSpace(mint)
	if mint == "" {
		return services.Wrap(services.ErrValidation, "workflow", "edit metadata",
			"mint address is required", nil)
	}
	return f.editMetadata(ctx, mint)
}

func (f *Flows) editMetadata(ctx context.Context, mint string) error {
	ctx = services.WithWorkflow(ctx, "edit-metadata")
	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, f.logger)

	fmt.Fprintln(f.out, "\n=== Edit Token Metadata ===")

	if mint == "" {
		mint = f.resolveMint()
	}
	if mint == "" {
		return services.Wrap(services.ErrValidation, "workflow", "edit metadata",
			"invalid token mint address, operation canceled", nil)
	}

	fmt.Fprintf(f.out, "Verifying token: %s\n", mint)
	if !f.tokens.TokenExists(ctx, mint) {
		return services.Wrap(services.ErrValidation, "workflow", "edit metadata",
			"token does not exist or is not accessible, operation canceled", nil)
	}

	req := metadata.Request{
		Mint:   mint,
		Name:   f.prompter.Input("Enter token name: "),
		Symbol: f.prompter.Input("Enter token symbol: "),
		URI:    f.prompter.Input("Enter metadata URI (e.g., link to JSON file): "),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := f.chain.SetKeypair(ctx); err != nil {
		return err
	}

	fmt.Fprintln(f.out, "Updating token metadata...")
	strategy, attempts, err := f.writer.Write(ctx, req)
	f.reportAttempts(attempts)
	if err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Metadata updated successfully via %s!\n", strategy)
	logger.Info("metadata updated",
		logging.String(logging.FieldMint, mint),
		logging.String(logging.FieldStrategy, strategy),
	)

	if f.prompter.Confirm("Would you like to revoke update authority?") {
		if err := f.updateRevoker.Revoke(ctx, mint); err != nil {
			fmt.Fprintf(f.out, "Failed to revoke update authority: %v\n", err)
		} else {
			fmt.Fprintln(f.out, "Update authority revoked successfully.")
		}
	}

	return nil
}

func (f *Flows) resolveMint() string {
	if handle, ok := f.session.Current(); ok {
		if f.prompter.Confirm(fmt.Sprintf("Use current token (%s)?", handle.Mint)) {
			return handle.Mint
		}
	}
	return strings.TrimSpace(f.prompter.Input("Enter token mint address: "))
}

func (f *Flows) reportAttempts(attempts metadata.AttemptLog) {
	for _, attempt := range attempts {
		fmt.Fprintf(f.out, "  %s: %s\n", attempt.Strategy, attempt.Verdict())
	}
}
