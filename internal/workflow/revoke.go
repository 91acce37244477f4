package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tokensmith/internal/authority"
	"tokensmith/internal/logging"
	"tokensmith/internal/services"
)

// RevokeSelection names the authorities to revoke without prompting. Used by
// the one-shot revoke command; the interactive flows go through the
// authority manager instead.
type RevokeSelection struct {
	Mint   bool
	Freeze bool
	Update bool
}

func (s RevokeSelection) empty() bool {
	return !s.Mint && !s.Freeze && !s.Update
}

// RevokeAuthorities revokes the selected authorities for mint. Every selected
// kind is attempted even when an earlier one fails; the error reports all
// failures.
func (f *Flows) RevokeAuthorities(ctx context.Context, mint string, sel RevokeSelection) error {
	ctx = services.WithWorkflow(ctx, "revoke")
	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, f.logger)

	mint = strings.TrimSpace(mint)
	if mint == "" {
		return services.Wrap(services.ErrValidation, "workflow", "revoke", "mint address is required", nil)
	}
	if sel.empty() {
		return services.Wrap(services.ErrValidation, "workflow", "revoke", "no authorities selected", nil)
	}

	if err := f.chain.SetKeypair(ctx); err != nil {
		return err
	}

	var failed []string
	disable := func(kind authority.Kind) {
		if err := f.tokens.DisableAuthority(ctx, mint, string(kind)); err != nil {
			fmt.Fprintf(f.out, "Failed to revoke %s authority: %v\n", kind, err)
			failed = append(failed, string(kind))
			return
		}
		fmt.Fprintf(f.out, "%s authority revoked successfully.\n", kind.Label())
	}
	if sel.Mint {
		disable(authority.KindMint)
	}
	if sel.Freeze {
		disable(authority.KindFreeze)
	}
	if sel.Update {
		if err := f.updateRevoker.Revoke(ctx, mint); err != nil {
			fmt.Fprintf(f.out, "Failed to revoke update authority: %v\n", err)
			failed = append(failed, "update")
		} else {
			fmt.Fprintln(f.out, "Update authority revoked successfully.")
		}
	}

	if len(failed) > 0 {
		return services.Wrap(services.ErrToolFailed, "workflow", "revoke",
			"could not revoke: "+strings.Join(failed, ", "), nil)
	}
	logger.Info("authorities revoked",
		logging.String(logging.FieldMint, mint),
	)
	return nil
}
