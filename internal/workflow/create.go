package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tokensmith/internal/authority"
	"tokensmith/internal/history"
	"tokensmith/internal/logging"
	"tokensmith/internal/services"
)

// CreateToken runs the full creation pass: keypair config, mint creation,
// associated account, optional initial mint, authority offers, and an
// optional jump straight into metadata editing. Mint and authority problems
// after the token exists are warnings, not aborts: the operator already owns
// a real mint at that point.
func (f *Flows) CreateToken(ctx context.Context) error {
	ctx = services.WithWorkflow(ctx, "create-token")
	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, f.logger)

	fmt.Fprintln(f.out, "\n=== Create a New Token ===")

	if err := f.chain.SetKeypair(ctx); err != nil {
		return err
	}
	fmt.Fprintln(f.out, "Keypair configuration set successfully.")

	decimals := f.promptDecimals()
	fmt.Fprintf(f.out, "Creating token with %d decimals...\n", decimals)
	mint, err := f.tokens.CreateToken(ctx, decimals)
	if err != nil {
		return err
	}
	fmt.Fprintln(f.out, "Token created successfully!")
	fmt.Fprintf(f.out, "Token mint address: %s\n", mint)
	if err := f.session.RecordToken(mint, ""); err != nil {
		return err
	}
	logger.Info("token created", logging.String(logging.FieldMint, mint))

	fmt.Fprintln(f.out, "Creating associated token account for the current wallet...")
	account, err := f.tokens.CreateAccount(ctx, mint)
	if err != nil {
		return err
	}
	fmt.Fprintln(f.out, "Token account created successfully!")
	fmt.Fprintf(f.out, "Token account address: %s\n", account)
	if err := f.session.RecordToken(mint, account); err != nil {
		return err
	}

	f.recordLedger(ctx, logger, mint, account, decimals)

	if err := f.mintInitialSupply(ctx, mint); err != nil {
		fmt.Fprintf(f.out, "Warning: Failed to mint tokens: %v\n", err)
		fmt.Fprintln(f.out, "You can mint tokens later using the spl-token mint command.")
	}

	agg := f.authority.RevokeRequested(ctx, mint)
	f.reportAuthorityOutcomes(agg)

	if f.prompter.Confirm("Would you like to add metadata to your token now?") {
		if err := f.EditMetadata(ctx); err != nil {
			fmt.Fprintf(f.out, "Warning: Failed to add metadata: %v\n", err)
			fmt.Fprintln(f.out, "You can add metadata later from the main menu.")
		}
	}

	return nil
}

func (f *Flows) promptDecimals() uint8 {
	def := f.cfg.Token.DefaultDecimals
	fmt.Fprintln(f.out, "How many decimals would you like for your token?")
	fmt.Fprintf(f.out, "(Press Enter for default: %d decimals)\n", def)
	input := strings.TrimSpace(f.prompter.Input("Decimals: "))
	if input == "" {
		return def
	}
	parsed, err := strconv.ParseUint(input, 10, 8)
	if err != nil {
		fmt.Fprintf(f.out, "Invalid input. Using default: %d decimals.\n", def)
		return def
	}
	return uint8(parsed)
}

func (f *Flows) mintInitialSupply(ctx context.Context, mint string) error {
	fmt.Fprintln(f.out, "How many tokens would you like to mint?")
	amount := strings.TrimSpace(f.prompter.Input("Amount: "))
	if amount == "" {
		return services.Wrap(services.ErrValidation, "workflow", "mint tokens", "amount cannot be empty", nil)
	}
	if _, err := strconv.ParseFloat(amount, 64); err != nil {
		return services.Wrap(services.ErrValidation, "workflow", "mint tokens", "invalid amount format", nil)
	}

	fmt.Fprintf(f.out, "Minting %s tokens...\n", amount)
	if err := f.tokens.Mint(ctx, mint, amount); err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Successfully minted %s tokens!\n", amount)
	return nil
}

func (f *Flows) reportAuthorityOutcomes(agg authority.Aggregate) {
	for _, result := range agg.Results {
		switch result.Outcome {
		case authority.Revoked:
			fmt.Fprintf(f.out, "%s authority revoked successfully.\n", result.Kind.Label())
		case authority.RevokeFailed:
			fmt.Fprintf(f.out, "Failed to revoke %s authority: %v\n", result.Kind, result.Err)
		}
	}
	if agg.Failed() {
		fmt.Fprintln(f.out, "Warning: Issue with authority management.")
	}
}

func (f *Flows) recordLedger(ctx context.Context, logger *slog.Logger, mint, account string, decimals uint8) {
	if f.history == nil {
		return
	}
	_, err := f.history.Record(ctx, history.Entry{
		Mint:     mint,
		Account:  account,
		Network:  f.network,
		Decimals: int(decimals),
	})
	if err != nil {
		logger.Warn("ledger record failed", logging.Args(logging.Error(err))...)
	}
}
