package workflow

import (
	"context"
	"fmt"
	"strings"

	"tokensmith/internal/services"
)

// VerifyTools probes the required CLI binaries before the console starts.
// The optional metadata tools are not checked here: their absence is exactly
// what the strategy chain is for.
func (f *Flows) VerifyTools(ctx context.Context) error {
	fmt.Fprintln(f.out, "Verifying CLI tools...")

	var missing []string
	if err := f.chain.Version(ctx); err != nil {
		missing = append(missing, f.cfg.Tools.Solana)
	}
	if err := f.tokens.Version(ctx); err != nil {
		missing = append(missing, f.cfg.Tools.SPLToken)
	}
	if len(missing) > 0 {
		return services.Wrap(services.ErrConfiguration, "workflow", "verify tools",
			strings.Join(missing, ", ")+" not installed or not functioning", nil)
	}

	fmt.Fprintln(f.out, "CLI tools verification successful!")
	return nil
}
