package main

import (
	"context"

	"github.com/spf13/cobra"

	"tokensmith/internal/workflow"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new fungible token",
		Long: "Create walks through one token creation pass: mint, associated " +
			"account, optional initial supply, and authority revocation offers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFlows(cmd, true, func(runCtx context.Context, flows *workflow.Flows, _ *stdinPrompter) error {
				return flows.CreateToken(runCtx)
			})
		},
	}
}

func newMetadataCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata [mint]",
		Short: "Attach or update token metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFlows(cmd, false, func(runCtx context.Context, flows *workflow.Flows, _ *stdinPrompter) error {
				if len(args) == 1 {
					return flows.EditMetadataFor(runCtx, args[0])
				}
				return flows.EditMetadata(runCtx)
			})
		},
	}
}

func newRevokeCommand(ctx *commandContext) *cobra.Command {
	var mintAuthority, freezeAuthority, updateAuthority bool

	cmd := &cobra.Command{
		Use:   "revoke <mint>",
		Short: "Revoke token authorities without prompting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFlows(cmd, false, func(runCtx context.Context, flows *workflow.Flows, _ *stdinPrompter) error {
				return flows.RevokeAuthorities(runCtx, args[0], workflow.RevokeSelection{
					Mint:   mintAuthority,
					Freeze: freezeAuthority,
					Update: updateAuthority,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&mintAuthority, "mint-authority", false, "Revoke the mint authority")
	cmd.Flags().BoolVar(&freezeAuthority, "freeze-authority", false, "Revoke the freeze authority")
	cmd.Flags().BoolVar(&updateAuthority, "update-authority", false, "Revoke the metadata update authority")

	return cmd
}
