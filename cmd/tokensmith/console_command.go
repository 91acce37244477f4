package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tokensmith/internal/workflow"
)

func newConsoleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive token console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, ctx)
		},
	}
}

func runConsole(cmd *cobra.Command, cctx *commandContext) error {
	return cctx.withFlows(cmd, true, func(ctx context.Context, flows *workflow.Flows, prompter *stdinPrompter) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "=== Solana Token Manager ===")
		if cmd.InOrStdin() == os.Stdin && !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(out, "Warning: stdin is not a terminal; reading prompts from piped input.")
		}

		if err := flows.VerifyTools(ctx); err != nil {
			return err
		}
		flows.SelectNetwork(ctx)

		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			fmt.Fprintln(out, "\n=== Main Menu ===")
			if handle, ok := flows.Session().Current(); ok {
				fmt.Fprintf(out, "Current token: %s\n", handle.Mint)
			}
			fmt.Fprintln(out, "1. Create a new token")
			fmt.Fprintln(out, "2. Edit token metadata")
			fmt.Fprintln(out, "3. Exit")

			switch prompter.Input("Select an option: ") {
			case "1":
				if err := flows.CreateToken(ctx); err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
				}
			case "2":
				if err := flows.EditMetadata(ctx); err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
				}
			case "3", "q", "quit", "exit":
				fmt.Fprintln(out, "Goodbye!")
				return nil
			default:
				if prompter.closed {
					fmt.Fprintln(out, "Goodbye!")
					return nil
				}
				fmt.Fprintln(out, "Invalid option. Please try again.")
			}
		}
	})
}
