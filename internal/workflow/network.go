package workflow

import (
	"context"
	"fmt"
	"strings"

	"tokensmith/internal/logging"
)

// Endpoint describes a selectable cluster.
type Endpoint struct {
	Name   string
	RPCURL string
}

var endpoints = []Endpoint{
	{Name: "mainnet-beta", RPCURL: "https://api.mainnet-beta.solana.com"},
	{Name: "devnet", RPCURL: "https://api.devnet.solana.com"},
	{Name: "testnet", RPCURL: "https://api.testnet.solana.com"},
}

// SelectNetwork offers the cluster menu and applies the choice through
// `solana config set`. A failed apply falls back to the configured default
// with a warning; network trouble never blocks the console.
func (f *Flows) SelectNetwork(ctx context.Context) string {
	fmt.Fprintln(f.out, "\nSelect Solana network:")
	for i, ep := range endpoints {
		fmt.Fprintf(f.out, "%d. %s (%s)\n", i+1, ep.Name, ep.RPCURL)
	}
	fmt.Fprintf(f.out, "%d. Custom RPC URL\n", len(endpoints)+1)

	choice := f.prompter.Input("Select network (default: mainnet-beta): ")

	name, url := endpoints[0].Name, endpoints[0].RPCURL
	switch strings.TrimSpace(choice) {
	case "2":
		name, url = endpoints[1].Name, endpoints[1].RPCURL
	case "3":
		name, url = endpoints[2].Name, endpoints[2].RPCURL
	case "4":
		custom := strings.TrimSpace(f.prompter.Input("Enter custom RPC URL: "))
		if custom == "" {
			custom = strings.TrimSpace(f.cfg.Network.CustomRPCURL)
		}
		if custom != "" {
			name, url = "custom", custom
		}
	}

	fmt.Fprintf(f.out, "Setting Solana network to %s...\n", name)
	if err := f.chain.SetURL(ctx, url); err != nil {
		fmt.Fprintf(f.out, "Warning: failed to set network: %v\n", err)
		fmt.Fprintf(f.out, "Using default network: %s\n", f.cfg.Network.Default)
		f.logger.Warn("network apply failed",
			logging.String("network", name),
			logging.Error(err),
		)
		f.network = f.cfg.Network.Default
		return f.network
	}

	fmt.Fprintf(f.out, "Network set to %s successfully.\n", name)
	f.network = name
	return f.network
}
