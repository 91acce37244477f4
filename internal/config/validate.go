package config

import (
	"errors"
	"fmt"
	"strings"
)

var knownNetworks = map[string]struct{}{
	"mainnet-beta": {},
	"devnet":       {},
	"testnet":      {},
	"custom":       {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWallet(); err != nil {
		return err
	}
	if err := c.validateNetwork(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWallet() error {
	if strings.TrimSpace(c.Wallet.KeypairPath) == "" {
		return errors.New("wallet.keypair_path must be set")
	}
	return nil
}

func (c *Config) validateNetwork() error {
	if _, ok := knownNetworks[c.Network.Default]; !ok {
		return fmt.Errorf("network.default must be one of mainnet-beta, devnet, testnet, custom; got %q", c.Network.Default)
	}
	if c.Network.Default == "custom" && strings.TrimSpace(c.Network.CustomRPCURL) == "" {
		return errors.New("network.custom_rpc_url must be set when network.default is custom")
	}
	return nil
}

func (c *Config) validateTools() error {
	tools := map[string]string{
		"tools.solana":             c.Tools.Solana,
		"tools.spl_token":          c.Tools.SPLToken,
		"tools.spl_token_metadata": c.Tools.SPLTokenMetadata,
		"tools.metaboss":           c.Tools.Metaboss,
	}
	for key, value := range tools {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must name a binary", key)
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ScratchDir) == "" {
		return errors.New("paths.scratch_dir must be set")
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		return errors.New("paths.history_db must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json; got %q", c.Logging.Format)
	}
	return nil
}
