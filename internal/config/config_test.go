package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tokensmith/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("TOKENSMITH_KEYPAIR", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Network.Default != "mainnet-beta" {
		t.Fatalf("unexpected default network: %q", cfg.Network.Default)
	}
	if cfg.Token.DefaultDecimals != 9 {
		t.Fatalf("unexpected default decimals: %d", cfg.Token.DefaultDecimals)
	}
	wantKeypair := filepath.Join(tempHome, ".config", "solana", "id.json")
	if cfg.Wallet.KeypairPath != wantKeypair {
		t.Fatalf("tilde not expanded: got %q want %q", cfg.Wallet.KeypairPath, wantKeypair)
	}
	if cfg.Tools.Metaboss != "metaboss" {
		t.Fatalf("unexpected metaboss binary: %q", cfg.Tools.Metaboss)
	}
}

func TestLoadReadsFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[wallet]",
		`keypair_path = "/wallets/id.json"`,
		"[network]",
		`default = "devnet"`,
		"[tools]",
		`spl_token = "/opt/solana/spl-token"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TOKENSMITH_KEYPAIR", "/env/id.json")

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Network.Default != "devnet" {
		t.Fatalf("file value not applied: %q", cfg.Network.Default)
	}
	if cfg.Tools.SPLToken != "/opt/solana/spl-token" {
		t.Fatalf("tool override not applied: %q", cfg.Tools.SPLToken)
	}
	if cfg.Wallet.KeypairPath != "/env/id.json" {
		t.Fatalf("env override must win: %q", cfg.Wallet.KeypairPath)
	}
	// Defaults still fill unset sections.
	if cfg.Paths.ScratchDir != "/tmp" {
		t.Fatalf("unexpected scratch dir: %q", cfg.Paths.ScratchDir)
	}
}

func TestValidateRejectsCustomWithoutURL(t *testing.T) {
	cfg := config.Default()
	cfg.Network.Default = "custom"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for custom network without URL")
	}
}

func TestValidateRejectsUnknownNetwork(t *testing.T) {
	cfg := config.Default()
	cfg.Network.Default = "localnet"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown network")
	}
}

func TestValidateRejectsBlankTool(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Solana = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for blank tool binary")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "spl_token_metadata") {
		t.Fatalf("sample missing tool section: %q", string(data))
	}
}
