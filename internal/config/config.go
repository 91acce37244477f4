// Package config loads and validates tokensmith configuration from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Wallet contains signing keypair configuration.
type Wallet struct {
	KeypairPath string `toml:"keypair_path"`
}

// Network contains chain endpoint selection.
type Network struct {
	Default      string `toml:"default"`
	CustomRPCURL string `toml:"custom_rpc_url"`
}

// Token contains token-creation defaults.
type Token struct {
	DefaultDecimals uint8 `toml:"default_decimals"`
}

// Tools names the external binaries the console drives. Overridable so
// wrapper scripts or versioned installs can be used without PATH games.
type Tools struct {
	Solana           string `toml:"solana"`
	SPLToken         string `toml:"spl_token"`
	SPLTokenMetadata string `toml:"spl_token_metadata"`
	Metaboss         string `toml:"metaboss"`
}

// Paths contains scratch and bookkeeping locations.
type Paths struct {
	ScratchDir string `toml:"scratch_dir"`
	HistoryDB  string `toml:"history_db"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Wallet  Wallet  `toml:"wallet"`
	Network Network `toml:"network"`
	Token   Token   `toml:"token"`
	Tools   Tools   `toml:"tools"`
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the expected config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tokensmith", "config.toml"), nil
}

// Load reads configuration from path (or the default location when path is
// empty), applies defaults, env overrides, normalization, and validation.
// It reports the resolved path and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// clobber an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// EnsureDirectories creates the scratch and history locations.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.ScratchDir, filepath.Dir(c.Paths.HistoryDB)}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("TOKENSMITH_KEYPAIR")); env != "" {
		c.Wallet.KeypairPath = env
	}

	var err error
	if c.Wallet.KeypairPath, err = expandPath(c.Wallet.KeypairPath); err != nil {
		return err
	}
	if c.Paths.ScratchDir, err = expandPath(c.Paths.ScratchDir); err != nil {
		return err
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return err
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, true, nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
