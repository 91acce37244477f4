package main

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tokensmith/internal/authority"
	"tokensmith/internal/config"
	"tokensmith/internal/history"
	"tokensmith/internal/logging"
	"tokensmith/internal/metadata"
	"tokensmith/internal/session"
	"tokensmith/internal/solanacli"
	"tokensmith/internal/spltoken"
	"tokensmith/internal/toolrunner"
	"tokensmith/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

// withFlows wires the full dependency graph for one command invocation and
// hands fn the flows plus the prompter driving them. The history ledger is
// opened only when the command records or reads entries.
func (c *commandContext) withFlows(cmd *cobra.Command, withLedger bool, fn func(ctx context.Context, flows *workflow.Flows, prompter *stdinPrompter) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return err
	}

	runner := toolrunner.ExecRunner{}
	tokens, err := spltoken.New(cfg.Tools.SPLToken,
		spltoken.WithRunner(runner), spltoken.WithLogger(logger))
	if err != nil {
		return err
	}
	chain, err := solanacli.New(cfg.Tools.Solana, cfg.Wallet.KeypairPath,
		solanacli.WithRunner(runner), solanacli.WithLogger(logger))
	if err != nil {
		return err
	}
	resolver := metadata.NewResolver(cfg.Tools.SPLTokenMetadata, logger,
		metadata.WithResolverRunner(runner))
	writer, err := metadata.NewWriter(metadata.Deps{
		MetadataBinary: cfg.Tools.SPLTokenMetadata,
		MetabossBinary: cfg.Tools.Metaboss,
		KeypairPath:    cfg.Wallet.KeypairPath,
		ScratchDir:     cfg.Paths.ScratchDir,
		Runner:         runner,
		Chain:          chain,
		Resolver:       resolver,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	updateRevoker := metadata.NewUpdateAuthorityRevoker(metadata.RevokerDeps{
		MetadataBinary: cfg.Tools.SPLTokenMetadata,
		MetabossBinary: cfg.Tools.Metaboss,
		KeypairPath:    cfg.Wallet.KeypairPath,
		Runner:         runner,
		Resolver:       resolver,
		Logger:         logger,
	})

	prompter := newStdinPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	manager, err := authority.NewManager(tokens, prompter.Confirm, logger)
	if err != nil {
		return err
	}

	var store *history.Store
	if withLedger {
		store, err = history.Open(cfg.Paths.HistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	flows, err := workflow.New(workflow.Deps{
		Config:        cfg,
		Tokens:        tokens,
		Chain:         chain,
		Writer:        writer,
		UpdateRevoker: updateRevoker,
		Authority:     manager,
		Session:       session.NewState(),
		History:       store,
		Prompter:      prompter,
		Output:        cmd.OutOrStdout(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	return fn(cmd.Context(), flows, prompter)
}

func (c *commandContext) withStore(cmd *cobra.Command, fn func(ctx context.Context, store *history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cmd.Context(), store)
}
