// Package workflow sequences the operator-facing flows: startup tool
// verification, network selection, token creation, and metadata editing.
// Flows print progress to their output writer and block on the prompter;
// external tool calls are strictly sequential.
package workflow

import (
	"errors"
	"io"
	"log/slog"

	"tokensmith/internal/authority"
	"tokensmith/internal/config"
	"tokensmith/internal/history"
	"tokensmith/internal/logging"
	"tokensmith/internal/metadata"
	"tokensmith/internal/session"
	"tokensmith/internal/solanacli"
	"tokensmith/internal/spltoken"
)

// Prompter supplies operator input for interactive workflows. Input returns
// the trimmed line.
type Prompter interface {
	Input(prompt string) string
	Confirm(prompt string) bool
}

// Deps collects the collaborators a Flows value drives.
type Deps struct {
	Config        *config.Config
	Tokens        *spltoken.Client
	Chain         *solanacli.Client
	Writer        *metadata.Writer
	UpdateRevoker *metadata.UpdateAuthorityRevoker
	Authority     *authority.Manager
	Session       *session.State
	History       *history.Store // optional; nil disables the ledger
	Prompter      Prompter
	Output        io.Writer
	Logger        *slog.Logger
}

// Flows owns one console session's workflows.
type Flows struct {
	cfg           *config.Config
	tokens        *spltoken.Client
	chain         *solanacli.Client
	writer        *metadata.Writer
	updateRevoker *metadata.UpdateAuthorityRevoker
	authority     *authority.Manager
	session       *session.State
	history       *history.Store
	prompter      Prompter
	out           io.Writer
	logger        *slog.Logger

	// network is the cluster name applied by SelectNetwork, recorded with
	// each ledger entry.
	network string
}

// New validates deps and constructs the flows.
func New(deps Deps) (*Flows, error) {
	switch {
	case deps.Config == nil:
		return nil, errors.New("config required")
	case deps.Tokens == nil:
		return nil, errors.New("spl-token client required")
	case deps.Chain == nil:
		return nil, errors.New("solana client required")
	case deps.Writer == nil:
		return nil, errors.New("metadata writer required")
	case deps.UpdateRevoker == nil:
		return nil, errors.New("update-authority revoker required")
	case deps.Authority == nil:
		return nil, errors.New("authority manager required")
	case deps.Session == nil:
		return nil, errors.New("session state required")
	case deps.Prompter == nil:
		return nil, errors.New("prompter required")
	case deps.Output == nil:
		return nil, errors.New("output writer required")
	}
	return &Flows{
		cfg:           deps.Config,
		tokens:        deps.Tokens,
		chain:         deps.Chain,
		writer:        deps.Writer,
		updateRevoker: deps.UpdateRevoker,
		authority:     deps.Authority,
		session:       deps.Session,
		history:       deps.History,
		prompter:      deps.Prompter,
		out:           deps.Output,
		logger:        logging.WithComponent(deps.Logger, "workflow"),
		network:       deps.Config.Network.Default,
	}, nil
}

// Session exposes the session state for the console banner.
func (f *Flows) Session() *session.State {
	return f.session
}

// Network reports the currently applied cluster name.
func (f *Flows) Network() string {
	return f.network
}
