// Package authority drives interactive revocation of token authorities.
// Each kind is offered, attempted, and recorded independently: one failure
// never prevents the next attempt, and the aggregate reports failure iff
// any requested kind failed.
package authority

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tokensmith/internal/logging"
)

// Kind is one revocable token authority.
type Kind string

const (
	KindMint   Kind = "mint"
	KindFreeze Kind = "freeze"
)

// kinds is the fixed offer order.
var kinds = []Kind{KindMint, KindFreeze}

var titleCaser = cases.Title(language.English)

// Label renders the kind for operator-facing text.
func (k Kind) Label() string {
	return titleCaser.String(string(k))
}

// Outcome classifies how one kind ended within a single pass. Each kind's
// outcome is set exactly once and never reset.
type Outcome int

const (
	NotRequested Outcome = iota
	Revoked
	RevokeFailed
)

func (o Outcome) String() string {
	switch o {
	case Revoked:
		return "revoked"
	case RevokeFailed:
		return "failed"
	default:
		return "not requested"
	}
}

// Result is the per-kind record.
type Result struct {
	Kind    Kind
	Outcome Outcome
	Err     error
}

// Aggregate is the full pass record, in offer order.
type Aggregate struct {
	Results []Result
}

// Failed reports whether any requested kind failed.
func (a Aggregate) Failed() bool {
	for _, r := range a.Results {
		if r.Outcome == RevokeFailed {
			return true
		}
	}
	return false
}

// ByKind returns the record for one kind.
func (a Aggregate) ByKind(kind Kind) (Result, bool) {
	for _, r := range a.Results {
		if r.Kind == kind {
			return r, true
		}
	}
	return Result{}, false
}

// Revoker executes the disable-authority tool call for one kind.
type Revoker interface {
	DisableAuthority(ctx context.Context, mint, kind string) error
}

// Confirmer asks the operator a yes/no question.
type Confirmer func(prompt string) bool

// Manager sequences the offers.
type Manager struct {
	revoker Revoker
	confirm Confirmer
	logger  *slog.Logger
}

// NewManager constructs a manager.
func NewManager(revoker Revoker, confirm Confirmer, logger *slog.Logger) (*Manager, error) {
	if revoker == nil {
		return nil, errors.New("revoker required")
	}
	if confirm == nil {
		return nil, errors.New("confirmer required")
	}
	return &Manager{
		revoker: revoker,
		confirm: confirm,
		logger:  logging.WithComponent(logger, "authority"),
	}, nil
}

// RevokeRequested offers each kind in fixed order and attempts every
// accepted one. There is no short-circuit: a mint-authority failure still
// offers and attempts freeze.
func (m *Manager) RevokeRequested(ctx context.Context, mint string) Aggregate {
	agg := Aggregate{Results: make([]Result, 0, len(kinds))}
	for _, kind := range kinds {
		if !m.confirm(fmt.Sprintf("Would you like to revoke %s authority?", kind)) {
			agg.Results = append(agg.Results, Result{Kind: kind, Outcome: NotRequested})
			continue
		}
		err := m.revoker.DisableAuthority(ctx, mint, string(kind))
		if err != nil {
			m.logger.Warn("authority revocation failed",
				logging.String(logging.FieldAuthority, string(kind)),
				logging.String(logging.FieldMint, mint),
				logging.Error(err),
			)
			agg.Results = append(agg.Results, Result{Kind: kind, Outcome: RevokeFailed, Err: err})
			continue
		}
		m.logger.Info("authority revoked",
			logging.String(logging.FieldAuthority, string(kind)),
			logging.String(logging.FieldMint, mint),
		)
		agg.Results = append(agg.Results, Result{Kind: kind, Outcome: Revoked})
	}
	return agg
}
