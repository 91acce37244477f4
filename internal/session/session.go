// Package session holds the token created most recently in the running
// console so later workflows can default to it. The handle lives only in
// memory; nothing here touches disk.
package session

import "tokensmith/internal/services"

// TokenHandle identifies the active token. Account may be empty when the
// associated account was not (or not yet) created.
type TokenHandle struct {
	Mint    string
	Account string
}

// State is the per-process session. Workflows receive it explicitly rather
// than reading ambient globals. Access is single-threaded by design: the
// console never runs two workflows concurrently.
type State struct {
	handle *TokenHandle
}

func NewState() *State {
	return &State{}
}

// RecordToken replaces the handle with a new mint/account pair. Both fields
// change together, so a reader never sees an account attached to a prior
// mint. The mint is required; there is no removal operation.
func (s *State) RecordToken(mint, account string) error {
	if mint == "" {
		return services.Wrap(services.ErrValidation, "session", "record token", "mint address is required", nil)
	}
	s.handle = &TokenHandle{Mint: mint, Account: account}
	return nil
}

// Current returns the active token handle, if any.
func (s *State) Current() (TokenHandle, bool) {
	if s.handle == nil {
		return TokenHandle{}, false
	}
	return *s.handle, true
}
