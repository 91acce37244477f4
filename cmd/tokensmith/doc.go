// Package main hosts the tokensmith CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the token workflows: the interactive
// console, one-shot create/metadata/revoke passes, the creation ledger, and
// configuration scaffolding. It centralizes configuration resolution, logger
// setup, and external-tool client wiring so subcommands can focus on user
// experience instead of plumbing.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
