// Package metadata persists name/symbol/URI metadata for a token through an
// ordered chain of strategies. Metadata-writing tools are optional installs
// that may be absent or version-mismatched in any given environment, so the
// chain tries a dedicated tool first, then metaboss with a scratch document,
// then a direct program call, stopping at the first success. Only total
// exhaustion surfaces to the caller.
package metadata
