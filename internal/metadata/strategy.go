package metadata

import (
	"context"

	"tokensmith/internal/services"
	"tokensmith/internal/solanacli"
	"tokensmith/internal/toolrunner"
)

// Strategy names, in chain order.
const (
	StrategyMetadataTool = "spl-token-metadata"
	StrategyMetaboss     = "metaboss"
	StrategyProgramCall  = "program-call"
)

// Strategy is one way of persisting token metadata on chain. Attempt returns
// nil on success; any error means the chain falls through to the next entry.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, req Request, doc *Document) error
}

// Attempt records how one strategy ended. Kept only for diagnostic
// reporting within a single write.
type Attempt struct {
	Strategy string
	Err      error
}

// Verdict renders a short classification for operator-facing summaries.
func (a Attempt) Verdict() string {
	switch {
	case a.Err == nil:
		return "ok"
	default:
		return a.Err.Error()
	}
}

// AttemptLog is the ordered record of one chain run.
type AttemptLog []Attempt

// metadataToolStrategy invokes the dedicated spl-token-metadata tool with
// create semantics, passing all fields as direct arguments.
type metadataToolStrategy struct {
	binary      string
	keypairPath string
	runner      toolrunner.Runner
}

func (s *metadataToolStrategy) Name() string { return StrategyMetadataTool }

func (s *metadataToolStrategy) Attempt(ctx context.Context, req Request, _ *Document) error {
	res := s.runner.Run(ctx, s.binary, "create",
		"-k", s.keypairPath,
		"--mint", req.Mint,
		"--name", req.Name,
		"--symbol", req.Symbol,
		"--uri", req.URI,
	)
	return classify(res, s.binary, StrategyMetadataTool)
}

// metabossStrategy materializes the scratch document and points metaboss at
// it.
type metabossStrategy struct {
	binary      string
	keypairPath string
	runner      toolrunner.Runner
}

func (s *metabossStrategy) Name() string { return StrategyMetaboss }

func (s *metabossStrategy) Attempt(ctx context.Context, req Request, doc *Document) error {
	path, err := doc.Materialize()
	if err != nil {
		return services.Wrap(services.ErrToolFailed, "metadata", StrategyMetaboss, "scratch document", err)
	}
	res := s.runner.Run(ctx, s.binary, "create", "metadata",
		"--keypair", s.keypairPath,
		"--mint", req.Mint,
		"--data", path,
	)
	return classify(res, s.binary, StrategyMetaboss)
}

// programCallStrategy resolves the metadata account and issues the raw
// program call with the document contents as call data.
type programCallStrategy struct {
	chain    *solanacli.Client
	resolver *Resolver
}

func (s *programCallStrategy) Name() string { return StrategyProgramCall }

func (s *programCallStrategy) Attempt(ctx context.Context, req Request, doc *Document) error {
	metadataAddr := s.resolver.MetadataAddress(ctx, req.Mint)
	return s.chain.CallProgram(ctx, ProgramID, "create_metadata_accounts_v3",
		[]string{metadataAddr, req.Mint}, string(doc.JSON()))
}

func classify(res toolrunner.Result, binary, operation string) error {
	switch {
	case !res.ToolFound:
		return services.Wrap(services.ErrToolNotFound, "metadata", operation, binary+" not found in PATH", nil)
	case !res.ExitedSuccessfully:
		return services.Wrap(services.ErrToolFailed, "metadata", operation, res.Failure(), nil)
	default:
		return nil
	}
}
