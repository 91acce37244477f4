package metadata

import (
	"context"
	"errors"
	"log/slog"

	"tokensmith/internal/logging"
	"tokensmith/internal/services"
	"tokensmith/internal/solanacli"
	"tokensmith/internal/toolrunner"
)

// Deps collects everything the default strategy chain needs.
type Deps struct {
	MetadataBinary string
	MetabossBinary string
	KeypairPath    string
	ScratchDir     string
	Runner         toolrunner.Runner
	Chain          *solanacli.Client
	Resolver       *Resolver
	Logger         *slog.Logger
}

// Writer drives the ordered strategy chain. The chain is an explicit list so
// ordering stays visible and each strategy is testable in isolation.
type Writer struct {
	scratchDir string
	strategies []Strategy
	logger     *slog.Logger
}

// NewWriter builds the default three-strategy chain: dedicated metadata tool,
// metaboss against a scratch document, then the direct program call.
func NewWriter(deps Deps) (*Writer, error) {
	if deps.Chain == nil {
		return nil, errors.New("solana client required")
	}
	if deps.Resolver == nil {
		return nil, errors.New("metadata address resolver required")
	}
	runner := deps.Runner
	if runner == nil {
		runner = toolrunner.ExecRunner{}
	}
	strategies := []Strategy{
		&metadataToolStrategy{binary: deps.MetadataBinary, keypairPath: deps.KeypairPath, runner: runner},
		&metabossStrategy{binary: deps.MetabossBinary, keypairPath: deps.KeypairPath, runner: runner},
		&programCallStrategy{chain: deps.Chain, resolver: deps.Resolver},
	}
	return NewWriterWithStrategies(deps.ScratchDir, deps.Logger, strategies...), nil
}

// NewWriterWithStrategies builds a writer over an explicit chain. Used by
// NewWriter and by tests that substitute strategies.
func NewWriterWithStrategies(scratchDir string, logger *slog.Logger, strategies ...Strategy) *Writer {
	return &Writer{
		scratchDir: scratchDir,
		strategies: strategies,
		logger:     logging.WithComponent(logger, "metadata"),
	}
}

// Write runs the chain for one request, terminating on the first success.
// It returns the winning strategy's name and the full attempt log. The
// scratch document is released on every exit path.
func (w *Writer) Write(ctx context.Context, req Request) (string, AttemptLog, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	doc, err := NewDocument(w.scratchDir, req)
	if err != nil {
		return "", nil, err
	}
	defer doc.Remove()

	var attempts AttemptLog
	var lastErr error
	for _, strategy := range w.strategies {
		attemptErr := strategy.Attempt(ctx, req, doc)
		attempts = append(attempts, Attempt{Strategy: strategy.Name(), Err: attemptErr})
		if attemptErr == nil {
			w.logger.Info("metadata written",
				logging.String(logging.FieldStrategy, strategy.Name()),
				logging.String(logging.FieldMint, req.Mint),
			)
			return strategy.Name(), attempts, nil
		}
		lastErr = attemptErr
		w.logger.Warn("strategy failed, falling through",
			logging.String(logging.FieldStrategy, strategy.Name()),
			logging.String(logging.FieldMint, req.Mint),
			logging.Error(attemptErr),
		)
	}

	return "", attempts, services.Wrap(services.ErrAllStrategies, "metadata", "write",
		"every strategy was exhausted", lastErr)
}
