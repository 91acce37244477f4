package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tokensmith/internal/authority"
	"tokensmith/internal/config"
	"tokensmith/internal/history"
	"tokensmith/internal/logging"
	"tokensmith/internal/metadata"
	"tokensmith/internal/services"
	"tokensmith/internal/session"
	"tokensmith/internal/solanacli"
	"tokensmith/internal/spltoken"
	"tokensmith/internal/toolrunner"
	"tokensmith/internal/workflow"
)

// handlerRunner routes every invocation through a single handler so tests
// can script per-command behavior.
type handlerRunner struct {
	handle func(binary string, args []string) toolrunner.Result
	calls  [][]string
}

func (h *handlerRunner) Run(ctx context.Context, binary string, args ...string) toolrunner.Result {
	h.calls = append(h.calls, append([]string{binary}, args...))
	if h.handle == nil {
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}
	return h.handle(binary, args)
}

func (h *handlerRunner) sawCall(fragments ...string) bool {
	for _, call := range h.calls {
		joined := strings.Join(call, " ")
		matched := true
		for _, fragment := range fragments {
			if !strings.Contains(joined, fragment) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

type scriptedPrompter struct {
	inputs   []string
	confirms []bool
}

func (p *scriptedPrompter) Input(string) string {
	if len(p.inputs) == 0 {
		return ""
	}
	head := p.inputs[0]
	p.inputs = p.inputs[1:]
	return head
}

func (p *scriptedPrompter) Confirm(string) bool {
	if len(p.confirms) == 0 {
		return false
	}
	head := p.confirms[0]
	p.confirms = p.confirms[1:]
	return head
}

type fixture struct {
	flows   *workflow.Flows
	out     *bytes.Buffer
	runner  *handlerRunner
	store   *history.Store
	state   *session.State
	keypair string
}

func newFixture(t *testing.T, runner *handlerRunner, prompter *scriptedPrompter, withLedger bool) *fixture {
	t.Helper()

	keypair := filepath.Join(t.TempDir(), "id.json")
	if err := os.WriteFile(keypair, []byte("[1,2]"), 0o600); err != nil {
		t.Fatalf("write keypair: %v", err)
	}

	cfg := config.Default()
	cfg.Wallet.KeypairPath = keypair
	cfg.Paths.ScratchDir = t.TempDir()

	tokens, err := spltoken.New(cfg.Tools.SPLToken, spltoken.WithRunner(runner))
	if err != nil {
		t.Fatalf("spltoken.New: %v", err)
	}
	chain, err := solanacli.New(cfg.Tools.Solana, keypair, solanacli.WithRunner(runner))
	if err != nil {
		t.Fatalf("solanacli.New: %v", err)
	}
	resolver := metadata.NewResolver(cfg.Tools.SPLTokenMetadata, logging.NewNop(), metadata.WithResolverRunner(runner))
	writer, err := metadata.NewWriter(metadata.Deps{
		MetadataBinary: cfg.Tools.SPLTokenMetadata,
		MetabossBinary: cfg.Tools.Metaboss,
		KeypairPath:    keypair,
		ScratchDir:     cfg.Paths.ScratchDir,
		Runner:         runner,
		Chain:          chain,
		Resolver:       resolver,
		Logger:         logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("metadata.NewWriter: %v", err)
	}
	updateRevoker := metadata.NewUpdateAuthorityRevoker(metadata.RevokerDeps{
		MetadataBinary: cfg.Tools.SPLTokenMetadata,
		MetabossBinary: cfg.Tools.Metaboss,
		KeypairPath:    keypair,
		Runner:         runner,
		Resolver:       resolver,
		Logger:         logging.NewNop(),
	})
	mgr, err := authority.NewManager(tokens, prompter.Confirm, logging.NewNop())
	if err != nil {
		t.Fatalf("authority.NewManager: %v", err)
	}

	var store *history.Store
	if withLedger {
		store, err = history.Open(filepath.Join(t.TempDir(), "history.db"))
		if err != nil {
			t.Fatalf("history.Open: %v", err)
		}
		t.Cleanup(func() { _ = store.Close() })
	}

	state := session.NewState()
	out := &bytes.Buffer{}
	flows, err := workflow.New(workflow.Deps{
		Config:        &cfg,
		Tokens:        tokens,
		Chain:         chain,
		Writer:        writer,
		UpdateRevoker: updateRevoker,
		Authority:     mgr,
		Session:       state,
		History:       store,
		Prompter:      prompter,
		Output:        out,
		Logger:        logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("workflow.New: %v", err)
	}
	return &fixture{flows: flows, out: out, runner: runner, store: store, state: state, keypair: keypair}
}

func createHandler(binary string, args []string) toolrunner.Result {
	joined := binary + " " + strings.Join(args, " ")
	switch {
	case strings.HasPrefix(joined, "spl-token create-token"):
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true,
			Stdout: "Creating token MintXYZ\nSignature: s\n"}
	case strings.HasPrefix(joined, "spl-token create-account"):
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true,
			Stdout: "Creating account AccXYZ\n"}
	default:
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}
}

func TestCreateTokenHappyPath(t *testing.T) {
	runner := &handlerRunner{handle: createHandler}
	// Inputs: decimals (default), mint amount. Confirms: revoke mint yes,
	// revoke freeze no, add metadata now no.
	prompter := &scriptedPrompter{inputs: []string{"", "100"}, confirms: []bool{true, false, false}}
	fx := newFixture(t, runner, prompter, true)

	if err := fx.flows.CreateToken(context.Background()); err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	handle, ok := fx.state.Current()
	if !ok || handle.Mint != "MintXYZ" || handle.Account != "AccXYZ" {
		t.Fatalf("unexpected session handle: %+v ok=%v", handle, ok)
	}

	if !runner.sawCall("spl-token create-token --decimals 9") {
		t.Fatalf("default decimals not applied: %v", runner.calls)
	}
	if !runner.sawCall("spl-token mint MintXYZ 100") {
		t.Fatalf("mint call missing: %v", runner.calls)
	}
	if !runner.sawCall("spl-token authorize MintXYZ mint --disable") {
		t.Fatalf("mint authority revocation missing: %v", runner.calls)
	}
	if runner.sawCall("authorize MintXYZ freeze") {
		t.Fatal("freeze revocation was declined but still invoked")
	}

	entries, err := fx.store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("ledger list: %v", err)
	}
	if len(entries) != 1 || entries[0].Mint != "MintXYZ" || entries[0].Account != "AccXYZ" {
		t.Fatalf("unexpected ledger contents: %+v", entries)
	}

	output := fx.out.String()
	for _, want := range []string{"Token mint address: MintXYZ", "Token account address: AccXYZ", "Mint authority revoked successfully."} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestCreateTokenInvalidAmountIsWarning(t *testing.T) {
	runner := &handlerRunner{handle: createHandler}
	prompter := &scriptedPrompter{inputs: []string{"6", "not-a-number"}, confirms: []bool{false, false, false}}
	fx := newFixture(t, runner, prompter, false)

	if err := fx.flows.CreateToken(context.Background()); err != nil {
		t.Fatalf("mint trouble must not abort creation: %v", err)
	}
	if !runner.sawCall("create-token --decimals 6") {
		t.Fatalf("explicit decimals not applied: %v", runner.calls)
	}
	if runner.sawCall("spl-token mint ") {
		t.Fatal("invalid amount must not reach the tool")
	}
	if !strings.Contains(fx.out.String(), "Warning: Failed to mint tokens") {
		t.Fatalf("expected mint warning in output:\n%s", fx.out.String())
	}
}

func TestCreateTokenStopsWhenKeypairMissing(t *testing.T) {
	runner := &handlerRunner{handle: createHandler}
	prompter := &scriptedPrompter{}
	fx := newFixture(t, runner, prompter, false)

	if err := os.Remove(fx.keypair); err != nil {
		t.Fatalf("remove keypair: %v", err)
	}

	err := fx.flows.CreateToken(context.Background())
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if runner.sawCall("create-token") {
		t.Fatal("token creation must not proceed without a keypair")
	}
}

func TestEditMetadataUsesSessionToken(t *testing.T) {
	runner := &handlerRunner{handle: func(binary string, args []string) toolrunner.Result {
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true, Stdout: "1000\n"}
	}}
	// Confirms: use current token yes, revoke update authority no.
	prompter := &scriptedPrompter{
		inputs:   []string{"Demo", "DMO", "https://x/y.json"},
		confirms: []bool{true, false},
	}
	fx := newFixture(t, runner, prompter, false)
	if err := fx.state.RecordToken("MintSess", "AccSess"); err != nil {
		t.Fatalf("RecordToken: %v", err)
	}

	if err := fx.flows.EditMetadata(context.Background()); err != nil {
		t.Fatalf("EditMetadata returned error: %v", err)
	}
	if !runner.sawCall("spl-token supply MintSess") {
		t.Fatalf("token existence probe missing: %v", runner.calls)
	}
	if !runner.sawCall("spl-token-metadata create", "--mint MintSess", "--name Demo") {
		t.Fatalf("primary strategy call missing: %v", runner.calls)
	}
	if !strings.Contains(fx.out.String(), "Metadata updated successfully via spl-token-metadata!") {
		t.Fatalf("expected success summary:\n%s", fx.out.String())
	}
}

func TestEditMetadataRejectsEmptyFields(t *testing.T) {
	runner := &handlerRunner{handle: func(binary string, args []string) toolrunner.Result {
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}}
	prompter := &scriptedPrompter{
		inputs:   []string{"MintQ", "", "DMO", "https://x"},
		confirms: []bool{},
	}
	fx := newFixture(t, runner, prompter, false)

	err := fx.flows.EditMetadata(context.Background())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEditMetadataRequiresMint(t *testing.T) {
	runner := &handlerRunner{}
	prompter := &scriptedPrompter{inputs: []string{"   "}}
	fx := newFixture(t, runner, prompter, false)

	err := fx.flows.EditMetadata(context.Background())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank mint, got %v", err)
	}
}

func TestEditMetadataVerifiesTokenExists(t *testing.T) {
	runner := &handlerRunner{handle: func(binary string, args []string) toolrunner.Result {
		if binary == "spl-token" && len(args) > 0 && args[0] == "supply" {
			return toolrunner.Result{ToolFound: true, Stderr: "AccountNotFound"}
		}
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}}
	prompter := &scriptedPrompter{inputs: []string{"MintGone"}}
	fx := newFixture(t, runner, prompter, false)

	err := fx.flows.EditMetadata(context.Background())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for missing token, got %v", err)
	}
}

func TestSelectNetworkAppliesChoice(t *testing.T) {
	runner := &handlerRunner{}
	prompter := &scriptedPrompter{inputs: []string{"2"}}
	fx := newFixture(t, runner, prompter, false)

	network := fx.flows.SelectNetwork(context.Background())
	if network != "devnet" {
		t.Fatalf("unexpected network: %q", network)
	}
	if !runner.sawCall("solana config set --url https://api.devnet.solana.com") {
		t.Fatalf("devnet URL not applied: %v", runner.calls)
	}
}

func TestSelectNetworkFallsBackOnFailure(t *testing.T) {
	runner := &handlerRunner{handle: func(binary string, args []string) toolrunner.Result {
		return toolrunner.Result{ToolFound: true, Stderr: "no network"}
	}}
	prompter := &scriptedPrompter{inputs: []string{"3"}}
	fx := newFixture(t, runner, prompter, false)

	network := fx.flows.SelectNetwork(context.Background())
	if network != "mainnet-beta" {
		t.Fatalf("expected fallback to configured default, got %q", network)
	}
	if !strings.Contains(fx.out.String(), "Using default network: mainnet-beta") {
		t.Fatalf("expected fallback notice:\n%s", fx.out.String())
	}
}

func TestVerifyToolsReportsMissing(t *testing.T) {
	runner := &handlerRunner{handle: func(binary string, args []string) toolrunner.Result {
		if binary == "spl-token" {
			return toolrunner.Result{}
		}
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}}
	fx := newFixture(t, runner, &scriptedPrompter{}, false)

	err := fx.flows.VerifyTools(context.Background())
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "spl-token") {
		t.Fatalf("missing tool name absent from error: %v", err)
	}
}

func TestVerifyToolsSucceeds(t *testing.T) {
	runner := &handlerRunner{}
	fx := newFixture(t, runner, &scriptedPrompter{}, false)
	if err := fx.flows.VerifyTools(context.Background()); err != nil {
		t.Fatalf("VerifyTools returned error: %v", err)
	}
}
