package spltoken_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tokensmith/internal/services"
	"tokensmith/internal/spltoken"
	"tokensmith/internal/toolrunner"
)

type stubRunner struct {
	results []toolrunner.Result
	calls   [][]string
}

func (s *stubRunner) Run(ctx context.Context, binary string, args ...string) toolrunner.Result {
	s.calls = append(s.calls, append([]string{binary}, args...))
	if len(s.results) == 0 {
		return toolrunner.Result{ToolFound: true, ExitedSuccessfully: true}
	}
	res := s.results[0]
	s.results = s.results[1:]
	return res
}

func TestCreateTokenExtractsMint(t *testing.T) {
	runner := &stubRunner{results: []toolrunner.Result{{
		ToolFound:          true,
		ExitedSuccessfully: true,
		Stdout:             "Creating token 9xQeWvG816bUx9EPjHmaT23yTVqorfsoGvqEHQkmywVc\nSignature: abc\n",
	}}}
	client, err := spltoken.New("spl-token", spltoken.WithRunner(runner))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	mint, err := client.CreateToken(context.Background(), 6)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if mint != "9xQeWvG816bUx9EPjHmaT23yTVqorfsoGvqEHQkmywVc" {
		t.Fatalf("unexpected mint: %q", mint)
	}
	want := []string{"spl-token", "create-token", "--decimals", "6"}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one invocation, got %d", len(runner.calls))
	}
	for i, arg := range want {
		if runner.calls[0][i] != arg {
			t.Fatalf("unexpected args: got %v want %v", runner.calls[0], want)
		}
	}
}

func TestCreateTokenSurfacesExtractionFailure(t *testing.T) {
	runner := &stubRunner{results: []toolrunner.Result{{
		ToolFound:          true,
		ExitedSuccessfully: true,
		Stdout:             "nothing recognizable\n",
	}}}
	client, _ := spltoken.New("spl-token", spltoken.WithRunner(runner))
	if _, err := client.CreateToken(context.Background(), 9); !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestCreateAccountClassifiesToolFailure(t *testing.T) {
	runner := &stubRunner{results: []toolrunner.Result{{
		ToolFound: true,
		Stderr:    "insufficient funds",
	}}}
	client, _ := spltoken.New("spl-token", spltoken.WithRunner(runner))
	_, err := client.CreateAccount(context.Background(), "MintA")
	if !errors.Is(err, services.ErrToolFailed) {
		t.Fatalf("expected tool failure, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "insufficient funds") {
		t.Fatalf("stderr detail missing from error: %v", err)
	}
}

func TestDisableAuthorityClassifiesMissingTool(t *testing.T) {
	runner := &stubRunner{results: []toolrunner.Result{{}}}
	client, _ := spltoken.New("spl-token", spltoken.WithRunner(runner))
	err := client.DisableAuthority(context.Background(), "MintA", "freeze")
	if !errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}

func TestTokenExists(t *testing.T) {
	runner := &stubRunner{results: []toolrunner.Result{
		{ToolFound: true, ExitedSuccessfully: true, Stdout: "1000\n"},
		{ToolFound: true, Stderr: "AccountNotFound"},
	}}
	client, _ := spltoken.New("spl-token", spltoken.WithRunner(runner))
	if !client.TokenExists(context.Background(), "MintA") {
		t.Fatal("expected token to exist")
	}
	if client.TokenExists(context.Background(), "MintB") {
		t.Fatal("expected token to be absent")
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := spltoken.New("  "); err == nil {
		t.Fatal("expected error for blank binary")
	}
}
