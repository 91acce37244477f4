package services_test

import (
	"errors"
	"strings"
	"testing"

	"tokensmith/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrToolFailed, "metadata", "metaboss create", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrToolFailed) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"metadata", "metaboss create", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrToolFailed) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestMarkersAreDistinct(t *testing.T) {
	err := services.Wrap(services.ErrToolNotFound, "invoker", "spawn", "missing", nil)
	if errors.Is(err, services.ErrToolFailed) {
		t.Fatalf("not-found error must not classify as tool failure: %v", err)
	}
	if !errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("expected not-found marker: %v", err)
	}
}
