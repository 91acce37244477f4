package logging

import (
	"context"
	"log/slog"
	"time"

	"tokensmith/internal/services"
)

type Attr = slog.Attr

const (
	// FieldComponent is the standardized key for component names.
	FieldComponent = "component"
	// FieldWorkflow is the standardized key for workflow names.
	FieldWorkflow = "workflow"
	// FieldRunID is the standardized key for per-pass correlation identifiers.
	FieldRunID = "run_id"
	// FieldTool is the standardized key for external binary names.
	FieldTool = "tool"
	// FieldMint is the standardized key for token mint addresses.
	FieldMint = "mint"
	// FieldStrategy is the standardized key for metadata-write strategy names.
	FieldStrategy = "strategy"
	// FieldAuthority is the standardized key for authority kinds.
	FieldAuthority = "authority"
)

func Any(key string, value any) Attr { return slog.Any(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attributes into the variadic any form slog methods expect.
func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]Attr, 0, 2)
	if name, ok := services.WorkflowFromContext(ctx); ok {
		fields = append(fields, String(FieldWorkflow, name))
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, String(FieldRunID, id))
	}
	return fields
}
