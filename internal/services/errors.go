package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound marks failures caused by a binary missing from PATH.
	ErrToolNotFound = errors.New("tool not found")
	// ErrToolFailed marks a tool that ran but exited non-zero.
	ErrToolFailed = errors.New("tool reported failure")
	// ErrExtraction marks output that did not contain an expected address.
	ErrExtraction = errors.New("extraction failed")
	// ErrAllStrategies marks exhaustion of every metadata-write strategy.
	ErrAllStrategies = errors.New("all strategies failed")
	// ErrValidation marks operator input that fails a required-field check.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrToolFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
