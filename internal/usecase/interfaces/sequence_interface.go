package interfaces

import (
	"context"
	"errors"
)

// ErrSequenceNotConfigured is returned when no counter exists for the
// requested sequence name.
var ErrSequenceNotConfigured = errors.New("sequence not configured")

// ISequenceGenerator issues unique, formatted numbers from a named counter.
// A number is never handed out twice, even when the caller later fails.
type ISequenceGenerator interface {
	Next(ctx context.Context, name string) (string, error)
}
