package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marquee/internal/media"
)

// Stage is one link in a render chain: either an enhancement stage holding a
// reference to the next stage, or the terminal renderer.
type Stage interface {
	// Render processes the record. Enhancement stages run pre-work, delegate
	// to the wrapped stage, then run post-work.
	Render(ctx context.Context, rec media.Record) error

	// SupportsAcceleration reports whether the terminal renderer at the end
	// of the chain is hardware accelerated.
	SupportsAcceleration() bool
}

// ErrStage marks a failure originating in a stage's own work, as opposed to
// one propagated from deeper in the chain.
var ErrStage = errors.New("render stage failure")

// StageErr tags err with stage context for later classification. Errors from
// a delegate stage must not pass through this; they propagate unchanged.
func StageErr(stage, operation string, err error) error {
	detail := strings.TrimSpace(stage)
	if op := strings.TrimSpace(operation); op != "" {
		detail += ": " + op
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStage, detail, err)
	}
	return fmt.Errorf("%w: %s", ErrStage, detail)
}

// Wrapper builds an enhancement stage around the stage it receives.
type Wrapper func(next Stage) Stage

// Chain assembles a render chain around terminal. Wrappers apply so that the
// first listed wrapper becomes the outermost stage, matching reading order:
// Chain(t, A, B) renders as A(B(t)).
func Chain(terminal Stage, wrappers ...Wrapper) Stage {
	head := terminal
	for i := len(wrappers) - 1; i >= 0; i-- {
		head = wrappers[i](head)
	}
	return head
}
