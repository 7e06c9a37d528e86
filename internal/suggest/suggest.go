// Package suggest produces a "next action" hint for a task title. The
// contract is non-throwing: a suggester that cannot answer returns the
// Unavailable variant and callers substitute Fallback. Suggestions never
// touch task state unless the caller folds one into an update.
package suggest

import (
	"context"
	"strings"
)

// Result is the two-variant outcome of a suggestion request: either a
// suggestion with its rationale, or Unavailable.
type Result struct {
	Suggestion  string
	Rationale   string
	Unavailable bool
}

// Fallback is the fixed pair callers use when a suggester comes back
// Unavailable.
func Fallback() Result {
	return Result{
		Suggestion: "Break down the task into smaller sub-tasks.",
		Rationale:  "This is a good general first step for any complex task.",
	}
}

// Or returns r when it is available, otherwise the fallback.
func (r Result) Or(fallback Result) Result {
	if r.Unavailable {
		return fallback
	}
	return r
}

// Suggester proposes a next action for a task title. Implementations must
// not block indefinitely beyond ctx and must not return errors; failure is
// the Unavailable variant.
type Suggester interface {
	SuggestNextAction(ctx context.Context, title string) Result
}

// Rules is a deterministic keyword-based suggester. It stands in for an
// external text-generation service and always answers.
type Rules struct{}

// SuggestNextAction matches well-known task shapes and falls through to
// the generic hint.
func (Rules) SuggestNextAction(ctx context.Context, title string) Result {
	if ctx.Err() != nil {
		return Result{Unavailable: true}
	}

	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "report"):
		return Result{
			Suggestion: "Compile data from sources A and B.",
			Rationale:  "Reports typically require data compilation as a first step.",
		}
	case strings.Contains(lower, "call"), strings.Contains(lower, "email"):
		return Result{
			Suggestion: "Find contact information for " + restOfTitle(title) + ".",
			Rationale:  "You need the contact details before you can initiate communication.",
		}
	case strings.Contains(lower, "fix bug"):
		return Result{
			Suggestion: "Reproduce the bug in the local development environment.",
			Rationale:  "Confirming the bug is the first step to fixing it.",
		}
	default:
		return Fallback()
	}
}

// restOfTitle drops the leading verb, e.g. "Call the vet" -> "the vet".
func restOfTitle(title string) string {
	words := strings.Fields(title)
	if len(words) < 2 {
		return title
	}
	return strings.Join(words[1:], " ")
}

// Unavailable is a suggester that never answers. It models a failed or
// unreachable external service in tests and offline runs.
type Unavailable struct{}

func (Unavailable) SuggestNextAction(context.Context, string) Result {
	return Result{Unavailable: true}
}
