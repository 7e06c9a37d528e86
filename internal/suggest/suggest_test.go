package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesHeuristics(t *testing.T) {
	ctx := context.Background()
	var s Rules

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "report titles get data compilation",
			title: "Draft weekly report",
			want:  "Compile data from sources A and B.",
		},
		{
			name:  "call titles get contact lookup",
			title: "Call the vet for appointment",
			want:  "Find contact information for the vet for appointment.",
		},
		{
			name:  "email titles get contact lookup",
			title: "Email finance about invoices",
			want:  "Find contact information for finance about invoices.",
		},
		{
			name:  "bugfix titles get reproduction",
			title: "Fix bug #1234",
			want:  "Reproduce the bug in the local development environment.",
		},
		{
			name:  "anything else gets the generic hint",
			title: "Plan Q3 roadmap",
			want:  "Break down the task into smaller sub-tasks.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SuggestNextAction(ctx, tt.title)
			assert.False(t, got.Unavailable)
			assert.Equal(t, tt.want, got.Suggestion)
			assert.NotEmpty(t, got.Rationale)
		})
	}
}

func TestRulesHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := Rules{}.SuggestNextAction(ctx, "Draft weekly report")
	assert.True(t, got.Unavailable)
}

func TestOrSubstitutesFallback(t *testing.T) {
	ctx := context.Background()

	got := Unavailable{}.SuggestNextAction(ctx, "anything").Or(Fallback())
	assert.False(t, got.Unavailable)
	assert.Equal(t, Fallback().Suggestion, got.Suggestion)
	assert.Equal(t, Fallback().Rationale, got.Rationale)

	kept := Result{Suggestion: "s", Rationale: "r"}.Or(Fallback())
	assert.Equal(t, "s", kept.Suggestion)
}
