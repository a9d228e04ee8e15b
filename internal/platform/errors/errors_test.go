package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeLapsInvalid, "laps must be positive")
	wrapped := fmt.Errorf("round 3: %w", err)

	if !stderrors.Is(wrapped, New(CodeLapsInvalid, "")) {
		t.Fatal("expected wrapped error to match by code")
	}
	if stderrors.Is(wrapped, New(CodeRosterEmpty, "")) {
		t.Fatal("expected different code not to match")
	}
	if !HasCode(wrapped, CodeLapsInvalid) {
		t.Fatal("expected HasCode to find code")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeCompositePerformanceInvalid, "bad composite", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("x: %w", New(CodeCalendarEmpty, "empty"))); got != CodeCalendarEmpty {
		t.Fatalf("CodeOf = %q, want %q", got, CodeCalendarEmpty)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUnknown)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{CodeRosterEmpty, CategoryConfiguration},
		{CodeTrackInvalidDifficulty, CategoryConfiguration},
		{CodeLapsInvalid, CategoryConfiguration},
		{CodeCompositePerformanceInvalid, CategoryInternal},
		{CodeCompetitorUnknown, CategoryInternal},
		{CodeUnknown, CategoryInternal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Fatalf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalize(t *testing.T) {
	err := fmt.Errorf("round 1: %w", WithMetadata(CodeCompetitorDuplicate, "duplicate", map[string]string{
		"Competitor": "Max Verstappen",
	}))

	got := Localize(err, "en-US")
	want := "Competitor Max Verstappen appears more than once in the roster."
	if got != want {
		t.Fatalf("Localize() = %q, want %q", got, want)
	}

	if got := Localize(stderrors.New("plain failure"), "en-US"); got != "plain failure" {
		t.Fatalf("Localize(plain) = %q", got)
	}
	if got := Localize(nil, "en-US"); got != "" {
		t.Fatalf("Localize(nil) = %q", got)
	}
}
