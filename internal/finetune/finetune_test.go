package finetune

import (
	"math/rand"
	"strings"
	"testing"

	"compliance-email-datagen/internal/config"
	"compliance-email-datagen/internal/models"
	"compliance-email-datagen/internal/registry"
)

func newTestBuilder(t *testing.T, seed int64, counts map[models.Label]int) *Builder {
	t.Helper()

	cfg := config.Default()
	if counts != nil {
		cfg.FinetuneCounts = counts
	}
	return NewBuilder(registry.Default(), cfg, rand.New(rand.NewSource(seed)))
}

func completionLabel(t *testing.T, completion string) models.Label {
	t.Helper()

	parts := strings.SplitN(completion, " - ", 2)
	if len(parts) != 2 {
		t.Fatalf("Completion %q missing 'LABEL - rationale' shape", completion)
	}
	return models.Label(parts[0])
}

func TestBuildCounts(t *testing.T) {
	counts := map[models.Label]int{
		models.LabelClean:                 200,
		models.LabelInsiderTrading:        75,
		models.LabelConfidentialityBreach: 75,
		models.LabelPersonalTrading:       75,
		models.LabelInfoBarrierViolation:  75,
	}
	b := newTestBuilder(t, 42, counts)

	samples, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(samples) != 500 {
		t.Fatalf("Expected 500 samples, got %d", len(samples))
	}

	got := make(map[models.Label]int)
	for _, s := range samples {
		got[completionLabel(t, s.Completion)]++
	}

	for label, want := range counts {
		if got[label] != want {
			t.Errorf("Label %s: %d samples, want %d", label, got[label], want)
		}
	}
}

func TestBuildPromptShape(t *testing.T) {
	b := newTestBuilder(t, 7, nil)

	samples, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("Expected samples from default counts")
	}

	for _, s := range samples {
		if !strings.HasPrefix(s.Prompt, "Classify this hedge fund email for compliance violations.") {
			t.Fatalf("Prompt missing instruction framing: %q", s.Prompt)
		}
		if !strings.HasSuffix(s.Prompt, " Classification:") {
			t.Fatalf("Prompt missing classification tail: %q", s.Prompt)
		}
		if strings.Contains(s.Prompt, "{sender_name}") || strings.Contains(s.Prompt, "{recipient_name}") {
			t.Fatalf("Unrendered placeholder in prompt: %q", s.Prompt)
		}

		label := completionLabel(t, s.Completion)
		if !label.Valid() {
			t.Fatalf("Completion label %s outside the category set", label)
		}
		rationale := strings.SplitN(s.Completion, " - ", 2)[1]
		if rationale == "" {
			t.Fatalf("Empty rationale in completion %q", s.Completion)
		}
	}
}

func TestBuildZeroCountCategory(t *testing.T) {
	counts := map[models.Label]int{
		models.LabelClean:          10,
		models.LabelInsiderTrading: 0,
	}
	b := newTestBuilder(t, 3, counts)

	samples, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(samples) != 10 {
		t.Fatalf("Expected 10 samples, got %d", len(samples))
	}

	for _, s := range samples {
		if completionLabel(t, s.Completion) != models.LabelClean {
			t.Fatalf("Unexpected label in completion %q", s.Completion)
		}
	}
}

func TestBuildUsesTemplateRationale(t *testing.T) {
	// The first insider-trading template carries its own rationale; over
	// enough draws it must appear verbatim in some completion.
	counts := map[models.Label]int{models.LabelInsiderTrading: 200}
	b := newTestBuilder(t, 5, counts)

	samples, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	found := false
	for _, s := range samples {
		if strings.Contains(s.Completion, "suggests trading ahead of it") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected a template-embedded rationale over 200 insider-trading samples")
	}
}

func TestBuildAnonymizedNames(t *testing.T) {
	counts := map[models.Label]int{models.LabelClean: 100}
	b := newTestBuilder(t, 8, counts)

	samples, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	for _, s := range samples {
		for _, e := range registry.Default().Employees() {
			if strings.Contains(s.Prompt, e.Email) {
				t.Fatalf("Roster identity %s leaked into fine-tuning prompt", e.Email)
			}
		}
	}
}
