package models

import "testing"

func TestFirstName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		expected string
	}{
		{name: "Two tokens", fullName: "Sarah Chen", expected: "Sarah"},
		{name: "Apostrophe surname", fullName: "Kevin O'Brien", expected: "Kevin"},
		{name: "Single token", fullName: "Cher", expected: "Cher"},
		{name: "Three tokens", fullName: "Ana Maria Costa", expected: "Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employee{Name: tt.fullName}
			if got := e.FirstName(); got != tt.expected {
				t.Errorf("FirstName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLabelValid(t *testing.T) {
	for _, label := range AllLabels {
		if !label.Valid() {
			t.Errorf("Expected %s to be valid", label)
		}
	}

	if Label("BRIBERY").Valid() {
		t.Error("Expected unknown label to be invalid")
	}
}

func TestViolationLabelsExcludeClean(t *testing.T) {
	for _, label := range ViolationLabels {
		if label == LabelClean {
			t.Error("CLEAN must not appear in ViolationLabels")
		}
		if !label.Valid() {
			t.Errorf("Violation label %s missing from AllLabels", label)
		}
	}

	if len(ViolationLabels) != len(AllLabels)-1 {
		t.Errorf("Expected %d violation labels, got %d", len(AllLabels)-1, len(ViolationLabels))
	}
}
