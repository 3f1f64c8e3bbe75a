package kinship

import "testing"

func TestResolveKnownLabels(t *testing.T) {
	tests := []struct {
		label       string
		wantReverse string
	}{
		{label: "Father", wantReverse: "Child"},
		{label: "Mother", wantReverse: "Child"},
		{label: "Husband", wantReverse: "Wife"},
		{label: "Wife", wantReverse: "Husband"},
		{label: "Son", wantReverse: "Father"},
		{label: "Daughter", wantReverse: "Mother"},
		{label: "Brother", wantReverse: "Brother"},
		{label: "Sister", wantReverse: "Sister"},
		{label: "Grandfather", wantReverse: "Grandson"},
		{label: "Granddaughter", wantReverse: "Grandmother"},
		{label: "Uncle", wantReverse: "Nephew"},
		{label: "Niece", wantReverse: "Aunt"},
		{label: "Father-in-law", wantReverse: "Son-in-law"},
		{label: "Daughter-in-law", wantReverse: "Mother-in-law"},
		{label: "Other", wantReverse: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			pair := Resolve(tt.label)
			if pair.Forward != tt.label {
				t.Errorf("Resolve(%q).Forward = %q, want %q", tt.label, pair.Forward, tt.label)
			}
			if pair.Reverse != tt.wantReverse {
				t.Errorf("Resolve(%q).Reverse = %q, want %q", tt.label, pair.Reverse, tt.wantReverse)
			}
		})
	}
}

func TestResolveIsTotalOverLabels(t *testing.T) {
	// Every enumerated option must resolve without hitting the fallback.
	for _, label := range Labels() {
		pair := Resolve(label)
		if pair.Forward == "" || pair.Reverse == "" {
			t.Errorf("Resolve(%q) returned empty pair %+v", label, pair)
		}
		if pair.Reverse == ReverseFallback {
			t.Errorf("enumerated label %q fell through to the fallback reverse", label)
		}
	}
}

func TestResolveUnknownLabelFallsBack(t *testing.T) {
	pair := Resolve("Classmate")
	if pair.Forward != "Classmate" {
		t.Errorf("Forward = %q, want the label passed through", pair.Forward)
	}
	if pair.Reverse != ReverseFallback {
		t.Errorf("Reverse = %q, want %q", pair.Reverse, ReverseFallback)
	}
}

func TestMutualLabelsRoundTrip(t *testing.T) {
	// For label pairs that are both offered in the UI, resolving the
	// reverse must land back on the original label. Otherwise deleting from
	// the other end of a link would target edges that were never written.
	tests := []string{
		"Husband", "Wife", "Brother", "Sister",
		"Grandfather", "Grandmother", "Grandson", "Granddaughter",
		"Uncle", "Aunt", "Nephew", "Niece",
		"Father-in-law", "Mother-in-law", "Son-in-law", "Daughter-in-law",
		"Other",
	}
	for _, label := range tests {
		t.Run(label, func(t *testing.T) {
			pair := Resolve(label)
			back := Resolve(pair.Reverse)
			if back.Reverse != label {
				t.Errorf("Resolve(%q) = %+v, but Resolve(%q).Reverse = %q, want %q",
					label, pair, pair.Reverse, back.Reverse, label)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("Mother") {
		t.Error("Mother should be a known label")
	}
	if IsKnown("Classmate") {
		t.Error("Classmate should not be a known label")
	}
}
