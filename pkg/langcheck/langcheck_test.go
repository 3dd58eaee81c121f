package langcheck

import "testing"

const frenchSample = `Il était une fois un petit prince qui habitait une planète à
peine plus grande que lui, et qui avait besoin d'un ami. Les grandes
personnes ne comprennent jamais rien toutes seules, et c'est fatigant,
pour les enfants, de toujours leur donner des explications.`

const englishSample = `It was the best of times, it was the worst of times, it was
the age of wisdom, it was the age of foolishness, it was the epoch of
belief, it was the epoch of incredulity, it was the season of light.`

func TestDetect(t *testing.T) {
	checker := NewChecker()

	lang, err := checker.Detect(frenchSample)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if lang != "French" {
		t.Errorf("Detect(french sample) = %q, want French", lang)
	}
}

func TestMatches(t *testing.T) {
	checker := NewChecker()

	tests := []struct {
		name     string
		text     string
		expected string
		want     bool
	}{
		{"french matches french", frenchSample, "French", true},
		{"case-insensitive expected", frenchSample, "french", true},
		{"english does not match french", englishSample, "French", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, detected, err := checker.Matches(tt.text, tt.expected)
			if err != nil {
				t.Fatalf("Matches() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Matches() = %v (detected %s), want %v", got, detected, tt.want)
			}
		})
	}
}
