package main

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		s1, s2       string
		replacements bool
		max          int
		want         int
	}{
		{"", "", true, 0, 0},
		{"", "abc", true, 0, 3},
		{"abc", "abc", true, 0, 0},
		{"kitten", "sitting", true, 0, 3},
		{"ab", "ba", false, 0, 2},
		{"ab", "ba", true, 0, 2},
		{"abc", "abd", false, 0, 2},
		{"abcdef", "uvwxyz", true, 2, 3},
		{"héllo", "hello", true, 0, 1},
		{"héllo", "hello", false, 0, 2},
		{"日本語", "日本", true, 0, 1},
	}
	for _, tt := range tests {
		got := EditDistance(tt.s1, tt.s2, tt.replacements, tt.max)
		if got != tt.want {
			t.Errorf("EditDistance(%q, %q, %v, %d) = %d, want %d",
				tt.s1, tt.s2, tt.replacements, tt.max, got, tt.want)
		}
	}
}

func TestSpellcheckStringV(t *testing.T) {
	words := []string{"tokens", "ast", "stats"}
	if got := SpellcheckStringV("tokns", words); got != "tokens" {
		t.Errorf("got %q, want tokens", got)
	}
	if got := SpellcheckStringV("stts", words); got != "stats" {
		t.Errorf("got %q, want stats", got)
	}
	if got := SpellcheckStringV("frobnicate", words); got != "" {
		t.Errorf("got %q, want no suggestion", got)
	}
}
