// file: internals/helpers/slug_test.go
package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kuala Lumpur Dojo", "kuala-lumpur-dojo"},
		{"  Trim Me  ", "trim-me"},
		{"Already-Slugged", "already-slugged"},
		{"multi   space", "multi-space"},
		{"symbols!@#here", "symbols-here"},
		{"--leading--trailing--", "leading-trailing"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCutToLen(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 3, "abc"},
		{"abc-def", 4, "abc"},
		{"abc", 10, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := cutToLen(tt.in, tt.n); got != tt.want {
			t.Errorf("cutToLen(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
