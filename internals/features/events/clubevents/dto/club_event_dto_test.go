// file: internals/features/events/clubevents/dto/club_event_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseUUIDList(t *testing.T) {
	a := uuid.MustParse("3e9c2d4a-1b2c-4d5e-8f90-112233445566")
	b := uuid.MustParse("7f8e9dab-cdef-4a5b-8c9d-aabbccddeeff")

	tests := []struct {
		name string
		in   []string
		want []uuid.UUID
	}{
		{"plain ids", []string{a.String(), b.String()}, []uuid.UUID{a, b}},
		{"whitespace", []string{" " + a.String() + " "}, []uuid.UUID{a}},
		{"skips garbage", []string{a.String(), "not-a-uuid", b.String()}, []uuid.UUID{a, b}},
		{"empty input", nil, []uuid.UUID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseUUIDList(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("id[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"2026-03-15T18:00:00Z", true},
		{"2026-03-15 18:00", true},
		{"2026-03-15", true},
		{"15/03/2026", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, ok := parseEventTime(tt.in); ok != tt.wantOK {
				t.Errorf("parseEventTime(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
		})
	}
}
