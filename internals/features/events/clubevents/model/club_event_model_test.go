// file: internals/features/events/clubevents/model/club_event_model_test.go
package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from EventStatus
		to   EventStatus
		want bool
	}{
		{"upcoming to ongoing", EventStatusUpcoming, EventStatusOngoing, true},
		{"ongoing to completed", EventStatusOngoing, EventStatusCompleted, true},
		{"upcoming straight to completed", EventStatusUpcoming, EventStatusCompleted, true},
		{"same state is allowed", EventStatusOngoing, EventStatusOngoing, true},
		{"completed back to ongoing", EventStatusCompleted, EventStatusOngoing, false},
		{"ongoing back to upcoming", EventStatusOngoing, EventStatusUpcoming, false},
		{"completed back to upcoming", EventStatusCompleted, EventStatusUpcoming, false},
		{"unknown source", EventStatus("draft"), EventStatusOngoing, false},
		{"unknown target", EventStatusUpcoming, EventStatus("archived"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidEventType(t *testing.T) {
	for _, s := range []string{"training", "competition", "grading", "social", "meeting"} {
		if !ValidEventType(s) {
			t.Errorf("ValidEventType(%q) = false", s)
		}
	}
	for _, s := range []string{"", "party", "TRAINING"} {
		if ValidEventType(s) {
			t.Errorf("ValidEventType(%q) = true", s)
		}
	}
}
