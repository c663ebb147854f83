// file: internals/features/people/instructors/dto/instructor_dto_test.go
package dto

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeSpecialties(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"trims and keeps order", []string{" karate ", "judo"}, []string{"karate", "judo"}},
		{"drops empties", []string{"", "  ", "aikido"}, []string{"aikido"}},
		{"dedupes case-insensitively", []string{"Karate", "karate", "KARATE"}, []string{"Karate"}},
		{"empty input stays non-nil", nil, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeSpecialties(tc.in)
			if got == nil {
				t.Fatal("result is nil")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInstructorSpecialtiesRoundTrip(t *testing.T) {
	orgID := uuid.MustParse("5d6e7f80-9a0b-4c1d-8e2f-304152637485")

	m := InstructorCreateRequest{
		OrganizationID: orgID,
		Name:           "Aida",
		Specialties:    []string{"karate", "kendo"},
	}.ToModel()
	if len(m.InstructorSpecialties) != 2 || m.InstructorSpecialties[1] != "kendo" {
		t.Fatalf("model specialties = %v, want [karate kendo]", m.InstructorSpecialties)
	}

	// nil keeps the stored list
	ApplyInstructorUpdate(&m, InstructorUpdateRequest{})
	if len(m.InstructorSpecialties) != 2 {
		t.Errorf("absent field mutated specialties: %v", m.InstructorSpecialties)
	}

	// empty slice clears it
	ApplyInstructorUpdate(&m, InstructorUpdateRequest{Specialties: []string{}})
	if len(m.InstructorSpecialties) != 0 {
		t.Errorf("empty field did not clear specialties: %v", m.InstructorSpecialties)
	}

	m.InstructorSpecialties = append(m.InstructorSpecialties, "judo")
	resp := ToInstructorResponse(m)
	if !reflect.DeepEqual(resp.Specialties, []string{"judo"}) {
		t.Errorf("response specialties = %v, want [judo]", resp.Specialties)
	}
}
