// file: internals/features/people/instructors/dto/instructor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"clubhub_backend/internals/features/people/instructors/model"
)

// Create/update arrive as multipart because of the profile image slot, so
// the tags are form, not json.
type InstructorCreateRequest struct {
	OrganizationID uuid.UUID  `form:"organization_id" validate:"required"`
	ClubID         *uuid.UUID `form:"club_id"`
	Name           string     `form:"name" validate:"required,max=120"`
	Gender         *string    `form:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth    *string    `form:"date_of_birth"` // YYYY-MM-DD
	Email          *string    `form:"email" validate:"omitempty,email"`
	Phone          *string    `form:"phone" validate:"omitempty,max=30"`
	Status         *string    `form:"status" validate:"omitempty,oneof=active inactive"`

	// repeated specialties[] parts, filled by the controller
	Specialties []string `form:"-"`
}

type InstructorUpdateRequest struct {
	ClubID      *uuid.UUID `form:"club_id"`
	Name        *string    `form:"name" validate:"omitempty,max=120"`
	Gender      *string    `form:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth *string    `form:"date_of_birth"`
	Email       *string    `form:"email" validate:"omitempty,email"`
	Phone       *string    `form:"phone" validate:"omitempty,max=30"`
	Status      *string    `form:"status" validate:"omitempty,oneof=active inactive"`

	// nil keeps the stored list, an empty slice clears it
	Specialties []string `form:"-"`
}

type InstructorResponse struct {
	InstructorID    uuid.UUID  `json:"instructor_id"`
	OrganizationID  uuid.UUID  `json:"organization_id"`
	ClubID          *uuid.UUID `json:"club_id,omitempty"`
	Name            string     `json:"name"`
	Gender          *string    `json:"gender,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Status          string     `json:"status"`
	Specialties     []string   `json:"specialties"`
	RatingAvg       float64    `json:"rating_avg"`
	RatingCount     int        `json:"rating_count"`
	ProfileImageURL *string    `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// NormalizeSpecialties trims the repeated form values and drops empties and
// duplicates, keeping first-seen order. The result is never nil so a present
// but empty field still clears the column.
func NormalizeSpecialties(vals []string) []string {
	out := make([]string, 0, len(vals))
	seen := make(map[string]bool, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func (r InstructorCreateRequest) ToModel() model.Instructor {
	m := model.Instructor{
		InstructorOrganizationID: r.OrganizationID,
		InstructorClubID:         r.ClubID,
		InstructorName:           strings.TrimSpace(r.Name),
		InstructorGender:         r.Gender,
		InstructorDateOfBirth:    parseDate(r.DateOfBirth),
		InstructorEmail:          r.Email,
		InstructorPhone:          r.Phone,
		InstructorStatus:         model.InstructorStatusActive,
		InstructorSpecialties:    pq.StringArray(r.Specialties),
	}
	if r.Status != nil {
		m.InstructorStatus = model.InstructorStatus(*r.Status)
	}
	return m
}

func ApplyInstructorUpdate(m *model.Instructor, r InstructorUpdateRequest) {
	if r.ClubID != nil {
		m.InstructorClubID = r.ClubID
	}
	if r.Name != nil {
		m.InstructorName = strings.TrimSpace(*r.Name)
	}
	if r.Gender != nil {
		m.InstructorGender = r.Gender
	}
	if t := parseDate(r.DateOfBirth); t != nil {
		m.InstructorDateOfBirth = t
	}
	if r.Email != nil {
		m.InstructorEmail = r.Email
	}
	if r.Phone != nil {
		m.InstructorPhone = r.Phone
	}
	if r.Status != nil {
		m.InstructorStatus = model.InstructorStatus(*r.Status)
	}
	if r.Specialties != nil {
		m.InstructorSpecialties = pq.StringArray(r.Specialties)
	}
}

func ToInstructorResponse(m model.Instructor) InstructorResponse {
	return InstructorResponse{
		InstructorID:    m.InstructorID,
		OrganizationID:  m.InstructorOrganizationID,
		ClubID:          m.InstructorClubID,
		Name:            m.InstructorName,
		Gender:          m.InstructorGender,
		DateOfBirth:     m.InstructorDateOfBirth,
		Email:           m.InstructorEmail,
		Phone:           m.InstructorPhone,
		Status:          string(m.InstructorStatus),
		Specialties:     []string(m.InstructorSpecialties),
		RatingAvg:       m.InstructorRatingAvg,
		RatingCount:     m.InstructorRatingCount,
		ProfileImageURL: m.InstructorProfileImageURL,
		CreatedAt:       m.InstructorCreatedAt,
		UpdatedAt:       m.InstructorUpdatedAt,
	}
}

func ToInstructorResponses(list []model.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInstructorResponse(v))
	}
	return out
}
