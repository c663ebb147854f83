// file: internals/features/people/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/people/students/model"
)

// Multipart forms carry the identity/address fields plus the plan-assignment
// sub-fields (fee_plan_id, interval, discount) and two file slots.
type StudentCreateRequest struct {
	OrganizationID uuid.UUID  `form:"organization_id" validate:"required"`
	ClubID         *uuid.UUID `form:"club_id"`
	Name           string     `form:"name" validate:"required,max=120"`
	Gender         *string    `form:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth    *string    `form:"date_of_birth"` // YYYY-MM-DD
	Email          *string    `form:"email" validate:"omitempty,email"`
	Phone          *string    `form:"phone" validate:"omitempty,max=30"`

	AddressLine1 *string `form:"address_line1" validate:"omitempty,max=160"`
	AddressLine2 *string `form:"address_line2" validate:"omitempty,max=160"`
	City         *string `form:"city" validate:"omitempty,max=80"`
	State        *string `form:"state" validate:"omitempty,max=80"`
	Postcode     *string `form:"postcode" validate:"omitempty,max=20"`
	Country      *string `form:"country" validate:"omitempty,max=60"`

	// plan assignment sub-fields (all optional; fee_plan_id activates them)
	FeePlanID       *uuid.UUID `form:"fee_plan_id"`
	FeeInterval     *string    `form:"interval" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	DiscountPercent *float64   `form:"discount" validate:"omitempty,min=0,max=100"`
}

type StudentUpdateRequest struct {
	ClubID      *uuid.UUID `form:"club_id"`
	Name        *string    `form:"name" validate:"omitempty,max=120"`
	Gender      *string    `form:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth *string    `form:"date_of_birth"`
	Email       *string    `form:"email" validate:"omitempty,email"`
	Phone       *string    `form:"phone" validate:"omitempty,max=30"`

	AddressLine1 *string `form:"address_line1" validate:"omitempty,max=160"`
	AddressLine2 *string `form:"address_line2" validate:"omitempty,max=160"`
	City         *string `form:"city" validate:"omitempty,max=80"`
	State        *string `form:"state" validate:"omitempty,max=80"`
	Postcode     *string `form:"postcode" validate:"omitempty,max=20"`
	Country      *string `form:"country" validate:"omitempty,max=60"`

	FeePlanID       *uuid.UUID `form:"fee_plan_id"`
	FeeInterval     *string    `form:"interval" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	DiscountPercent *float64   `form:"discount" validate:"omitempty,min=0,max=100"`
}

type StudentFeeResponse struct {
	StudentFeeID    int       `json:"student_fee_id"`
	FeePlanID       uuid.UUID `json:"fee_plan_id"`
	Interval        string    `json:"interval"`
	DiscountPercent float64   `json:"discount_percent"`
	EffectiveAmount float64   `json:"effective_amount"`
	CurrencyCode    string    `json:"currency_code"`
}

type StudentResponse struct {
	StudentID      uuid.UUID  `json:"student_id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ClubID         *uuid.UUID `json:"club_id,omitempty"`
	Name           string     `json:"name"`
	Gender         *string    `json:"gender,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`

	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Postcode     *string `json:"postcode,omitempty"`
	Country      *string `json:"country,omitempty"`

	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	IDDocumentURL   *string `json:"identification_document_url,omitempty"`
	IDDocumentName  *string `json:"identification_document_name,omitempty"`

	Fee *StudentFeeResponse `json:"fee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
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

func (r StudentCreateRequest) ToModel() model.Student {
	return model.Student{
		StudentOrganizationID: r.OrganizationID,
		StudentClubID:         r.ClubID,
		StudentName:           strings.TrimSpace(r.Name),
		StudentGender:         r.Gender,
		StudentDateOfBirth:    parseDate(r.DateOfBirth),
		StudentEmail:          r.Email,
		StudentPhone:          r.Phone,
		StudentAddressLine1:   r.AddressLine1,
		StudentAddressLine2:   r.AddressLine2,
		StudentCity:           r.City,
		StudentState:          r.State,
		StudentPostcode:       r.Postcode,
		StudentCountry:        r.Country,
	}
}

func ApplyStudentUpdate(m *model.Student, r StudentUpdateRequest) {
	if r.ClubID != nil {
		m.StudentClubID = r.ClubID
	}
	if r.Name != nil {
		m.StudentName = strings.TrimSpace(*r.Name)
	}
	if r.Gender != nil {
		m.StudentGender = r.Gender
	}
	if t := parseDate(r.DateOfBirth); t != nil {
		m.StudentDateOfBirth = t
	}
	if r.Email != nil {
		m.StudentEmail = r.Email
	}
	if r.Phone != nil {
		m.StudentPhone = r.Phone
	}
	if r.AddressLine1 != nil {
		m.StudentAddressLine1 = r.AddressLine1
	}
	if r.AddressLine2 != nil {
		m.StudentAddressLine2 = r.AddressLine2
	}
	if r.City != nil {
		m.StudentCity = r.City
	}
	if r.State != nil {
		m.StudentState = r.State
	}
	if r.Postcode != nil {
		m.StudentPostcode = r.Postcode
	}
	if r.Country != nil {
		m.StudentCountry = r.Country
	}
}

func ToStudentFeeResponse(m model.StudentFee) StudentFeeResponse {
	return StudentFeeResponse{
		StudentFeeID:    m.StudentFeeID,
		FeePlanID:       m.StudentFeeFeePlanID,
		Interval:        m.StudentFeeInterval,
		DiscountPercent: m.StudentFeeDiscountPercent,
		EffectiveAmount: m.StudentFeeEffectiveAmount,
		CurrencyCode:    m.StudentFeeCurrencyCode,
	}
}

func ToStudentResponse(m model.Student, fee *model.StudentFee) StudentResponse {
	resp := StudentResponse{
		StudentID:       m.StudentID,
		OrganizationID:  m.StudentOrganizationID,
		ClubID:          m.StudentClubID,
		Name:            m.StudentName,
		Gender:          m.StudentGender,
		DateOfBirth:     m.StudentDateOfBirth,
		Email:           m.StudentEmail,
		Phone:           m.StudentPhone,
		AddressLine1:    m.StudentAddressLine1,
		AddressLine2:    m.StudentAddressLine2,
		City:            m.StudentCity,
		State:           m.StudentState,
		Postcode:        m.StudentPostcode,
		Country:         m.StudentCountry,
		RatingAvg:       m.StudentRatingAvg,
		RatingCount:     m.StudentRatingCount,
		ProfileImageURL: m.StudentProfileImageURL,
		IDDocumentURL:   m.StudentIDDocumentURL,
		IDDocumentName:  m.StudentIDDocumentName,
		CreatedAt:       m.StudentCreatedAt,
		UpdatedAt:       m.StudentUpdatedAt,
	}
	if fee != nil {
		f := ToStudentFeeResponse(*fee)
		resp.Fee = &f
	}
	return resp
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v, nil))
	}
	return out
}
