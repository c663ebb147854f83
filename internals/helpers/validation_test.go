// file: internals/helpers/validation_test.go
package helper

import (
	"errors"
	"testing"
)

type signupForm struct {
	Name         string `validate:"required,max=120"`
	Email        string `validate:"omitempty,email"`
	CurrencyCode string `validate:"omitempty,len=3"`
	Status       string `validate:"omitempty,oneof=active inactive"`
	Discount     int    `validate:"omitempty,min=0,max=100"`
}

func TestFieldErrorMapMessages(t *testing.T) {
	tests := []struct {
		name      string
		form      signupForm
		wantField string
		wantMsg   string
	}{
		{
			"required",
			signupForm{},
			"name",
			"The name field is required.",
		},
		{
			"email",
			signupForm{Name: "a", Email: "not-an-email"},
			"email",
			"The email field must be a valid email address.",
		},
		{
			"oneof",
			signupForm{Name: "a", Status: "archived"},
			"status",
			"The selected status is invalid.",
		},
		{
			"max",
			signupForm{Name: "a", Discount: 150},
			"discount",
			"The discount field may not be greater than 100.",
		},
		{
			"fallback for unmapped tag",
			signupForm{Name: "a", CurrencyCode: "MYRX"},
			"currency_code",
			"The currency code field is invalid.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			if err == nil {
				t.Fatal("expected validation error")
			}
			m := FieldErrorMap(err)
			msgs, ok := m[tt.wantField]
			if !ok {
				t.Fatalf("missing key %q in %v", tt.wantField, m)
			}
			if len(msgs) == 0 || msgs[0] != tt.wantMsg {
				t.Errorf("message = %v, want %q", msgs, tt.wantMsg)
			}
		})
	}
}

func TestFieldErrorMapNonValidatorError(t *testing.T) {
	m := FieldErrorMap(errors.New("boom"))
	if msgs, ok := m["_"]; !ok || len(msgs) != 1 {
		t.Fatalf("fallback map = %v", m)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"CurrencyCode", "currency_code"},
		{"OrganizationID", "organization_id"},
		{"StudentFeeID", "student_fee_id"},
		{"URL", "url"},
		{"IDDocument", "id_document"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toSnakeCase(tt.in); got != tt.want {
				t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
