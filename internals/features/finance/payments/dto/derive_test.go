// file: internals/features/finance/payments/dto/derive_test.go
package dto

import (
	"reflect"
	"testing"
)

var refs = []FeeRef{
	{StudentFeeID: 42, EffectiveAmount: 150, CurrencyCode: "MYR"},
	{StudentFeeID: 7, EffectiveAmount: 90.5, CurrencyCode: "", PlanCurrencyCode: "SGD"},
	{StudentFeeID: 1001, EffectiveAmount: 12000, CurrencyCode: "JPY"},
}

func TestMatchFeeRef(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantID int
		wantOK bool
	}{
		{"plain id", "42", 42, true},
		{"surrounding whitespace", " 42 ", 42, true},
		{"other row", "1001", 1001, true},
		{"unknown id", "999", 0, false},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"non-numeric", "abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := MatchFeeRef(tt.in, refs)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && ref.StudentFeeID != tt.wantID {
				t.Errorf("matched id %d, want %d", ref.StudentFeeID, tt.wantID)
			}
		})
	}
}

// A matched assignment always overwrites the draft's amount and currency;
// no match leaves the draft exactly as submitted.
func TestApplyFeeDefaultsCreate(t *testing.T) {
	tests := []struct {
		name         string
		req          PaymentCreateRequest
		wantApplied  bool
		wantAmount   string
		wantCurrency string
	}{
		{
			"fills an empty draft",
			PaymentCreateRequest{StudentFeeID: "42"},
			true, "150.00", "MYR",
		},
		{
			"overwrites stale values",
			PaymentCreateRequest{StudentFeeID: "42", Amount: "999.99", CurrencyCode: "USD"},
			true, "150.00", "MYR",
		},
		{
			"falls back to the plan currency",
			PaymentCreateRequest{StudentFeeID: "7"},
			true, "90.50", "SGD",
		},
		{
			"unknown reference leaves the draft untouched",
			PaymentCreateRequest{StudentFeeID: "999", Amount: "25.00", CurrencyCode: "MYR"},
			false, "25.00", "MYR",
		},
		{
			"no reference leaves the draft untouched",
			PaymentCreateRequest{Amount: "25.00", CurrencyCode: "MYR"},
			false, "25.00", "MYR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if got := req.ApplyFeeDefaults(refs); got != tt.wantApplied {
				t.Fatalf("applied = %v, want %v", got, tt.wantApplied)
			}
			if req.Amount != tt.wantAmount {
				t.Errorf("amount = %q, want %q", req.Amount, tt.wantAmount)
			}
			if req.CurrencyCode != tt.wantCurrency {
				t.Errorf("currency = %q, want %q", req.CurrencyCode, tt.wantCurrency)
			}
		})
	}
}

func TestApplyFeeDefaultsUpdate(t *testing.T) {
	feeID := "1001"
	req := PaymentUpdateRequest{StudentFeeID: &feeID}
	if !req.ApplyFeeDefaults(refs) {
		t.Fatal("expected defaults to apply")
	}
	if req.Amount == nil || *req.Amount != "12000.00" {
		t.Errorf("amount = %v, want 12000.00", req.Amount)
	}
	if req.CurrencyCode == nil || *req.CurrencyCode != "JPY" {
		t.Errorf("currency = %v, want JPY", req.CurrencyCode)
	}

	var noRef PaymentUpdateRequest
	if noRef.ApplyFeeDefaults(refs) {
		t.Error("nil reference should not apply")
	}
	if noRef.Amount != nil || noRef.CurrencyCode != nil {
		t.Error("nil reference mutated the draft")
	}
}

func TestParseIntList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []int
	}{
		{"plain ids", []string{"1", "2", "3"}, []int{1, 2, 3}},
		{"whitespace", []string{" 4 ", "5"}, []int{4, 5}},
		{"skips garbage", []string{"1", "x", "3"}, []int{1, 3}},
		{"empty input", nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIntList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIntList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"150.00", 150, true},
		{"150", 150, true},
		{" 99.90 ", 99.9, true},
		{"0", 0, true},
		{"-5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseAmount(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
