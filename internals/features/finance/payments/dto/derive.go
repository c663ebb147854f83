// file: internals/features/finance/payments/dto/derive.go
package dto

import (
	"fmt"
	"strings"
)

// FeeRef is the slice of a plan assignment a payment draft needs. The
// resolver works on these instead of the full model so it stays pure and
// trivially testable.
type FeeRef struct {
	StudentFeeID     int
	EffectiveAmount  float64
	CurrencyCode     string
	PlanCurrencyCode string
}

// MatchFeeRef finds the assignment whose id equals the submitted value.
// Both sides are normalized to strings first, so "42", " 42 " and the
// integer 42 all select the same row.
func MatchFeeRef(studentFeeID string, refs []FeeRef) (FeeRef, bool) {
	want := strings.TrimSpace(studentFeeID)
	if want == "" {
		return FeeRef{}, false
	}
	for _, ref := range refs {
		if fmt.Sprint(ref.StudentFeeID) == want {
			return ref, true
		}
	}
	return FeeRef{}, false
}

// ApplyFeeDefaults copies the assignment's amount and currency into the
// draft whenever the referenced assignment exists, overwriting whatever the
// draft held. A missing or unknown reference leaves the draft untouched.
// Currency falls back to the plan's currency when the assignment carries
// none.
func (r *PaymentCreateRequest) ApplyFeeDefaults(refs []FeeRef) bool {
	ref, ok := MatchFeeRef(r.StudentFeeID, refs)
	if !ok {
		return false
	}
	r.Amount = fmt.Sprintf("%.2f", ref.EffectiveAmount)
	r.CurrencyCode = feeCurrency(ref)
	return true
}

func (r *PaymentUpdateRequest) ApplyFeeDefaults(refs []FeeRef) bool {
	if r.StudentFeeID == nil {
		return false
	}
	ref, ok := MatchFeeRef(*r.StudentFeeID, refs)
	if !ok {
		return false
	}
	amount := fmt.Sprintf("%.2f", ref.EffectiveAmount)
	currency := feeCurrency(ref)
	r.Amount = &amount
	r.CurrencyCode = &currency
	return true
}

func feeCurrency(ref FeeRef) string {
	if c := strings.TrimSpace(ref.CurrencyCode); c != "" {
		return c
	}
	return strings.TrimSpace(ref.PlanCurrencyCode)
}
