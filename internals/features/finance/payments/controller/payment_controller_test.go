// file: internals/features/finance/payments/controller/payment_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/finance/payments/dto"
	studentModel "clubhub_backend/internals/features/people/students/model"
)

func TestBuildFeeRefsCarriesPlanCurrency(t *testing.T) {
	planA := uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c5d")
	planB := uuid.MustParse("9f8e7d6c-5b4a-4c3d-8e1f-a0b1c2d3e4f5")

	fees := []studentModel.StudentFee{
		{StudentFeeID: 1, StudentFeeFeePlanID: planA, StudentFeeEffectiveAmount: 120, StudentFeeCurrencyCode: "MYR"},
		{StudentFeeID: 2, StudentFeeFeePlanID: planB, StudentFeeEffectiveAmount: 90.5, StudentFeeCurrencyCode: ""},
	}
	refs := buildFeeRefs(fees, map[uuid.UUID]string{planA: "MYR", planB: "SGD"})

	if len(refs) != 2 {
		t.Fatalf("refs = %d, want 2", len(refs))
	}
	if refs[0].PlanCurrencyCode != "MYR" {
		t.Errorf("refs[0].PlanCurrencyCode = %q, want MYR", refs[0].PlanCurrencyCode)
	}
	if refs[1].PlanCurrencyCode != "SGD" {
		t.Errorf("refs[1].PlanCurrencyCode = %q, want SGD", refs[1].PlanCurrencyCode)
	}
	if refs[1].CurrencyCode != "" {
		t.Errorf("refs[1].CurrencyCode = %q, want empty", refs[1].CurrencyCode)
	}

	// an assignment without its own currency resolves to the plan's
	req := dto.PaymentCreateRequest{StudentFeeID: "2"}
	if !req.ApplyFeeDefaults(refs) {
		t.Fatal("ApplyFeeDefaults did not match assignment 2")
	}
	if req.Amount != "90.50" {
		t.Errorf("derived amount = %q, want 90.50", req.Amount)
	}
	if req.CurrencyCode != "SGD" {
		t.Errorf("derived currency = %q, want SGD", req.CurrencyCode)
	}
}

func TestBuildFeeRefsMissingPlan(t *testing.T) {
	planID := uuid.MustParse("11111111-2222-4333-8444-555566667777")
	fees := []studentModel.StudentFee{
		{StudentFeeID: 9, StudentFeeFeePlanID: planID, StudentFeeEffectiveAmount: 50, StudentFeeCurrencyCode: "MYR"},
	}
	refs := buildFeeRefs(fees, map[uuid.UUID]string{})
	if len(refs) != 1 {
		t.Fatalf("refs = %d, want 1", len(refs))
	}
	if refs[0].PlanCurrencyCode != "" {
		t.Errorf("PlanCurrencyCode = %q, want empty when the plan row is gone", refs[0].PlanCurrencyCode)
	}
}
