// file: internals/features/finance/payments/model/payment_model_test.go
package model

import "testing"

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "unpaid", "successful", "failed"} {
		if !ValidPaymentStatus(s) {
			t.Errorf("ValidPaymentStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "PAID", "refunded", "done"} {
		if ValidPaymentStatus(s) {
			t.Errorf("ValidPaymentStatus(%q) = true", s)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, s := range []string{"cash", "card", "stripe"} {
		if !ValidPaymentMethod(s) {
			t.Errorf("ValidPaymentMethod(%q) = false", s)
		}
	}
	for _, s := range []string{"", "bank", "Cash"} {
		if ValidPaymentMethod(s) {
			t.Errorf("ValidPaymentMethod(%q) = true", s)
		}
	}
}
