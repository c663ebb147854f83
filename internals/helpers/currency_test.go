// file: internals/helpers/currency_test.go
package helper

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		amount float64
		want   string
	}{
		{"JPY groups thousands", "JPY", 1500000, "1,500,000"},
		{"JPY small amount", "JPY", 500, "500"},
		{"JPY four digits", "JPY", 1000, "1,000"},
		{"JPY rounds fractions", "JPY", 1234.6, "1,235"},
		{"JPY zero", "JPY", 0, "0"},
		{"JPY negative", "JPY", -1234567, "-1,234,567"},
		{"JPY lowercase code", "jpy", 12000, "12,000"},
		{"MYR two decimals", "MYR", 150, "150.00"},
		{"USD keeps cents", "USD", 99.9, "99.90"},
		{"GBP rounds to cents", "GBP", 10.006, "10.01"},
		{"unknown code defaults to decimals", "XXX", 1234567, "1234567.00"},
		{"empty code defaults to decimals", "", 5, "5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.code, tt.amount); got != tt.want {
				t.Errorf("FormatAmount(%q, %v) = %q, want %q", tt.code, tt.amount, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{123, "123"},
		{1234, "1,234"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
