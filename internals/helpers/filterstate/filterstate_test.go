// file: internals/helpers/filterstate/filterstate_test.go
package filterstate

import (
	"testing"
	"time"
)

func TestPeriodCollapse(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		want  string
	}{
		{"year and month", "2024", "03", "2024-03"},
		{"single digit month is padded", "2024", "3", "2024-03"},
		{"month All keeps year", "2024", "All", "2024"},
		{"month empty keeps year", "2024", "", "2024"},
		{"year All disables period", "All", "05", ""},
		{"year empty disables period", "", "05", ""},
		{"lowercase all", "all", "all", ""},
		{"malformed year", "24", "05", ""},
		{"malformed month falls back to year", "2024", "13", "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filters{Year: tt.year, Month: tt.month}
			if got := f.Period(); got != tt.want {
				t.Errorf("Period() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  string
		wantMonth string
	}{
		{"2024", "2024", ""},
		{"2024-03", "2024", "03"},
		{"2024-12", "2024", "12"},
		{"2024-13", "", ""},
		{"2024-00", "", ""},
		{"garbage", "", ""},
		{"", "", ""},
		{" 2024 ", "2024", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			y, m := ParsePeriod(tt.in)
			if y != tt.wantYear || m != tt.wantMonth {
				t.Errorf("ParsePeriod(%q) = (%q, %q), want (%q, %q)", tt.in, y, m, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

// The canonical query string and FromQuery must round-trip: parsing what a
// filter set encodes yields the same filter set.
func TestEncodeFromQueryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
	}{
		{"zero", Filters{}},
		{"status only", Filters{Status: "paid"}},
		{"full period", Filters{Status: "paid", Method: "cash", Year: "2024", Month: "07"}},
		{"year only period", Filters{Currency: "MYR", Year: "2023"}},
		{"search", Filters{Search: "lee", OrganizationID: "b7e2d9f0-0000-0000-0000-000000000001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := tt.f.Values()
			q := map[string]string{}
			for k := range vals {
				q[k] = vals.Get(k)
			}
			got := FromQuery(q)
			if got.Encode() != tt.f.Encode() {
				t.Errorf("round trip = %q, want %q", got.Encode(), tt.f.Encode())
			}
		})
	}
}

// "All" selections and empty values never leak into the query string.
func TestValuesOmitsInactive(t *testing.T) {
	f := Filters{
		OrganizationID: "",
		Status:         All,
		Method:         "all",
		Currency:       "MYR",
		Year:           All,
		Month:          "09",
	}
	v := f.Values()
	if len(v) != 1 {
		t.Fatalf("expected 1 active param, got %d (%v)", len(v), v)
	}
	if v.Get("currency") != "MYR" {
		t.Errorf("currency = %q, want MYR", v.Get("currency"))
	}
}

func TestIsZeroAndReset(t *testing.T) {
	f := Filters{Status: "pending", Year: "2024"}
	if f.IsZero() {
		t.Error("filters with active values reported zero")
	}
	if !f.Reset().IsZero() {
		t.Error("Reset() did not clear the filter set")
	}
	if !(Filters{Status: All, Year: All}).IsZero() {
		t.Error("all-All filter set should be zero")
	}
}

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		name      string
		f         Filters
		wantOK    bool
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			"month window",
			Filters{Year: "2024", Month: "02"},
			true,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"year window",
			Filters{Year: "2024"},
			true,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"december rolls into next year",
			Filters{Year: "2023", Month: "12"},
			true,
			time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{"no period", Filters{}, false, time.Time{}, time.Time{}},
		{"All year", Filters{Year: All, Month: "04"}, false, time.Time{}, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := tt.f.PeriodRange()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("range = [%v, %v), want [%v, %v)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
