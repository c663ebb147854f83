// file: internals/helpers/pagination_test.go
package helper

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		q    map[string]string
		opt  PageOptions
		want Params
	}{
		{
			"defaults",
			map[string]string{},
			DefaultOpts,
			Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"explicit values",
			map[string]string{"page": "3", "per_page": "10", "sort_by": "name", "order": "asc"},
			DefaultOpts,
			Params{Page: 3, PerPage: 10, SortBy: "name", SortOrder: "asc"},
		},
		{
			"legacy limit alias",
			map[string]string{"limit": "5"},
			DefaultOpts,
			Params{Page: 1, PerPage: 5, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"sort aliases order",
			map[string]string{"sort": "asc"},
			DefaultOpts,
			Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "asc"},
		},
		{
			"per_page capped at max",
			map[string]string{"per_page": "9999"},
			DefaultOpts,
			Params{Page: 1, PerPage: 200, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"garbage falls back",
			map[string]string{"page": "abc", "per_page": "-2", "order": "sideways"},
			DefaultOpts,
			Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"admin defaults",
			map[string]string{},
			AdminOpts,
			Params{Page: 1, PerPage: 50, SortBy: "created_at", SortOrder: "desc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.q, "created_at", "desc", tt.opt)
			if got != tt.want {
				t.Errorf("ParseQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 4, PerPage: 25}
	if p.Limit() != 25 {
		t.Errorf("Limit() = %d, want 25", p.Limit())
	}
	if p.Offset() != 75 {
		t.Errorf("Offset() = %d, want 75", p.Offset())
	}
}

// Raw sort keys must never reach the ORDER BY; unknown keys fall back to the
// whitelisted default column.
func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
	}
	tests := []struct {
		name string
		p    Params
		want string
	}{
		{"known key", Params{SortBy: "name", SortOrder: "asc"}, "student_name ASC"},
		{"case-insensitive key", Params{SortBy: "Name", SortOrder: "desc"}, "student_name DESC"},
		{"unknown key falls back", Params{SortBy: "password", SortOrder: "asc"}, "student_created_at ASC"},
		{"injection attempt falls back", Params{SortBy: "name; DROP TABLE students", SortOrder: "desc"}, "student_created_at DESC"},
		{"default direction", Params{SortBy: "created_at"}, "student_created_at DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.OrderClause(allowed, "created_at"); got != tt.want {
				t.Errorf("OrderClause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		p          Params
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{"first of many", 100, Params{Page: 1, PerPage: 25}, 4, true, false},
		{"middle page", 100, Params{Page: 2, PerPage: 25}, 4, true, true},
		{"last page", 100, Params{Page: 4, PerPage: 25}, 4, false, true},
		{"uneven split rounds up", 101, Params{Page: 1, PerPage: 25}, 5, true, false},
		{"empty result", 0, Params{Page: 1, PerPage: 25}, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMeta(tt.total, tt.p)
			if m.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", m.TotalPages, tt.wantPages)
			}
			if m.HasNext != tt.wantHasNxt {
				t.Errorf("HasNext = %v, want %v", m.HasNext, tt.wantHasNxt)
			}
			if m.HasPrev != tt.wantHasPrv {
				t.Errorf("HasPrev = %v, want %v", m.HasPrev, tt.wantHasPrv)
			}
		})
	}
}
