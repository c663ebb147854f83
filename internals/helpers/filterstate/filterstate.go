// file: internals/helpers/filterstate/filterstate.go
//
// Centralized mapping between the named listing filters and their query
// parameters. Every list endpoint round-trips its filter set through this
// package instead of building parameters ad hoc, so the encoding rules
// (omit empties, collapse year+month into one period value) live in exactly
// one place.
package filterstate

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// All is the sentinel the selects use for "no filter on this dimension".
const All = "All"

// Filters is the full named filter set a listing route understands. Zero
// value means "no filters active" and encodes to the bare route.
type Filters struct {
	OrganizationID string
	ClubID         string
	Status         string
	Method         string
	Currency       string
	Search         string
	Year           string // "All" or empty means no period filter
	Month          string // "01".."12", "All" or empty
}

var (
	periodYearRe  = regexp.MustCompile(`^\d{4}$`)
	periodMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// FromQuery seeds a filter set from incoming query parameters. The period
// parameter splits back into year/month; malformed values are ignored.
func FromQuery(q map[string]string) Filters {
	f := Filters{
		OrganizationID: strings.TrimSpace(q["organization_id"]),
		ClubID:         strings.TrimSpace(q["club_id"]),
		Status:         strings.TrimSpace(q["status"]),
		Method:         strings.TrimSpace(q["method"]),
		Currency:       strings.TrimSpace(q["currency"]),
		Search:         strings.TrimSpace(q["search"]),
	}
	f.Year, f.Month = ParsePeriod(q["period"])
	return f
}

// ParsePeriod splits "YYYY" or "YYYY-MM" into year and month. Anything else
// yields empty values.
func ParsePeriod(s string) (year, month string) {
	s = strings.TrimSpace(s)
	switch {
	case periodYearRe.MatchString(s):
		return s, ""
	case periodMonthRe.MatchString(s):
		return s[:4], s[5:]
	default:
		return "", ""
	}
}

// Period collapses year+month into the single wire parameter. Year "All"
// (or empty) disables the period entirely, month "All" (or empty) keeps
// only the year segment.
func (f Filters) Period() string {
	year := strings.TrimSpace(f.Year)
	if year == "" || strings.EqualFold(year, All) || !periodYearRe.MatchString(year) {
		return ""
	}
	month := strings.TrimSpace(f.Month)
	if month == "" || strings.EqualFold(month, All) {
		return year
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if periodMonthRe.MatchString(year + "-" + month) {
		return year + "-" + month
	}
	return year
}

// PeriodRange converts the active period into a [start, end) UTC window for
// timestamp predicates. ok is false when no period filter is active.
func (f Filters) PeriodRange() (start, end time.Time, ok bool) {
	p := f.Period()
	switch {
	case p == "":
		return time.Time{}, time.Time{}, false
	case periodYearRe.MatchString(p):
		t, err := time.Parse("2006", p)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		start = time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), true
	default:
		t, err := time.Parse("2006-01", p)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	}
}

// Values serializes the active filters; empty dimensions are omitted.
func (f Filters) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		val = strings.TrimSpace(val)
		if val != "" && !strings.EqualFold(val, All) {
			v.Set(key, val)
		}
	}
	set("organization_id", f.OrganizationID)
	set("club_id", f.ClubID)
	set("status", f.Status)
	set("method", f.Method)
	set("currency", f.Currency)
	set("search", f.Search)
	if p := f.Period(); p != "" {
		v.Set("period", p)
	}
	return v
}

// Encode renders the canonical query string ("" when nothing is active).
func (f Filters) Encode() string {
	return f.Values().Encode()
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return len(f.Values()) == 0
}

// Reset returns the default (empty) filter set.
func (f Filters) Reset() Filters {
	return Filters{}
}
