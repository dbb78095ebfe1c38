package models

import (
	"net/url"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/common"
)

// FilterState is the search and pagination state of one view. A zero
// time means the bound is unset.
type FilterState struct {
	From         time.Time
	To           time.Time
	Query        string
	CategoryID   string
	ReferralCode string
	Page         int
	PageSize     int
}

// SetQuery changes the free-text query and rewinds to the first page.
func (f *FilterState) SetQuery(q string) {
	f.Query = q
	f.Page = 0
}

// DateParams renders the date range as startDate/endDate query parameters.
// Unset bounds are omitted.
func (f FilterState) DateParams() url.Values {
	v := url.Values{}
	if !f.From.IsZero() {
		v.Set("startDate", f.From.Format(common.DateLayout))
	}
	if !f.To.IsZero() {
		v.Set("endDate", f.To.Format(common.DateLayout))
	}
	return v
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(common.DateLayout, s)
}
