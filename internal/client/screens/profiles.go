package screens

import (
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

func (p apiProfile) model() models.Profile {
	email := p.User.Email
	if email == "" {
		email = p.Email
	}
	return models.Profile{
		ID:           string(p.ID),
		FirstName:    p.User.FirstName,
		LastName:     p.User.LastName,
		DisplayName:  p.DisplayName,
		Email:        email,
		Phone:        p.User.Phone,
		Address:      p.Address,
		City:         p.City,
		ReferralCode: p.ReferralCode,
		CreatedAt:    p.CreatedAt.Time,
	}
}

func decodeProfiles(body []byte) ([]models.Profile, int, error) {
	var resp struct {
		Data []apiProfile `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, err
	}
	rows := make([]models.Profile, 0, len(resp.Data))
	for _, p := range resp.Data {
		rows = append(rows, p.model())
	}
	return rows, len(rows), nil
}

func geekQuery(withReferral bool) func(models.FilterState) url.Values {
	return func(f models.FilterState) url.Values {
		q := f.DateParams()
		q.Set("user_type", "geeker")
		if withReferral && f.ReferralCode != "" {
			q.Set("referral_code", f.ReferralCode)
		}
		return q
	}
}

func profileColumns(opts Options) []listview.Column[models.Profile] {
	return []listview.Column[models.Profile]{
		{Label: "Name", Value: models.Profile.FullName},
		{Label: "Phone", Value: func(p models.Profile) string { return p.Phone }},
		{Label: "Email", Value: func(p models.Profile) string { return p.Email }},
		{Label: "City", Value: func(p models.Profile) string { return p.City }},
		{Label: "Registration Date", Value: func(p models.Profile) string { return opts.format(p.CreatedAt, dayLayout) }},
	}
}

// NewGeeks is the geek registration report.
func NewGeeks(opts Options) *listview.View[models.Profile] {
	return listview.New(listview.Config[models.Profile]{
		Name:     Geeks,
		ListPath: "/profiles/search",
		Query:    geekQuery(false),
		Decode:   decodeProfiles,
		ID:       func(p models.Profile) string { return p.ID },
		Searchable: func(p models.Profile) []string {
			return []string{p.Email, p.Address, p.DisplayName}
		},
		Columns:    profileColumns(opts),
		ExportName: "GeekRegistrations.csv",
	}, opts.Client, opts.Log)
}

// NewGeeksReferral is the registration report filtered by referral code.
func NewGeeksReferral(opts Options) *listview.View[models.Profile] {
	cols := append(profileColumns(opts), listview.Column[models.Profile]{
		Label: "Referral Code", Value: func(p models.Profile) string { return p.ReferralCode },
	})
	return listview.New(listview.Config[models.Profile]{
		Name:     GeeksReferral,
		ListPath: "/profiles/search",
		Query:    geekQuery(true),
		Decode:   decodeProfiles,
		ID:       func(p models.Profile) string { return p.ID },
		Searchable: func(p models.Profile) []string {
			return []string{p.FullName(), p.Email, p.ReferralCode}
		},
		Columns:    cols,
		ExportName: "GeekRegistrations.csv",
	}, opts.Client, opts.Log)
}
