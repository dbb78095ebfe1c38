package screens

import (
	"encoding/json"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

func (l apiLogin) model() models.LoginEvent {
	ut := models.UserTypeUnknown
	switch {
	case l.IsSeeker:
		ut = models.UserTypeSeeker
	case l.IsGeeker:
		ut = models.UserTypeGeeker
	}
	return models.LoginEvent{
		ID:        string(l.ID),
		UserType:  ut,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Phone:     l.Phone,
		Email:     l.Email,
		LastLogin: l.LastLogin.Time,
	}
}

func decodeLogins(body []byte) ([]models.LoginEvent, int, error) {
	var resp struct {
		Data struct {
			Users []apiLogin `json:"users"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, err
	}
	rows := make([]models.LoginEvent, 0, len(resp.Data.Users))
	for _, u := range resp.Data.Users {
		rows = append(rows, u.model())
	}
	return rows, len(rows), nil
}

// NewLogins is the login analytics report.
func NewLogins(opts Options) *listview.View[models.LoginEvent] {
	return listview.New(listview.Config[models.LoginEvent]{
		Name:       Logins,
		ListPath:   "/users/login-analytics",
		Decode:     decodeLogins,
		ID:         func(l models.LoginEvent) string { return l.ID },
		Searchable: func(l models.LoginEvent) []string { return []string{l.Email, l.FullName()} },
		Columns: []listview.Column[models.LoginEvent]{
			{Label: "User type", Value: func(l models.LoginEvent) string { return string(l.UserType) }},
			{Label: "Name", Value: models.LoginEvent.FullName},
			{Label: "Phone", Value: func(l models.LoginEvent) string { return l.Phone }},
			{Label: "Email", Value: func(l models.LoginEvent) string { return l.Email }},
			{
				Label:   "Login Date",
				Value:   func(l models.LoginEvent) string { return opts.format(l.LastLogin, dayLayout) },
				Display: func(l models.LoginEvent) string { return opts.format(l.LastLogin, dayTimeLayout) },
			},
		},
		ExportName: "LoginAnalytics.csv",
	}, opts.Client, opts.Log)
}
