package screens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// apiTime accepts the timestamp shapes the API emits and treats null or
// an empty string as unset.
type apiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unknown format", s)
}

// apiID accepts numeric and string identifiers.
type apiID string

func (id *apiID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = apiID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = apiID(n.String())
	return nil
}

type apiCategory struct {
	ID             apiID   `json:"id"`
	Name           string  `json:"name"`
	ImageURL       string  `json:"imageUrl"`
	CreatedAt      apiTime `json:"createdAt"`
	UpdatedAt      apiTime `json:"updatedAt"`
	MainCategoryID apiID   `json:"mainCategoryId"`
	CategoryID     apiID   `json:"categoryId"`
}

type apiUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type apiProfile struct {
	ID           apiID   `json:"id"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	DisplayName  string  `json:"display_name"`
	City         string  `json:"city"`
	ReferralCode string  `json:"referral_code"`
	CreatedAt    apiTime `json:"createdAt"`
	User         apiUser `json:"user"`
}

type apiNamed struct {
	Name string `json:"name"`
}

type apiConnection struct {
	ID        apiID   `json:"id"`
	Comment   string  `json:"comment"`
	CreatedAt apiTime `json:"createdAt"`
	Geeker    struct {
		apiUser
		Profile struct {
			DisplayName string   `json:"display_name"`
			Category    apiNamed `json:"category"`
			Subcategory apiNamed `json:"subcategory"`
		} `json:"Profile"`
	} `json:"geeker"`
}

type apiLogin struct {
	ID        apiID   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	LastLogin apiTime `json:"lastLogin"`
	IsSeeker  bool    `json:"is_seeker"`
	IsGeeker  bool    `json:"is_geeker"`
}
