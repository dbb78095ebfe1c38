package models

import "time"

// Category is a main category or, when ParentID is set, a sub-category.
type Category struct {
	ID        string
	Name      string
	ImageURL  string
	CreatedAt time.Time
	// ParentID is a weak reference to the main category of a sub-category.
	ParentID string
}

// Profile is a registered user as returned by profile search.
type Profile struct {
	ID           string
	FirstName    string
	LastName     string
	DisplayName  string
	Email        string
	Phone        string
	Address      string
	City         string
	ReferralCode string
	CreatedAt    time.Time
}

func (p Profile) FullName() string { return joinName(p.FirstName, p.LastName) }

// Connection is a pending request raised by a geek.
type Connection struct {
	ID          string
	GeekerName  string
	Email       string
	Category    string
	Subcategory string
	Comment     string
	CreatedAt   time.Time
}

type UserType string

const (
	UserTypeSeeker  UserType = "Seeker"
	UserTypeGeeker  UserType = "Geeker"
	UserTypeUnknown UserType = "N/A"
)

// LoginEvent is one row of the login analytics report.
type LoginEvent struct {
	ID        string
	UserType  UserType
	FirstName string
	LastName  string
	Phone     string
	Email     string
	LastLogin time.Time
}

func (l LoginEvent) FullName() string { return joinName(l.FirstName, l.LastName) }

// Banner is an internal banner image. ID is the file name, the last
// segment of URL.
type Banner struct {
	ID  string
	URL string
}

// Stats is the dashboard summary.
type Stats struct {
	GeekerCount   int
	SeekerCount   int
	AcceptedCount int
	PendingCount  int
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
