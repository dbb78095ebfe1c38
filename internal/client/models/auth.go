// Package models defines the data the admin console passes around: the
// explicit auth context, filter state, form drafts and the normalized
// records of every screen.
package models

// AuthContext carries the bearer credential into every remote operation.
type AuthContext struct {
	Token string
}

// Empty reports whether no credential is present.
func (a AuthContext) Empty() bool { return a.Token == "" }
