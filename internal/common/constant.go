// Package common holds constants and sentinel errors shared by the admin
// console packages. Callers match the errors with errors.Is.
package common

const (
	// TokenKey is the metadata key the bearer token is stored under.
	TokenKey = "userToken"
	// SaltKey holds the random salt used to derive the sealing key.
	SaltKey = "salt"

	// DateLayout is the wire format of date filter parameters.
	DateLayout = "2006-01-02"

	RequestIDHeader = "X-Request-Id"
)
