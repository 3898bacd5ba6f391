// Package domain defines the authentication and authorization domain models.
// Every request is assigned an access class by a fixed route table; sessions bind
// bearer tokens to users and are the source of truth for authentication.
package domain

// AccessClass is the access requirement of a route.
type AccessClass int

const (
	// AccessAuthenticated requires a live session. It is the default for any route
	// not listed in the route table.
	AccessAuthenticated AccessClass = iota

	// AccessPublic is forwarded without any token processing.
	AccessPublic

	// AccessLoggedOutOnly is only reachable without a live session (login).
	AccessLoggedOutOnly

	// AccessAdminOnly requires a live session whose user has the admin flag set.
	AccessAdminOnly
)

// String returns the label used in logs and metrics.
func (a AccessClass) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessLoggedOutOnly:
		return "logged_out_only"
	case AccessAdminOnly:
		return "admin_only"
	default:
		return "authenticated"
	}
}
