package domain

import "time"

// Portal identifies one of the three user populations, each with its own
// identity collection, credential salt, and session cookie.
type Portal string

const (
	PortalGuest Portal = "guest"
	PortalStaff Portal = "staff"
	PortalAdmin Portal = "admin"
)

// Identity models an account in one of the portal collections. Guests log in
// with an email address; staff and admin accounts use a username. The
// credential digest and session token are never serialized to clients.
type Identity struct {
	ID               string     `json:"id"`
	Email            string     `json:"email,omitempty"`
	Username         string     `json:"username,omitempty"`
	CredentialDigest string     `json:"-"`
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone,omitempty"`
	Department       Department `json:"department,omitempty"`
	Role             Role       `json:"role,omitempty"`
	IsActive         bool       `json:"is_active"`
	SessionToken     string     `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NaturalKey returns the identity's login key: email for guests, username
// for staff and admin accounts.
func (i *Identity) NaturalKey() string {
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}

// Sanitized returns a copy safe to hand to callers: the credential digest
// and the live session token are cleared.
func (i *Identity) Sanitized() *Identity {
	clone := *i
	clone.CredentialDigest = ""
	clone.SessionToken = ""
	return &clone
}
