// Package entity contains the core business objects of the project.
package entity

// ClaimEmail is the only identity claim the rest of the system reads.
const ClaimEmail = "email"

// Identity is the authenticated subject carried inside a session credential.
// Claims is kept as received so that clients can round-trip extra fields.
type Identity struct {
	Email  string         `json:"email"`
	Claims map[string]any `json:"-"`
}

// NewIdentity builds an Identity from a raw claims record.
// A missing or non-string email claim yields an empty Email. The claim is
// kept verbatim.
func NewIdentity(claims map[string]any) *Identity {
	email, _ := claims[ClaimEmail].(string)

	return &Identity{
		Email:  email,
		Claims: claims,
	}
}

// Owns reports whether owner names this identity. Comparison is exact.
func (i *Identity) Owns(owner string) bool {
	return i != nil && i.Email != "" && i.Email == owner
}
