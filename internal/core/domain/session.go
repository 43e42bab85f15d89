package domain

// Identity is the set of claims the console reads out of an access token.
// The token is decoded without signature verification (the console does not
// hold the upstream signing key), so these values are display hints only;
// real authorization happens upstream on every proxied call.
type Identity struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// FullName joins first and last name for display.
func (i Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// CredentialPair holds the two upstream-issued tokens for one console
// session. The access token is a short-lived bearer JWT; the refresh token
// is opaque and only ever sent to the refresh endpoint.
type CredentialPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is the authenticated state attached to one console session ID.
// Identity is nil for anonymous sessions.
type Session struct {
	ID       string
	Identity *Identity
	IsAdmin  bool
}

// Authenticated reports whether the session carries a decoded identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != nil
}
