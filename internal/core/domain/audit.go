package domain

import "time"

// AuthEventKind classifies an entry in the sign-in activity trail.
type AuthEventKind string

const (
	EventLogin        AuthEventKind = "login"
	EventLoginFailed  AuthEventKind = "login_failed"
	EventLogout       AuthEventKind = "logout"
	EventForcedLogout AuthEventKind = "forced_logout"
)

// AuthEvent records one authentication lifecycle event for the activity
// view. Username is what the caller typed, not a verified identity.
type AuthEvent struct {
	ID        string        `json:"id"`
	Kind      AuthEventKind `json:"kind"`
	SessionID string        `json:"session_id"`
	Username  string        `json:"username,omitempty"`
	IsAdmin   bool          `json:"is_admin,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
