// internal/domain/auth/entity.go
package auth

import "time"

// RoleAdmin is the only role in the system; the console has a single
// fixed admin account.
const RoleAdmin = "admin"

// User is the authenticated admin identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the durable login state. It is written to the session
// store on every change and re-read at startup, so a login survives a
// restart. Authenticated implies User is non-nil.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	User          *User     `json:"user,omitempty"`
	LoggedInAt    time.Time `json:"logged_in_at,omitempty"`
}
