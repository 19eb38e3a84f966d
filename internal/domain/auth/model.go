// Package auth provides operator login and user management.
//
// Credentials are stored and compared in plaintext, exactly as the system
// this replaces did. That is a documented security gap carried forward as a
// limitation, not a feature: do not copy this scheme anywhere else.
package auth

import (
	"time"
)

// DefaultAdminUsername is the seeded operator account. It cannot be deleted.
const DefaultAdminUsername = "admin"

// User is one operator account.
type User struct {
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is a successful login result.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Username    string    `json:"username"`
}
