package models

import "time"

var (
	FirestoreSessionsCollection = "sessions"
)

// Session is a bookkeeping record for an active login, stored in its own
// collection rather than on the user document so revoking one or all
// sessions is a plain delete instead of an array rewrite.
type Session struct {
	ID        string    `json:"id" mapstructure:"id"`
	UserID    string    `json:"userID" mapstructure:"userID"`
	UserAgent string    `json:"userAgent,omitempty" mapstructure:"userAgent"`
	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" mapstructure:"expiresAt"`
}
