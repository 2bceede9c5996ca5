package models

import (
	"ehr-client/internal/pkg/constvars"
	"net/http"
	"time"
)

// Credential is the opaque bearer token the EHR backend issued at login.
// It is never inspected, only replayed.
type Credential struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}

// AuthHeader returns the header set to attach to a backend call. It is empty
// when there is no token.
func (c Credential) AuthHeader() http.Header {
	header := http.Header{}
	if c.Token == "" {
		return header
	}
	header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.Token)
	return header
}

func (c Credential) IsEmpty() bool {
	return c.Token == ""
}

type Session struct {
	SessionID  string     `json:"session_id"`
	Username   string     `json:"username"`
	Credential Credential `json:"credential"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

// IsAuthenticated is false for a nil session, an expired one, or one that
// lost its credential.
func (s *Session) IsAuthenticated() bool {
	if s == nil || s.Credential.IsEmpty() {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}
