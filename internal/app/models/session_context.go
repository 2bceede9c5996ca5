package models

import (
	"context"
	"ehr-client/internal/pkg/constvars"
)

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

// SessionFromContext returns nil for anonymous requests.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*Session)
	return session
}

// CredentialFromContext is the credential of the current caller, empty when
// there is none.
func CredentialFromContext(ctx context.Context) Credential {
	session := SessionFromContext(ctx)
	if session == nil {
		return Credential{}
	}
	return session.Credential
}
