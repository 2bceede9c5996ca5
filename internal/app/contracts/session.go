package contracts

import (
	"context"
	"ehr-client/internal/app/models"
	"net/http"
)

// SessionService keeps the backend credential of each caller between
// requests. Set replaces any session the caller already had. Get never
// fails: anything short of a valid, live session resolves to nil.
type SessionService interface {
	Set(ctx context.Context, w http.ResponseWriter, r *http.Request, username string, credential models.Credential) (*models.Session, error)
	Get(ctx context.Context, r *http.Request) *models.Session
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
