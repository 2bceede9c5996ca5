package contracts

import (
	"context"
	"ehr-client/internal/pkg/dto/responses"
	"net/http"
)

type EHRBackendClient interface {
	Forward(ctx context.Context, method, path string, body interface{}, header http.Header) (*responses.BackendResponse, error)
}
