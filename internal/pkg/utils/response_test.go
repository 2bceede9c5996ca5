package utils

import (
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildBackendResponse(t *testing.T) {
	tests := []struct {
		name        string
		backend     *responses.BackendResponse
		contentType string
		body        string
	}{
		{
			name:        "JSON Passed Through Verbatim",
			backend:     &responses.BackendResponse{StatusCode: 201, Body: []byte(`{"id":"abc","ok":true}`)},
			contentType: constvars.MIMEApplicationJSON,
			body:        `{"id":"abc","ok":true}`,
		},
		{
			name:        "Non JSON Passed Through As Text",
			backend:     &responses.BackendResponse{StatusCode: 500, Body: []byte("Internal Server Error")},
			contentType: constvars.MIMETextPlainCharsetUTF8,
			body:        "Internal Server Error",
		},
		{
			name:        "Empty Body Keeps Status",
			backend:     &responses.BackendResponse{StatusCode: 204},
			contentType: "",
			body:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			BuildBackendResponse(rr, tt.backend)

			assert.Equal(t, tt.backend.StatusCode, rr.Code)
			assert.Equal(t, tt.contentType, rr.Header().Get(constvars.HeaderContentType))
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestBuildBackendRedirect(t *testing.T) {
	t.Run("Success Flash On 201", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, constvars.PagePatientCreate, nil)

		BuildBackendRedirect(rr, req, constvars.PagePatientCreate, constvars.CreatePatientSuccessMessage,
			&responses.BackendResponse{StatusCode: 201, Body: []byte(`{}`)})

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		location, err := url.Parse(rr.Header().Get(constvars.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, constvars.PagePatientCreate, location.Path)
		assert.Equal(t, constvars.CreatePatientSuccessMessage, location.Query().Get("success"))
	})

	t.Run("Error Flash Carries Status And Text", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, constvars.PagePatientDelete, nil)

		BuildBackendRedirect(rr, req, constvars.PagePatientDelete, constvars.DeletePatientSuccessMessage,
			&responses.BackendResponse{StatusCode: 404, Body: []byte("not found")})

		location, err := url.Parse(rr.Header().Get(constvars.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, "Backend returned 404: not found", location.Query().Get("error"))
		assert.Empty(t, location.Query().Get("success"))
	})
}

func TestBuildErrorRedirect(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, constvars.PagePatientUpdate, nil)

	BuildErrorRedirect(zap.NewNop(), rr, req, constvars.PagePatientUpdate,
		exceptions.ErrBackendUnreachable(errors.New("connection refused")))

	location, err := url.Parse(rr.Header().Get(constvars.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "Client API not reachable: connection refused", location.Query().Get("error"))
}

func TestBuildErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrBackendUnreachable(errors.New("dial tcp: connection refused")))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `"Backend not reachable"`, jsonField(t, rr.Body.Bytes(), "error"))
	assert.JSONEq(t, `"dial tcp: connection refused"`, jsonField(t, rr.Body.Bytes(), "details"))
}
