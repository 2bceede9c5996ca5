package auth

import (
	"context"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEHRBackendClient struct {
	mock.Mock
}

func (m *MockEHRBackendClient) Forward(ctx context.Context, method, path string, body interface{}, header http.Header) (*responses.BackendResponse, error) {
	args := m.Called(ctx, method, path, body, header)
	resp, _ := args.Get(0).(*responses.BackendResponse)
	return resp, args.Error(1)
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Run("Token Stored From Backend", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewAuthUsecase(backend, zap.NewNop())
		backend.On("Forward", mock.Anything, "POST", "/auth/login", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				login := args.Get(3).(*requests.LoginUser)
				assert.Equal(t, "alice", login.Username)
				assert.Empty(t, args.Get(4).(http.Header).Get("Authorization"))
			}).
			Return(&responses.BackendResponse{StatusCode: 200, Body: []byte(`{"access_token":"tok123","role":"doctor"}`)}, nil)

		credential, err := uc.Login(context.Background(), &requests.LoginUser{Username: " alice ", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "tok123", credential.Token)
		assert.Equal(t, "doctor", credential.Role)
	})

	t.Run("Empty Fields Rejected Locally", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewAuthUsecase(backend, zap.NewNop())

		_, err := uc.Login(context.Background(), &requests.LoginUser{Username: "alice"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		backend.AssertNumberOfCalls(t, "Forward", 0)
	})

	rejections := []struct {
		name string
		resp *responses.BackendResponse
	}{
		{"Backend 401 With Reason", &responses.BackendResponse{StatusCode: 401, Body: []byte(`{"detail":"user locked"}`)}},
		{"Backend 200 Without Token", &responses.BackendResponse{StatusCode: 200, Body: []byte(`{"role":"doctor"}`)}},
		{"Backend 200 With Non JSON", &responses.BackendResponse{StatusCode: 200, Body: []byte("ok")}},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockEHRBackendClient)
			uc := NewAuthUsecase(backend, zap.NewNop())
			backend.On("Forward", mock.Anything, "POST", "/auth/login", mock.Anything, mock.Anything).Return(tt.resp, nil)

			credential, err := uc.Login(context.Background(), &requests.LoginUser{Username: "alice", Password: "pw"})

			assert.Nil(t, credential)
			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
			assert.Equal(t, "Invalid username or password", customErr.ClientMessage)
		})
	}

	t.Run("Backend Unreachable", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewAuthUsecase(backend, zap.NewNop())
		backend.On("Forward", mock.Anything, "POST", "/auth/login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrBackendUnreachable(errors.New("connection refused")))

		_, err := uc.Login(context.Background(), &requests.LoginUser{Username: "alice", Password: "pw"})

		assert.True(t, exceptions.IsBackendUnreachable(err))
	})
}
