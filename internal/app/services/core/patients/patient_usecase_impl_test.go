package patients

import (
	"context"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
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

func floatPtr(v float64) *float64 {
	return &v
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	credential := models.Credential{Token: "tok123"}

	t.Run("Synthesizes Id And Timestamp", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewPatientUsecase(backend, zap.NewNop())

		var sent *requests.BackendCreatePatient
		backend.On("Forward", mock.Anything, "POST", "/patients", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(3).(*requests.BackendCreatePatient)
				header := args.Get(4).(http.Header)
				assert.Equal(t, "Bearer tok123", header.Get("Authorization"))
			}).
			Return(&responses.BackendResponse{StatusCode: 201, Body: []byte(`{"ok":true}`)}, nil)

		resp, err := uc.CreatePatient(context.Background(), credential, &requests.CreatePatient{
			PatientID: "P-1",
			Name:      "Jane",
			BirthDate: "1990-01-01",
			Height:    floatPtr(170),
		})

		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		require.NotNil(t, sent)
		_, err = uuid.Parse(sent.ID)
		assert.NoError(t, err, "id should be a uuid")
		_, err = time.Parse(time.RFC3339, sent.CreatedAt)
		assert.NoError(t, err, "created_at should be RFC3339")
		assert.Equal(t, "P-1", sent.PatientID)
		assert.Equal(t, 170.0, *sent.Height)
		backend.AssertExpectations(t)
	})

	t.Run("Each Creation Gets A Fresh Id", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewPatientUsecase(backend, zap.NewNop())

		ids := map[string]bool{}
		backend.On("Forward", mock.Anything, "POST", "/patients", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ids[args.Get(3).(*requests.BackendCreatePatient).ID] = true
			}).
			Return(&responses.BackendResponse{StatusCode: 201}, nil)

		for i := 0; i < 3; i++ {
			_, err := uc.CreatePatient(context.Background(), credential, &requests.CreatePatient{PatientID: "P-1", Name: "Jane", BirthDate: "1990-01-01"})
			require.NoError(t, err)
		}

		assert.Len(t, ids, 3)
	})

	t.Run("Missing Required Field Never Reaches Backend", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewPatientUsecase(backend, zap.NewNop())

		resp, err := uc.CreatePatient(context.Background(), credential, &requests.CreatePatient{Name: "Jane", BirthDate: "1990-01-01"})

		assert.Nil(t, resp)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "patient_id is required", customErr.ClientMessage)
		backend.AssertNumberOfCalls(t, "Forward", 0)
	})
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	t.Run("Forwards Only Data To Escaped Path", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewPatientUsecase(backend, zap.NewNop())
		data := map[string]json.RawMessage{"name": json.RawMessage(`"Janet"`)}

		backend.On("Forward", mock.Anything, "PUT", "/patients/P%2F1", data, mock.Anything).
			Return(&responses.BackendResponse{StatusCode: 200, Body: []byte(`{}`)}, nil)

		resp, err := uc.UpdatePatient(context.Background(), models.Credential{Token: "t"}, &requests.UpdatePatient{PatientID: "P/1", Data: data})

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		backend.AssertExpectations(t)
	})

	t.Run("Empty Data Rejected", func(t *testing.T) {
		backend := new(MockEHRBackendClient)
		uc := NewPatientUsecase(backend, zap.NewNop())

		_, err := uc.UpdatePatient(context.Background(), models.Credential{}, &requests.UpdatePatient{PatientID: "P-1", Data: map[string]json.RawMessage{}})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		backend.AssertNumberOfCalls(t, "Forward", 0)
	})
}

func TestPatientUsecase_FindAndDelete(t *testing.T) {
	backend := new(MockEHRBackendClient)
	uc := NewPatientUsecase(backend, zap.NewNop())

	backend.On("Forward", mock.Anything, "GET", "/patients/P-1", nil, mock.Anything).
		Return(&responses.BackendResponse{StatusCode: 404, Body: []byte("not found")}, nil)
	backend.On("Forward", mock.Anything, "DELETE", "/patients/P-1", nil, mock.Anything).
		Return(nil, exceptions.ErrBackendUnreachable(errors.New("connection refused")))

	resp, err := uc.FindPatientByID(context.Background(), models.Credential{}, &requests.PatientIdentifier{PatientID: " P-1 "})
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	_, err = uc.DeletePatient(context.Background(), models.Credential{}, &requests.PatientIdentifier{PatientID: "P-1"})
	assert.True(t, exceptions.IsBackendUnreachable(err))

	_, err = uc.DeletePatient(context.Background(), models.Credential{}, &requests.PatientIdentifier{})
	assert.Error(t, err)
	backend.AssertNumberOfCalls(t, "Forward", 2)
}
