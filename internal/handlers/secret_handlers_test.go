package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tinhat/dirtysecrets/internal/handlers"
	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// MockSecretService is a mock implementation of handlers.SecretServiceInterface
type MockSecretService struct {
	mock.Mock
}

func (m *MockSecretService) CreateSecret(ctx context.Context, userID int64, title, contents string) (*models.Secret, error) {
	args := m.Called(ctx, userID, title, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Secret), args.Error(1)
}

func (m *MockSecretService) GetAllSecrets(ctx context.Context) ([]*models.Secret, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Secret), args.Error(1)
}

func (m *MockSecretService) GetSecretsByUser(ctx context.Context, userID int64) ([]*models.Secret, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Secret), args.Error(1)
}

func (m *MockSecretService) GetSecretByID(ctx context.Context, secretID int64) (*models.Secret, error) {
	args := m.Called(ctx, secretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Secret), args.Error(1)
}

func (m *MockSecretService) UpdateSecret(ctx context.Context, secret *models.Secret) (int64, error) {
	args := m.Called(ctx, secret)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecretService) DeleteSecret(ctx context.Context, secretID int64) (int64, error) {
	args := m.Called(ctx, secretID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSecretHandler_CreateSecret(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	expected := &models.Secret{SecretID: 7, UserID: 1, Title: "my title", Contents: "my contents"}
	mockService.On("CreateSecret", mock.Anything, int64(1), "my title", "my contents").
		Return(expected, nil)

	body := bytes.NewBufferString(`{"user_id": "1", "title": "my title", "contents": "my contents"}`)
	req := httptest.NewRequest(http.MethodPost, "/secret/create", body)
	rec := httptest.NewRecorder()

	handler.CreateSecret(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var secret models.Secret
	require.NoError(t, json.Unmarshal(env.Data, &secret))
	assert.Equal(t, int64(7), secret.SecretID)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_CreateSecret_MissingContents(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	body := bytes.NewBufferString(`{"user_id": "1", "title": "my title"}`)
	req := httptest.NewRequest(http.MethodPost, "/secret/create", body)
	rec := httptest.NewRecorder()

	handler.CreateSecret(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "contents", env.Error.Details[0].Field)
	mockService.AssertNotCalled(t, "CreateSecret")
}

func TestSecretHandler_CreateSecret_UnknownOwner(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	// The store's foreign key rejects secrets for nonexistent users
	fkErr := &pq.Error{Code: "23503", Constraint: "secrets_user_id_fkey"}
	mockService.On("CreateSecret", mock.Anything, int64(999), "my title", "my contents").
		Return(nil, fkErr)

	body := bytes.NewBufferString(`{"user_id": "999", "title": "my title", "contents": "my contents"}`)
	req := httptest.NewRequest(http.MethodPost, "/secret/create", body)
	rec := httptest.NewRecorder()

	handler.CreateSecret(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_CreateSecret_NotCreated(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("CreateSecret", mock.Anything, int64(1), "my title", "my contents").
		Return(nil, utils.NewNotCreatedError("Secret"))

	body := bytes.NewBufferString(`{"user_id": "1", "title": "my title", "contents": "my contents"}`)
	req := httptest.NewRequest(http.MethodPost, "/secret/create", body)
	rec := httptest.NewRecorder()

	handler.CreateSecret(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetAllSecrets(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	secrets := []*models.Secret{
		{SecretID: 1, UserID: 1, Title: "first", Contents: "aaa"},
		{SecretID: 2, UserID: 2, Title: "second", Contents: "bbb"},
	}
	mockService.On("GetAllSecrets", mock.Anything).Return(secrets, nil)

	req := httptest.NewRequest(http.MethodGet, "/secret/findall", nil)
	rec := httptest.NewRecorder()

	handler.GetAllSecrets(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetAllSecrets_Empty(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("GetAllSecrets", mock.Anything).Return([]*models.Secret{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/secret/findall", nil)
	rec := httptest.NewRecorder()

	handler.GetAllSecrets(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetSecretsByUser(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	secrets := []*models.Secret{
		{SecretID: 1, UserID: 42, Title: "first", Contents: "aaa"},
	}
	mockService.On("GetSecretsByUser", mock.Anything, int64(42)).Return(secrets, nil)

	req := httptest.NewRequest(http.MethodGet, "/secret/findbyuser?user_id=42", nil)
	rec := httptest.NewRecorder()

	handler.GetSecretsByUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetSecretsByUser_Empty(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("GetSecretsByUser", mock.Anything, int64(42)).Return([]*models.Secret{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/secret/findbyuser?user_id=42", nil)
	rec := httptest.NewRecorder()

	handler.GetSecretsByUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetSecretsByUser_InvalidID(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/secret/findbyuser?user_id=abc", nil)
	rec := httptest.NewRecorder()

	handler.GetSecretsByUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "GetSecretsByUser")
}

func TestSecretHandler_GetSecret(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	expected := &models.Secret{SecretID: 7, UserID: 1, Title: "my title", Contents: "my contents"}
	mockService.On("GetSecretByID", mock.Anything, int64(7)).Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/secret/findone?secret_id=7", nil)
	rec := httptest.NewRecorder()

	handler.GetSecret(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var secret models.Secret
	require.NoError(t, json.Unmarshal(env.Data, &secret))
	assert.Equal(t, "my title", secret.Title)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_GetSecret_NotFound(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("GetSecretByID", mock.Anything, int64(99)).
		Return(nil, utils.NewNotFoundError("Secret", 99))

	req := httptest.NewRequest(http.MethodGet, "/secret/findone?secret_id=99", nil)
	rec := httptest.NewRecorder()

	handler.GetSecret(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_UpdateSecret(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	expected := &models.Secret{SecretID: 7, UserID: 1, Title: "new title", Contents: "new contents"}
	mockService.On("UpdateSecret", mock.Anything, expected).Return(int64(1), nil)

	body := bytes.NewBufferString(`{"secret_id": "7", "user_id": "1", "title": "new title", "contents": "new contents"}`)
	req := httptest.NewRequest(http.MethodPut, "/secret/update", body)
	rec := httptest.NewRecorder()

	handler.UpdateSecret(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_UpdateSecret_WrongOwner(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	// Secret exists but belongs to another user: nothing matches
	mockService.On("UpdateSecret", mock.Anything, mock.Anything).Return(int64(0), nil)

	body := bytes.NewBufferString(`{"secret_id": "7", "user_id": "2", "title": "new title", "contents": "new contents"}`)
	req := httptest.NewRequest(http.MethodPut, "/secret/update", body)
	rec := httptest.NewRecorder()

	handler.UpdateSecret(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_UpdateSecret_MissingFields(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	body := bytes.NewBufferString(`{"secret_id": "7"}`)
	req := httptest.NewRequest(http.MethodPut, "/secret/update", body)
	rec := httptest.NewRecorder()

	handler.UpdateSecret(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)

	// Failures follow rule declaration order
	var fields []string
	for _, d := range env.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"user_id", "title", "contents"}, fields)
	mockService.AssertNotCalled(t, "UpdateSecret")
}

func TestSecretHandler_DeleteSecret(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("DeleteSecret", mock.Anything, int64(7)).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodDelete, "/secret/delete?secret_id=7", nil)
	rec := httptest.NewRecorder()

	handler.DeleteSecret(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestSecretHandler_DeleteSecret_NoMatch(t *testing.T) {
	mockService := new(MockSecretService)
	handler := handlers.NewSecretHandler(mockService)

	mockService.On("DeleteSecret", mock.Anything, int64(99)).Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodDelete, "/secret/delete?secret_id=99", nil)
	rec := httptest.NewRecorder()

	handler.DeleteSecret(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertExpectations(t)
}
