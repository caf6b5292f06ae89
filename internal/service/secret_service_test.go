package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/service"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// MockSecretRepository is a mock implementation of repository.SecretRepository
type MockSecretRepository struct {
	mock.Mock
}

func (m *MockSecretRepository) Create(ctx context.Context, userID int64, title, contents string) (*models.Secret, error) {
	args := m.Called(ctx, userID, title, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Secret), args.Error(1)
}

func (m *MockSecretRepository) FindAll(ctx context.Context) ([]*models.Secret, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Secret), args.Error(1)
}

func (m *MockSecretRepository) FindByUser(ctx context.Context, userID int64) ([]*models.Secret, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Secret), args.Error(1)
}

func (m *MockSecretRepository) FindByID(ctx context.Context, secretID int64) (*models.Secret, error) {
	args := m.Called(ctx, secretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Secret), args.Error(1)
}

func (m *MockSecretRepository) Update(ctx context.Context, secret *models.Secret) (int64, error) {
	args := m.Called(ctx, secret)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecretRepository) Delete(ctx context.Context, secretID int64) (int64, error) {
	args := m.Called(ctx, secretID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSecretService_CreateSecret(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	expected := &models.Secret{SecretID: 7, UserID: 1, Title: "my title", Contents: "my contents"}
	mockRepo.On("Create", mock.Anything, int64(1), "my title", "my contents").Return(expected, nil)

	secret, err := svc.CreateSecret(context.Background(), 1, "my title", "my contents")

	assert.NoError(t, err)
	assert.Equal(t, expected, secret)
	mockRepo.AssertExpectations(t)
}

func TestSecretService_CreateSecret_NotCreated(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	mockRepo.On("Create", mock.Anything, int64(1), "my title", "my contents").
		Return(nil, utils.NewNotCreatedError("Secret"))

	secret, err := svc.CreateSecret(context.Background(), 1, "my title", "my contents")

	assert.Error(t, err)
	assert.Nil(t, secret)
	assert.True(t, utils.IsUnavailableError(err))
	mockRepo.AssertExpectations(t)
}

func TestSecretService_GetAllSecrets_StoreFailure(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	secrets, err := svc.GetAllSecrets(context.Background())

	assert.Error(t, err)
	assert.Nil(t, secrets)
	assert.True(t, utils.IsUnavailableError(err))
	mockRepo.AssertExpectations(t)
}

func TestSecretService_GetSecretsByUser(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	expected := []*models.Secret{
		{SecretID: 1, UserID: 42, Title: "first", Contents: "aaa"},
		{SecretID: 3, UserID: 42, Title: "third", Contents: "ccc"},
	}
	mockRepo.On("FindByUser", mock.Anything, int64(42)).Return(expected, nil)

	secrets, err := svc.GetSecretsByUser(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, expected, secrets)
	mockRepo.AssertExpectations(t)
}

func TestSecretService_GetSecretsByUser_Empty(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	mockRepo.On("FindByUser", mock.Anything, int64(42)).Return([]*models.Secret{}, nil)

	secrets, err := svc.GetSecretsByUser(context.Background(), 42)

	assert.NoError(t, err)
	assert.Empty(t, secrets)
	mockRepo.AssertExpectations(t)
}

func TestSecretService_GetSecretByID_NotFound(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, utils.NewNotFoundError("Secret", 99))

	secret, err := svc.GetSecretByID(context.Background(), 99)

	assert.Error(t, err)
	assert.Nil(t, secret)
	assert.True(t, utils.IsNotFoundError(err))
	mockRepo.AssertExpectations(t)
}

func TestSecretService_UpdateSecret(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	secret := &models.Secret{SecretID: 7, UserID: 1, Title: "new", Contents: "new"}
	mockRepo.On("Update", mock.Anything, secret).Return(int64(1), nil)

	affected, err := svc.UpdateSecret(context.Background(), secret)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	mockRepo.AssertExpectations(t)
}

func TestSecretService_DeleteSecret(t *testing.T) {
	mockRepo := new(MockSecretRepository)
	svc := service.NewSecretService(mockRepo)

	mockRepo.On("Delete", mock.Anything, int64(7)).Return(int64(1), nil)

	affected, err := svc.DeleteSecret(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	mockRepo.AssertExpectations(t)
}
