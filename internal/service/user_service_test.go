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

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, firstName, lastName string) (*models.User, error) {
	args := m.Called(ctx, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	expected := &models.User{UserID: 1, FirstName: "Jane", LastName: "Doe"}
	mockRepo.On("Create", mock.Anything, "Jane", "Doe").Return(expected, nil)

	user, err := svc.CreateUser(context.Background(), "Jane", "Doe")

	assert.NoError(t, err)
	assert.Equal(t, expected, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	expected := []*models.User{
		{UserID: 1, FirstName: "Jane", LastName: "Doe"},
		{UserID: 2, FirstName: "John", LastName: "Smith"},
	}
	mockRepo.On("FindAll", mock.Anything).Return(expected, nil)

	users, err := svc.GetAllUsers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAllUsers_Empty(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	// An empty table is a valid result, not a failure
	mockRepo.On("FindAll", mock.Anything).Return([]*models.User{}, nil)

	users, err := svc.GetAllUsers(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAllUsers_StoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	// A failing store is classified as unavailable
	mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	users, err := svc.GetAllUsers(context.Background())

	assert.Error(t, err)
	assert.Nil(t, users)
	assert.True(t, utils.IsUnavailableError(err))
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	expected := &models.User{UserID: 42, FirstName: "Jane", LastName: "Doe"}
	mockRepo.On("FindByID", mock.Anything, int64(42)).Return(expected, nil)

	user, err := svc.GetUserByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, expected, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, utils.NewNotFoundError("User", 99))

	user, err := svc.GetUserByID(context.Background(), 99)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, utils.IsNotFoundError(err))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	user := &models.User{UserID: 42, FirstName: "Jane", LastName: "Smith"}
	mockRepo.On("Update", mock.Anything, user).Return(int64(1), nil)

	affected, err := svc.UpdateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NoMatch(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := service.NewUserService(mockRepo)

	mockRepo.On("Delete", mock.Anything, int64(99)).Return(int64(0), nil)

	affected, err := svc.DeleteUser(context.Background(), 99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	mockRepo.AssertExpectations(t)
}
