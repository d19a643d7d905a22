package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/registration-service/internal/models"
)

// Мок хранилища пользователей
type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if users, ok := args.Get(0).([]*models.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// Мок кеша
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestList_CacheMiss(t *testing.T) {
	repo := new(UserRepositoryMock)
	cache := new(CacheMock)
	service := NewUsersService(repo, cache, newNoopLogger())

	expected := []*models.User{{ID: "1700000000000", Email: "john@example.com"}}

	cache.On("Get", "users:list:20:0", mock.Anything).Return(false, nil).Once()
	repo.On("ListUsers", mock.Anything, 20, 0).Return(expected, nil).Once()
	cache.On("Set", "users:list:20:0", expected, time.Minute).Return(nil).Once()

	users, err := service.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, users)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestList_CacheHitSkipsRepository(t *testing.T) {
	repo := new(UserRepositoryMock)
	cache := new(CacheMock)
	service := NewUsersService(repo, cache, newNoopLogger())

	cache.On("Get", "users:list:20:0", mock.Anything).Return(true, nil).Once()

	_, err := service.List(context.Background(), 20, 0)
	require.NoError(t, err)

	repo.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestList_CacheErrorsAreNotFatal(t *testing.T) {
	repo := new(UserRepositoryMock)
	cache := new(CacheMock)
	service := NewUsersService(repo, cache, newNoopLogger())

	expected := []*models.User{{ID: "1700000000000"}}

	cache.On("Get", "users:list:20:0", mock.Anything).
		Return(false, errors.New("redis down")).Once()
	repo.On("ListUsers", mock.Anything, 20, 0).Return(expected, nil).Once()
	cache.On("Set", "users:list:20:0", expected, time.Minute).
		Return(errors.New("redis down")).Once()

	users, err := service.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestList_RepositoryError(t *testing.T) {
	repo := new(UserRepositoryMock)
	cache := new(CacheMock)
	service := NewUsersService(repo, cache, newNoopLogger())

	cache.On("Get", "users:list:20:0", mock.Anything).Return(false, nil).Once()
	repo.On("ListUsers", mock.Anything, 20, 0).
		Return(nil, errors.New("connection refused")).Once()

	users, err := service.List(context.Background(), 20, 0)
	require.Error(t, err)
	assert.Nil(t, users)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestList_CacheKeyIncludesPagination(t *testing.T) {
	repo := new(UserRepositoryMock)
	cache := new(CacheMock)
	service := NewUsersService(repo, cache, newNoopLogger())

	cache.On("Get", "users:list:5:10", mock.Anything).Return(false, nil).Once()
	repo.On("ListUsers", mock.Anything, 5, 10).Return([]*models.User{}, nil).Once()
	cache.On("Set", "users:list:5:10", mock.Anything, time.Minute).Return(nil).Once()

	_, err := service.List(context.Background(), 5, 10)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}
