// Package mocks provides hand-written testify mocks for the domain
// interfaces used across the usecase and delivery tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByLoginOrMail(ctx context.Context, login, mail string) (*entity.User, error) {
	args := m.Called(ctx, login, mail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// ProfileRepository is a mock of repository.ProfileRepository.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *ProfileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

// RepositoryFactory is a mock of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock
}

func (m *RepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *RepositoryFactory) ProfileRepo() repository.ProfileRepository {
	args := m.Called()

	return args.Get(0).(repository.ProfileRepository)
}

// TransactionManager is a mock of repository.TransactionManager. Execute
// runs the given function against the configured factory so tests exercise
// the real transactional closure.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}
