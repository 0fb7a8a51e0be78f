package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
	"passport/internal/usecase"
)

// AccountUsecase is a mock of usecase.AccountUsecase.
type AccountUsecase struct {
	mock.Mock
}

func (m *AccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *AccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *AccountUsecase) GetUser(ctx context.Context, id int64) (*usecase.PublicUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PublicUser), args.Error(1)
}

// ProfileUsecase is a mock of usecase.ProfileUsecase.
type ProfileUsecase struct {
	mock.Mock
}

func (m *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) error {
	args := m.Called(ctx, userID, input)

	return args.Error(0)
}
