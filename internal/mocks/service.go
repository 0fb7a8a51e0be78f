package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// TokenService is a mock of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Generate(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Validate(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}
