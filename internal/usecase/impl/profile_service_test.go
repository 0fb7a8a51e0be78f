package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/mocks"
	"passport/internal/usecase"
	"passport/internal/validation"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mocks.TransactionManager
	profileRepo *mocks.ProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	profileRepo := &mocks.ProfileRepository{}
	factory := &mocks.RepositoryFactory{}
	factory.On("ProfileRepo").Return(profileRepo).Maybe()

	txManager := &mocks.TransactionManager{Factory: factory}

	validator, err := validation.New(true)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Validator:   validator,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

func strp(s string) *string { return &s }

func TestProfileService_GetProfile_Success(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	stored := &entity.Profile{UserID: 42, City: strp("Berlin")}
	f.profileRepo.On("FindByUserID", ctx, int64(42)).Return(stored, nil)

	profile, err := f.service.GetProfile(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.profileRepo.On("FindByUserID", ctx, int64(42)).Return(nil, repository.ErrProfileNotFound)

	profile, err := f.service.GetProfile(ctx, 42)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_LazyCreate(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.profileRepo.On("FindByUserID", ctx, int64(42)).Return(nil, repository.ErrProfileNotFound)
	f.profileRepo.On("Create", ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	input := &usecase.UpdateProfileInput{
		City:        strp("Berlin"),
		DateOfBirth: strp("1990-04-17"),
	}

	err := f.service.UpdateProfile(ctx, 42, input)

	require.NoError(t, err)
	f.profileRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		wantDOB := time.Date(1990, 4, 17, 0, 0, 0, 0, time.UTC)

		return p.UserID == 42 &&
			p.City != nil && *p.City == "Berlin" &&
			p.DateOfBirth != nil && p.DateOfBirth.Equal(wantDOB) &&
			p.FirstName == nil
	}))
	f.profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_MergesOnlyPresentFields(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	existing := &entity.Profile{
		UserID:    42,
		FirstName: strp("John"),
		City:      strp("Rome"),
		Country:   strp("Italy"),
	}

	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.profileRepo.On("FindByUserID", ctx, int64(42)).Return(existing, nil)
	f.profileRepo.On("Save", ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	input := &usecase.UpdateProfileInput{City: strp("Berlin")}

	err := f.service.UpdateProfile(ctx, 42, input)

	require.NoError(t, err)
	f.profileRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		// Absent fields stay untouched; only the submitted city changes.
		return *p.City == "Berlin" && *p.FirstName == "John" && *p.Country == "Italy"
	}))
	f.profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_ValidationFailure(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	input := &usecase.UpdateProfileInput{DateOfBirth: strp("17.04.1990")}

	err := f.service.UpdateProfile(ctx, 42, input)

	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields(), "date_of_birth")
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_SaveFailureRollsUp(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	existing := &entity.Profile{UserID: 42}
	f.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	f.profileRepo.On("FindByUserID", ctx, int64(42)).Return(existing, nil)
	f.profileRepo.On("Save", ctx, mock.AnythingOfType("*entity.Profile")).
		Return(assert.AnError)

	err := f.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{City: strp("Berlin")})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
