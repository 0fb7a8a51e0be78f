package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"
	"passport/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateOfBirthLayout = "2006-01-02"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	validator   *validation.Validator
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Validator   *validation.Validator
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile row for the authenticated user.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return profile, nil
}

// UpdateProfile merges the present fields of input into the user's profile.
// The row is created lazily on first update; load and save share one
// transaction so concurrent updates cannot interleave a stale merge.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) error {
	if fields := srv.validator.ValidateProfileUpdate(input); fields != nil {
		srv.log(ctx).Warn("Profile update validation failed",
			slog.Int64("userID", userID), slog.Int("failedFields", len(fields)))

		return domainerrors.NewValidationError(fields)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, findErr := profileRepo.FindByUserID(ctx, userID)
		switch {
		case errors.Is(findErr, repository.ErrProfileNotFound):
			profile = &entity.Profile{UserID: userID}
			if createErr := applyProfileUpdate(profile, input); createErr != nil {
				return createErr
			}

			return errors.Wrap(profileRepo.Create(ctx, profile), "failed to create profile")
		case findErr != nil:
			return errors.Wrap(findErr, "failed to load profile for update")
		}

		if applyErr := applyProfileUpdate(profile, input); applyErr != nil {
			return applyErr
		}

		return errors.Wrap(profileRepo.Save(ctx, profile), "failed to save profile")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute profile update transaction",
			slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("userID", userID))

	return nil
}

// applyProfileUpdate copies each present field onto the profile. Every field
// is merged explicitly; absent (nil) fields leave the stored value untouched.
func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) error {
	if input.FirstName != nil {
		profile.FirstName = input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = input.LastName
	}
	if input.Gender != nil {
		profile.Gender = input.Gender
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse(dateOfBirthLayout, *input.DateOfBirth)
		if err != nil {
			// The validator already enforced the layout; a failure here means
			// the rule and this parser drifted apart.
			return errors.Wrap(err, "failed to parse date_of_birth")
		}
		profile.DateOfBirth = &dob
	}
	if input.Country != nil {
		profile.Country = input.Country
	}
	if input.City != nil {
		profile.City = input.City
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = input.ProfilePicture
	}

	return nil
}
