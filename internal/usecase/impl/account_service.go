// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validator    *validation.Validator
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process: validate the
// whole input up front, hash the password, then create the row inside a
// transaction guarded by the conflict pre-check. The storage unique
// constraint stays the final authority for concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("login", input.Login))

	// No storage access until the input as a whole has passed validation.
	if fields := srv.validator.ValidateRegistration(input); fields != nil {
		srv.log(ctx).Warn("Registration input validation failed",
			slog.String("login", input.Login), slog.Int("failedFields", len(fields)))

		return nil, domainerrors.NewValidationError(fields)
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Login:        input.Login,
		PasswordHash: hashedPassword,
		Mail:         input.Mail,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast-path conflict check before attempting the insert.
		_, findErr := userRepo.FindByLoginOrMail(ctx, input.Login, input.Mail)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration conflict pre-check")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check login and mail availability")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			// A concurrent registration can slip past the pre-check; the
			// unique constraint reports it the same way as the fast path.
			if errors.Is(createErr, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration conflict on insert")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction",
			slog.String("login", input.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// Login verifies credentials and issues a signed access token. Every failure
// mode that involves the submitted credentials collapses into the same
// ErrInvalidCredentials so callers cannot probe which logins exist.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("login", input.Login))

	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("login", input.Login),
				slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login),
			slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}

// GetUser returns the public view of a user.
func (srv *accountService) GetUser(ctx context.Context, id int64) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &usecase.PublicUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Login:     user.Login,
		Mail:      user.Mail,
	}, nil
}
