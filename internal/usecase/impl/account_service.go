// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Danielluzius/coderr-backend/internal/delivery/context"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/domain/service"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: the User and their
// role Profile are created atomically, then the account credential is issued.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.CredentialOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("type", input.Type))

	if err := validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var output *usecase.CredentialOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.NewFieldErrors().Add("username", "A user with that username already exists.")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Profile:      &entity.Profile{Type: entity.Role(input.Type)},
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		token, err := srv.issueToken(ctx, tokenRepo, newUser)
		if err != nil {
			return err
		}
		output = credentialOutput(newUser, token)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", output.UserID))

	return output, nil
}

// Login verifies username and password and returns the account's credential.
// Both an unknown username and a wrong password surface as the same
// invalid-credentials error so the response does not leak which was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.CredentialOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Check the password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.issueToken(ctx, srv.tokenRepo, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return credentialOutput(user, token), nil
}

// Authenticate resolves a presented token key to the acting identity, loading
// the role once so handlers never probe for profile rows themselves.
func (srv *accountService) Authenticate(ctx context.Context, tokenKey string) (*usecase.Actor, error) {
	token, err := srv.tokenRepo.FindByKey(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "unknown token")
		}

		return nil, errors.Wrap(err, "failed to look up token")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token user")
	}

	return &usecase.Actor{
		UserID:  user.ID,
		Role:    user.Role(),
		IsStaff: user.IsStaff,
	}, nil
}

// issueToken returns the user's credential with create-if-absent semantics:
// the freshly generated key is only stored when no token row exists yet.
func (srv *accountService) issueToken(ctx context.Context, tokenRepo repository.TokenRepository, user *entity.User) (*entity.AuthToken, error) {
	freshKey, err := srv.tokenService.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token key")
	}

	token, err := tokenRepo.GetOrCreate(ctx, user.ID, freshKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}

func validateRegistration(input *usecase.RegisterInput) error {
	fieldErrs := domainerrors.NewFieldErrors()

	if input.Password != input.RepeatedPassword {
		fieldErrs.Add("repeated_password", "Passwords do not match.")
	}
	if !entity.Role(input.Type).IsValid() {
		fieldErrs.Add("type", "Type must be 'customer' or 'business'.")
	}

	if fieldErrs.HasErrors() {
		return fieldErrs
	}

	return nil
}

func credentialOutput(user *entity.User, token *entity.AuthToken) *usecase.CredentialOutput {
	return &usecase.CredentialOutput{
		Token:    token.Key,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}
}
