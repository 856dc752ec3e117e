// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Danielluzius/coderr-backend/internal/delivery/context"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user together with their profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
	}

	return user, nil
}

// UpdateProfile patches the profile metadata and the mutable user fields.
// Only the owning user may update their profile; the role type never changes.
func (srv *profileService) UpdateProfile(ctx context.Context, actor usecase.Actor, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if actor.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "profile belongs to another user")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile == nil {
			return errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		applyProfilePatch(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = user

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ListProfiles returns every user carrying a profile of the given role.
func (srv *profileService) ListProfiles(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	srv.log(ctx).Debug("Listing profiles", slog.String("role", role.String()))

	users, err := srv.userRepo.ListProfilesByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return users, nil
}

func applyProfilePatch(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.File != nil {
		user.Profile.File = *input.File
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Tel != nil {
		user.Profile.Tel = *input.Tel
	}
	if input.Description != nil {
		user.Profile.Description = *input.Description
	}
	if input.WorkingHours != nil {
		user.Profile.WorkingHours = *input.WorkingHours
	}
}
