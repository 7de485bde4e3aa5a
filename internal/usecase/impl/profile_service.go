package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upsert merges the payload into the account's existing profile or creates a
// new one. The account lookup, profile lookup and write share one transaction
// so the denormalized username copy always comes from the current account row.
func (srv *profileService) Upsert(ctx context.Context, input *usecase.UpsertProfileInput) (*usecase.UpsertProfileOutput, error) {
	srv.log(ctx).Info("Upserting profile", slog.Any("accountID", input.AccountID))

	name := entity.PersonName{
		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		LastName:   input.LastName,
	}.Normalize()

	var output usecase.UpsertProfileOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("profile upsert failed")
			}

			return errors.Wrap(err, "failed to find owning account")
		}

		profile, err := profileRepo.FindByAccountID(ctx, input.AccountID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile by account id")
		}

		if profile != nil {
			profile.Username = account.Username
			profile.Name = name
			if input.BirthDate != nil {
				profile.BirthDate = input.BirthDate
			}

			if err := profileRepo.Update(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}

			output.Profile = profile
			output.Updated = true

			return nil
		}

		profile = &entity.Profile{
			AccountID: account.ID,
			Username:  account.Username,
			Name:      name,
			BirthDate: input.BirthDate,
		}

		if err := profileRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		output.Profile = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile upsert failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile upsert completed", slog.Any("profileID", output.Profile.ID), slog.Bool("updated", output.Updated))

	return &output, nil
}

// GetByUsername retrieves a profile through the public username lookup.
func (srv *profileService) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting profile", slog.String("username", username))

	profile, err := srv.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return profile, nil
}
