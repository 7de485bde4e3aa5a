// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lowercases and trims an email before any lookup or write.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new account: duplicate checks and insert run in one
// transaction, and the store's unique constraints remain the authoritative
// duplicate signal should a concurrent sign-up win the race between the
// pre-query and the insert.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting sign up", slog.String("username", input.Username), slog.String("email", email))

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Explicit pre-queries so the conflict response can name the
		// colliding value.
		if existing, err := accountRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrDuplicateAccount.WithMessage(existing.Email + " already exist")
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		if existing, err := accountRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrDuplicateAccount.WithMessage(existing.Username + " already exist")
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during sign up")
		}

		account = &entity.Account{
			Username:     input.Username,
			Email:        email,
			PasswordHash: hashedPassword,
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				// A concurrent sign-up won the race after the pre-query.
				return domainerrors.ErrDuplicateAccount.WithMessage(email + " already exist")
			}

			return errors.Wrap(err, "failed to create account during sign up")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Sign(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to mint token after sign up", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint session token")
	}

	srv.log(ctx).Debug("Sign up completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// SignIn verifies email and password and mints a new session token.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign in", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Sign in failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrEmailNotFound.WithMessage(email + " doesn't exist")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Password check runs outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Sign in failed, password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("sign in failed")
	}

	token, err := srv.tokenService.Sign(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}

	srv.log(ctx).Debug("Sign in completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// ChangePassword replaces the password of the authenticated account. The old
// password is not re-verified; a valid session token is the only requirement.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Changing password", slog.Any("accountID", input.AccountID))

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("change password failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	account.PasswordHash = hashedPassword
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}
