package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	accountRepo *mockRepo.MockAccountRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	accountRepo := &mockRepo.MockAccountRepository{}
	profileRepo := &mockRepo.MockProfileRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Accounts: accountRepo,
			Profiles: profileRepo,
		},
	}

	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
	}
}

func TestProfileService_Upsert_CreatesWhenMissing(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Username: "tester"}
	fixtures.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fixtures.profileRepo.On("FindByAccountID", ctx, account.ID).
		Return(nil, repository.ErrProfileNotFound)
	fixtures.profileRepo.On("Create", ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.Profile)
			profile.ID = uuid.New()
		}).
		Return(nil)

	output, err := fixtures.service.Upsert(ctx, &usecase.UpsertProfileInput{
		AccountID: account.ID,
		FirstName: "  Ada ",
		LastName:  "LOVELACE",
	})

	require.NoError(t, err)
	assert.False(t, output.Updated)
	// Name parts are normalized before persistence.
	assert.Equal(t, "ada", output.Profile.Name.FirstName)
	assert.Equal(t, "lovelace", output.Profile.Name.LastName)
	assert.Equal(t, "tester", output.Profile.Username)
	assert.Equal(t, "ada lovelace", output.Profile.FullName())
	fixtures.profileRepo.AssertExpectations(t)
}

func TestProfileService_Upsert_UpdatesExisting(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	birthDate := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	account := &entity.Account{ID: uuid.New(), Username: "renamed"}
	existing := &entity.Profile{
		ID:        uuid.New(),
		AccountID: account.ID,
		Username:  "tester",
		Name:      entity.PersonName{FirstName: "ada", LastName: "lovelace"},
		BirthDate: &birthDate,
	}

	fixtures.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fixtures.profileRepo.On("FindByAccountID", ctx, account.ID).Return(existing, nil)
	fixtures.profileRepo.On("Update", ctx, existing).Return(nil)

	output, err := fixtures.service.Upsert(ctx, &usecase.UpsertProfileInput{
		AccountID:  account.ID,
		FirstName:  "Grace",
		MiddleName: "Brewster",
		LastName:   "Hopper",
	})

	require.NoError(t, err)
	assert.True(t, output.Updated)
	assert.Equal(t, "grace", output.Profile.Name.FirstName)
	assert.Equal(t, "brewster", output.Profile.Name.MiddleName)
	// The denormalized username follows the current account row.
	assert.Equal(t, "renamed", output.Profile.Username)
	// An absent birth date leaves the stored one untouched.
	require.NotNil(t, output.Profile.BirthDate)
	assert.Equal(t, birthDate, *output.Profile.BirthDate)
}

func TestProfileService_Upsert_OverwritesBirthDateWhenGiven(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	oldDate := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(1992, time.July, 1, 0, 0, 0, 0, time.UTC)
	account := &entity.Account{ID: uuid.New(), Username: "tester"}
	existing := &entity.Profile{
		ID:        uuid.New(),
		AccountID: account.ID,
		BirthDate: &oldDate,
	}

	fixtures.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fixtures.profileRepo.On("FindByAccountID", ctx, account.ID).Return(existing, nil)
	fixtures.profileRepo.On("Update", ctx, existing).Return(nil)

	output, err := fixtures.service.Upsert(ctx, &usecase.UpsertProfileInput{
		AccountID: account.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		BirthDate: &newDate,
	})

	require.NoError(t, err)
	require.NotNil(t, output.Profile.BirthDate)
	assert.Equal(t, newDate, *output.Profile.BirthDate)
}

func TestProfileService_Upsert_UnknownAccount(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	accountID := uuid.New()
	fixtures.accountRepo.On("FindByID", ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fixtures.service.Upsert(ctx, &usecase.UpsertProfileInput{
		AccountID: accountID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	fixtures.profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfileService_GetByUsername_Success(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	profile := &entity.Profile{
		ID:       uuid.New(),
		Username: "tester",
		Name:     entity.PersonName{FirstName: "ada", LastName: "lovelace"},
	}
	fixtures.profileRepo.On("FindByUsername", ctx, "tester").Return(profile, nil)

	found, err := fixtures.service.GetByUsername(ctx, "tester")

	require.NoError(t, err)
	assert.Equal(t, profile, found)
}

func TestProfileService_GetByUsername_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)
	ctx := context.Background()

	fixtures.profileRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound)

	found, err := fixtures.service.GetByUsername(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
