// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if acc := args.Get(0); acc != nil {
		return acc.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if acc := args.Get(0); acc != nil {
		return acc.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if acc := args.Get(0); acc != nil {
		return acc.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

// MockProfileRepository is a testify mock for repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, accountID)
	if p := args.Get(0); p != nil {
		return p.(*entity.Profile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	args := m.Called(ctx, username)
	if p := args.Get(0); p != nil {
		return p.(*entity.Profile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

// StubRepositoryFactory hands out fixed repository instances; it stands in
// for the transaction-bound factory in tests.
type StubRepositoryFactory struct {
	Accounts repository.AccountRepository
	Profiles repository.ProfileRepository
}

func (f *StubRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Accounts
}

func (f *StubRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return f.Profiles
}

// StubTransactionManager runs the callback immediately against the given
// factory, without any real transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
