package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func TestResolver_Resolve(t *testing.T) {
	code := "ACC123"
	bound := &entity.User{ID: "u1", Email: "ada@example.com", DedicatedAccountID: &code}

	testCases := []struct {
		name          string
		event         *entity.CreditEvent
		mockSetup     func(repo *mockpersistence.MockUserRepository)
		expectedUser  *entity.User
		expectedFound bool
		expectErr     bool
	}{
		{
			name:  "transfer matched by dedicated account",
			event: &entity.CreditEvent{Kind: entity.CreditByDedicatedAccount, RecipientCode: " ACC123 ", Reference: "TX1"},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {
				repo.EXPECT().FindByDedicatedAccountID(mock.Anything, "ACC123").Return(bound, nil)
			},
			expectedUser:  bound,
			expectedFound: true,
		},
		{
			name:  "charge matched by normalized email",
			event: &entity.CreditEvent{Kind: entity.CreditByEmail, PayerEmail: "Ada@Example.com", Reference: "CH1"},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {
				repo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(bound, nil)
			},
			expectedUser:  bound,
			expectedFound: true,
		},
		{
			name:  "unknown dedicated account is unresolved",
			event: &entity.CreditEvent{Kind: entity.CreditByDedicatedAccount, RecipientCode: "NOPE"},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {
				repo.EXPECT().FindByDedicatedAccountID(mock.Anything, "NOPE").Return(nil, errs.ErrUserNotFound)
			},
		},
		{
			name:  "ambiguous email fails closed",
			event: &entity.CreditEvent{Kind: entity.CreditByEmail, PayerEmail: "shared@example.com"},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {
				repo.EXPECT().FindByEmail(mock.Anything, "shared@example.com").Return(nil, errs.ErrAmbiguousUser)
			},
		},
		{
			name:      "missing recipient code never queries",
			event:     &entity.CreditEvent{Kind: entity.CreditByDedicatedAccount},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {},
		},
		{
			name:      "missing email never queries",
			event:     &entity.CreditEvent{Kind: entity.CreditByEmail, PayerEmail: "  "},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {},
		},
		{
			name:  "storage failure is an error",
			event: &entity.CreditEvent{Kind: entity.CreditByEmail, PayerEmail: "ada@example.com"},
			mockSetup: func(repo *mockpersistence.MockUserRepository) {
				repo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrDatabaseConnection)
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uow := mockpersistence.NewMockUnitOfWork(t)
			repo := mockpersistence.NewMockUserRepository(t)
			uow.EXPECT().GetUserRepository(mock.Anything).Return(repo)
			tc.mockSetup(repo)

			resolver := NewResolver(uow, logger.NewNoopLogger())
			user, found, err := resolver.Resolve(context.Background(), tc.event)

			if tc.expectErr {
				assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedFound, found)
			assert.Equal(t, tc.expectedUser, user)
		})
	}
}

func TestResolver_LogsAmbiguity(t *testing.T) {
	uow := mockpersistence.NewMockUnitOfWork(t)
	repo := mockpersistence.NewMockUserRepository(t)
	log := mockcore.NewMockLogger(t)

	uow.EXPECT().GetUserRepository(mock.Anything).Return(repo)
	repo.EXPECT().FindByDedicatedAccountID(mock.Anything, "ACC1").Return(nil, errs.ErrAmbiguousUser)
	log.EXPECT().Error("Ambiguous account match, refusing to credit", mock.Anything).Return().Once()

	resolver := NewResolver(uow, log)
	user, found, err := resolver.Resolve(context.Background(),
		&entity.CreditEvent{Kind: entity.CreditByDedicatedAccount, RecipientCode: "ACC1", Reference: "TX9"})

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)
}
