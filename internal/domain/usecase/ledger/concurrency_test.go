package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
)

// memStore is a serializable in-memory store with a unique (user, reference) key.
// Writes inside Execute are staged and applied only when fn succeeds.
type memStore struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	txns     map[[2]string]*entity.Transaction
}

type stageKey struct{}

type stage struct {
	txns   []*entity.Transaction
	deltas map[string]decimal.Decimal
}

func newMemStore(balances map[string]decimal.Decimal) *memStore {
	return &memStore{balances: balances, txns: map[[2]string]*entity.Transaction{}}
}

func (s *memStore) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &stage{deltas: map[string]decimal.Decimal{}}
	if err := fn(context.WithValue(ctx, stageKey{}, st)); err != nil {
		return err
	}
	for _, tx := range st.txns {
		s.txns[[2]string{tx.UserID, tx.Reference}] = tx
	}
	for id, d := range st.deltas {
		s.balances[id] = s.balances[id].Add(d)
	}
	return nil
}

func (s *memStore) GetUserRepository(context.Context) persistence.UserRepository { return memUsers{s} }

func (s *memStore) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return memTxns{s}
}

type memTxns struct{ s *memStore }

func (r memTxns) CreateIfAbsent(ctx context.Context, tx *entity.Transaction) (bool, error) {
	st := ctx.Value(stageKey{}).(*stage)
	if _, ok := r.s.txns[[2]string{tx.UserID, tx.Reference}]; ok {
		return false, nil
	}
	st.txns = append(st.txns, tx)
	return true, nil
}

func (r memTxns) GetByReference(_ context.Context, userID, reference string) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tx, ok := r.s.txns[[2]string{userID, reference}]; ok {
		return tx, nil
	}
	return nil, errs.ErrTransactionNotFound
}

func (r memTxns) Exists(_ context.Context, userID, reference string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.txns[[2]string{userID, reference}]
	return ok, nil
}

func (r memTxns) ListByUser(context.Context, string, int) ([]*entity.Transaction, error) {
	return nil, nil
}

type memUsers struct{ s *memStore }

func (r memUsers) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (r memUsers) FindByDedicatedAccountID(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (r memUsers) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (r memUsers) Create(context.Context, *entity.User) error { return nil }
func (r memUsers) BindDedicatedAccount(context.Context, string, string) error { return nil }

func (r memUsers) IncrementBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	st := ctx.Value(stageKey{}).(*stage)
	if _, ok := r.s.balances[userID]; !ok {
		return errs.ErrUserNotFound
	}
	st.deltas[userID] = st.deltas[userID].Add(amount)
	return nil
}

func TestService_CreditIdempotentUnderConcurrentReplay(t *testing.T) {
	store := newMemStore(map[string]decimal.Decimal{"u1": decimal.NewFromInt(1000)})
	service := NewLedgerService(store, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	const deliveries = 50
	results := make(chan usecase.CreditStatus, deliveries)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := service.Credit(context.Background(), creditRequest())
			assert.NoError(t, err)
			results <- res.Status
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	counts := map[usecase.CreditStatus]int{}
	for status := range results {
		counts[status]++
	}

	assert.Equal(t, 1, counts[usecase.CreditApplied])
	assert.Equal(t, deliveries-1, counts[usecase.CreditAlreadyProcessed])
	assert.Len(t, store.txns, 1)
	assert.Equal(t, "6000.00", entity.FormatAmount(store.balances["u1"]))
}

func TestService_CreditIdempotentUnderSequentialReplay(t *testing.T) {
	store := newMemStore(map[string]decimal.Decimal{"u1": decimal.NewFromInt(1000)})
	service := NewLedgerService(store, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	first, err := service.Credit(context.Background(), creditRequest())
	require.NoError(t, err)
	assert.Equal(t, usecase.CreditApplied, first.Status)

	for i := 0; i < 5; i++ {
		res, err := service.Credit(context.Background(), creditRequest())
		require.NoError(t, err)
		assert.Equal(t, usecase.CreditAlreadyProcessed, res.Status)
	}

	tx, err := store.GetTransactionRepository(context.Background()).GetByReference(context.Background(), "u1", "TX1")
	require.NoError(t, err)
	assert.Equal(t, "5000.00", entity.FormatAmount(tx.Amount))
	assert.Equal(t, entity.TypeCredit, tx.Type)
	assert.Equal(t, "6000.00", entity.FormatAmount(store.balances["u1"]))
	assert.WithinDuration(t, time.Now(), tx.Timestamp, time.Minute)
}

func TestService_CreditDifferentUsersSameReference(t *testing.T) {
	store := newMemStore(map[string]decimal.Decimal{"u1": decimal.Zero, "u2": decimal.Zero})
	service := NewLedgerService(store, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	for _, id := range []string{"u1", "u2"} {
		req := creditRequest()
		req.UserID = id
		res, err := service.Credit(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, usecase.CreditApplied, res.Status)
	}

	assert.Len(t, store.txns, 2)
}
