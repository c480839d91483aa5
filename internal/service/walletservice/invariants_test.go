package walletservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/paycore/internal/domain"
)

type memTxKey struct{}

// memStore is a single-lock stand-in for the database. A unit of work holds
// the lock for its whole duration, the same serialization the row locks
// give the real store.
type memStore struct {
	mu       sync.Mutex
	accounts map[int64]*domain.Account
	entries  []domain.Transaction
	nextID   int64
}

func newMemStore(accounts int64, initial decimal.Decimal) *memStore {
	store := &memStore{accounts: make(map[int64]*domain.Account)}
	for id := int64(1); id <= accounts; id++ {
		store.accounts[id] = &domain.Account{
			ID:      id,
			Kind:    domain.AccountKindUser,
			Balance: initial,
		}
	}
	return store
}

// acquire locks the store unless the calling unit of work already holds it.
func (s *memStore) acquire(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) entriesFor(accountID int64) []domain.Transaction {
	var out []domain.Transaction
	for _, entry := range s.entries {
		if entry.AccountID == accountID {
			out = append(out, entry)
		}
	}
	return out
}

type memTxManager struct{ store *memStore }

func (m *memTxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[int64]*domain.Account, len(s.accounts))
	for id, account := range s.accounts {
		copied := *account
		snapshot[id] = &copied
	}
	entriesLen := len(s.entries)

	if err := fn(context.WithValue(ctx, memTxKey{}, struct{}{})); err != nil {
		s.accounts = snapshot
		s.entries = s.entries[:entriesLen]
		return err
	}
	return nil
}

type memAccountRepo struct{ store *memStore }

func (r *memAccountRepo) GetByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	release := r.store.acquire(ctx)
	defer release()
	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *memAccountRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	return nil, nil
}

func (r *memAccountRepo) GetSystemAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	return nil, nil
}

func (r *memAccountRepo) GetForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.GetByID(ctx, accountID)
}

func (r *memAccountRepo) Create(ctx context.Context, userID int64) (*domain.Account, error) {
	return nil, errors.New("not supported")
}

func (r *memAccountRepo) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	release := r.store.acquire(ctx)
	defer release()
	account, ok := r.store.accounts[accountID]
	if !ok {
		return errors.New("no such account")
	}
	account.Balance = balance
	return nil
}

type memTransactionRepo struct{ store *memStore }

func (r *memTransactionRepo) Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	release := r.store.acquire(ctx)
	defer release()
	if txn.ExternalOrderID != "" {
		for _, entry := range r.store.entries {
			if entry.AccountID == txn.AccountID && entry.ExternalOrderID == txn.ExternalOrderID && entry.Type == txn.Type {
				return nil, &pgconn.PgError{Code: "23505"}
			}
		}
	}
	r.store.nextID++
	txn.ID = r.store.nextID
	r.store.entries = append(r.store.entries, *txn)
	return txn, nil
}

func (r *memTransactionRepo) FindByExternalOrderID(ctx context.Context, accountID int64, externalOrderID string, txnType domain.TransactionType) (*domain.Transaction, error) {
	release := r.store.acquire(ctx)
	defer release()
	for i := range r.store.entries {
		entry := r.store.entries[i]
		if entry.AccountID == accountID && entry.ExternalOrderID == externalOrderID && entry.Type == txnType {
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *memTransactionRepo) ListByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	release := r.store.acquire(ctx)
	defer release()
	return r.store.entriesFor(accountID), nil
}

// TestLedgerInvariantsUnderConcurrency runs randomized deposits, withdrawals
// and transfers from several goroutines against the in-memory store and then
// checks the ledger equations: every balance equals the sum of its entry
// amounts, no balance ever goes negative, each entry's balance_before
// continues the previous entry's balance_after, and a gateway order id
// credits at most once however many times it is replayed.
func TestLedgerInvariantsUnderConcurrency(t *testing.T) {
	const (
		accountCount = 4
		goroutines   = 8
		opsPerWorker = 200
	)
	initial := decimal.NewFromInt(10000)
	store := newMemStore(accountCount, initial)
	service := New(&memAccountRepo{store}, &memTransactionRepo{store}, nil, &memTxManager{store})

	sharedOrders := make([]string, 10)
	for i := range sharedOrders {
		sharedOrders[i] = fmt.Sprintf("order-shared-%d", i)
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			ctx := context.Background()

			for i := 0; i < opsPerWorker; i++ {
				accountID := int64(rng.Intn(accountCount) + 1)
				amount := decimal.NewFromInt(int64(rng.Intn(500) + 1))

				var err error
				switch rng.Intn(4) {
				case 0:
					_, err = service.Deposit(ctx, accountID, amount, "", "")
				case 1:
					// replay a shared order id; each order belongs to one
					// account and carries a fixed amount, so a double credit
					// would be visible in the sums
					idx := rng.Intn(len(sharedOrders))
					orderAccountID := int64(idx%accountCount + 1)
					_, err = service.Deposit(ctx, orderAccountID, decimal.NewFromInt(int64(100*(idx+1))), sharedOrders[idx], "")
				case 2:
					_, err = service.Withdraw(ctx, accountID, amount, "")
				default:
					toAccountID := int64(rng.Intn(accountCount) + 1)
					err = service.Transfer(ctx, accountID, toAccountID, amount, "")
				}

				switch {
				case err == nil:
				case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrSameAccount):
					// legal rejections under contention
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}
		}(int64(g))
	}
	wg.Wait()

	accountRepo := &memAccountRepo{store}
	for id := int64(1); id <= accountCount; id++ {
		account, err := accountRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, account)

		sum := initial
		prevAfter := initial
		for _, entry := range store.entriesFor(id) {
			assert.True(t, prevAfter.Equal(entry.BalanceBefore),
				"account %d: entry %d balance_before %s does not continue %s", id, entry.ID, entry.BalanceBefore, prevAfter)
			assert.True(t, entry.BalanceBefore.Add(entry.Amount).Equal(entry.BalanceAfter),
				"account %d: entry %d amount does not explain balance_after", id, entry.ID)
			assert.False(t, entry.BalanceAfter.IsNegative(),
				"account %d: entry %d drove the balance negative", id, entry.ID)
			prevAfter = entry.BalanceAfter
			sum = sum.Add(entry.Amount)
		}
		assert.True(t, account.Balance.Equal(sum),
			"account %d: balance %s != sum of ledger amounts %s", id, account.Balance, sum)
		assert.True(t, account.Balance.Equal(prevAfter),
			"account %d: balance %s != last balance_after %s", id, account.Balance, prevAfter)
		assert.False(t, account.Balance.IsNegative())
	}

	credits := make(map[string]int)
	for _, entry := range store.entries {
		if entry.Type == domain.TransactionDeposit && entry.ExternalOrderID != "" {
			credits[entry.ExternalOrderID]++
		}
	}
	for orderID, n := range credits {
		assert.Equal(t, 1, n, "order %s credited %d times", orderID, n)
	}
}
