package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Storage keys, matching the original dashboard's local storage layout.
const (
	keyTransactions = "transactions"
	keyAccounts     = "accounts"
	keySavingsGoals = "savingsGoals"
)

// state is the full application state snapshot: the three persisted
// collections. The category catalog is not part of it by design.
type state struct {
	Transactions []domain.Transaction
	Accounts     []domain.Account
	Goals        []domain.SavingsGoal
}

func (st *state) clone() *state {
	next := &state{
		Transactions: make([]domain.Transaction, len(st.Transactions)),
		Accounts:     make([]domain.Account, len(st.Accounts)),
		Goals:        make([]domain.SavingsGoal, len(st.Goals)),
	}
	copy(next.Transactions, st.Transactions)
	copy(next.Accounts, st.Accounts)
	copy(next.Goals, st.Goals)
	return next
}

// Store implements the repository ports over an in-memory snapshot backed by
// the KV layer. Mutations run on a clone of the snapshot and the clone is
// swapped in only when the whole mutation succeeded, so multi-entity updates
// apply together or not at all. Persistence is best-effort: a failed flush is
// logged and the in-memory snapshot stays authoritative for the session.
type Store struct {
	mu     sync.RWMutex
	kv     *KVStore
	state  *state
	logger *slog.Logger
}

// Interface assertions.
var (
	_ ports.TransactionRepository = (*Store)(nil)
	_ ports.AccountRepository     = (*Store)(nil)
	_ ports.GoalRepository        = (*Store)(nil)
)

// NewStore loads the persisted collections, seeding defaults on first run.
func NewStore(ctx context.Context, kv *KVStore, logger *slog.Logger) (*Store, error) {
	st := &state{}

	if err := loadCollection(ctx, kv, keyTransactions, []domain.Transaction{}, &st.Transactions); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, kv, keyAccounts, domain.DefaultAccounts(), &st.Accounts); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, kv, keySavingsGoals, []domain.SavingsGoal{}, &st.Goals); err != nil {
		return nil, err
	}

	return &Store{kv: kv, state: st, logger: logger}, nil
}

// loadCollection fetches one keyed collection, persisting and using the
// default when the key has never been written.
func loadCollection[T any](ctx context.Context, kv *KVStore, key string, def []T, out *[]T) error {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal default for %s: %w", key, err)
	}
	raw, err := kv.Load(ctx, key, defBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode stored %s: %w", key, err)
	}
	return nil
}

// update applies fn to a clone of the current state. On success the clone
// becomes current and the dirty keys are flushed; on error nothing changes.
func (s *Store) update(ctx context.Context, fn func(st *state) error, dirty ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	s.flushLocked(ctx, dirty...)
	return nil
}

// flushLocked persists the named collections. Storage failures are logged
// and swallowed; the in-memory state remains the source of truth.
func (s *Store) flushLocked(ctx context.Context, keys ...string) {
	for _, key := range keys {
		var v any
		switch key {
		case keyTransactions:
			v = s.state.Transactions
		case keyAccounts:
			v = s.state.Accounts
		case keySavingsGoals:
			v = s.state.Goals
		}
		raw, err := json.Marshal(v)
		if err != nil {
			s.logger.Error("Failed to serialize collection", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		if err := s.kv.Save(ctx, key, raw); err != nil {
			s.logger.Error("Failed to persist collection", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

// SaveTransaction appends the transaction and applies the account balance
// deltas it causes in one state update. Unknown account ids reject the whole
// mutation.
func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	return s.update(ctx, func(st *state) error {
		for accountID, delta := range balanceChanges {
			i := accountIndex(st.Accounts, accountID)
			if i < 0 {
				return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
			}
			st.Accounts[i].Balance = st.Accounts[i].Balance.Add(delta)
		}
		st.Transactions = append(st.Transactions, txn)
		return nil
	}, keyTransactions, keyAccounts)
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out, nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := accountIndex(s.state.Accounts, accountID)
	if i < 0 {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	account := s.state.Accounts[i]
	return &account, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, len(s.state.Accounts))
	copy(out, s.state.Accounts)
	return out, nil
}

func (s *Store) SaveGoal(ctx context.Context, goal domain.SavingsGoal) error {
	return s.update(ctx, func(st *state) error {
		if goalIndex(st.Goals, goal.GoalID) >= 0 {
			return fmt.Errorf("goal %s: %w", goal.GoalID, apperrors.ErrDuplicate)
		}
		st.Goals = append(st.Goals, goal)
		return nil
	}, keySavingsGoals)
}

func (s *Store) FindGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := goalIndex(s.state.Goals, goalID)
	if i < 0 {
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	goal := s.state.Goals[i]
	return &goal, nil
}

func (s *Store) ListGoals(ctx context.Context) ([]domain.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SavingsGoal, len(s.state.Goals))
	copy(out, s.state.Goals)
	return out, nil
}

// ApplyContribution credits the goal and debits the account in one state
// update; if either id is unknown, neither change is applied.
func (s *Store) ApplyContribution(ctx context.Context, goalID string, accountID string, amount decimal.Decimal) error {
	return s.update(ctx, func(st *state) error {
		gi := goalIndex(st.Goals, goalID)
		if gi < 0 {
			return fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
		}
		ai := accountIndex(st.Accounts, accountID)
		if ai < 0 {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		st.Goals[gi].CurrentAmount = st.Goals[gi].CurrentAmount.Add(amount)
		st.Accounts[ai].Balance = st.Accounts[ai].Balance.Sub(amount)
		return nil
	}, keySavingsGoals, keyAccounts)
}

func accountIndex(accounts []domain.Account, accountID string) int {
	for i := range accounts {
		if accounts[i].AccountID == accountID {
			return i
		}
	}
	return -1
}

func goalIndex(goals []domain.SavingsGoal, goalID string) int {
	for i := range goals {
		if goals[i].GoalID == goalID {
			return i
		}
	}
	return -1
}
