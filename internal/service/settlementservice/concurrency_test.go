package settlementservice

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"github.com/GlebRadaev/roulette/internal/service/ledgerservice"
	"github.com/GlebRadaev/roulette/internal/service/resolverservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

// heldLocks are the row locks taken by one transaction. Only its own
// goroutine touches them.
type heldLocks map[string]*sync.Mutex

// memTx releases row locks at commit, like the database does. Transactions
// touching different rows run in parallel.
type memTx struct{}

func (memTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := ctx.Value(txKey{}).(heldLocks); ok {
		return fn(ctx)
	}
	held := heldLocks{}
	defer func() {
		for _, m := range held {
			m.Unlock()
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, held))
}

type rowLocks struct {
	mu   sync.Mutex
	rows map[string]*sync.Mutex
}

// acquire blocks until the row is free. Taking a row twice in one
// transaction is a no-op, as with SELECT ... FOR UPDATE.
func (l *rowLocks) acquire(ctx context.Context, key string) {
	held, ok := ctx.Value(txKey{}).(heldLocks)
	if !ok {
		return
	}
	if _, ok := held[key]; ok {
		return
	}
	l.mu.Lock()
	m, ok := l.rows[key]
	if !ok {
		m = &sync.Mutex{}
		l.rows[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	held[key] = m
}

type memStore struct {
	locks   rowLocks
	mu      sync.Mutex
	users   map[int]*domain.User
	entries []domain.LedgerEntry
	slips   map[int]*domain.Slip
	bets    map[int][]domain.Bet
}

func newMemStore() *memStore {
	return &memStore{
		locks: rowLocks{rows: map[string]*sync.Mutex{}},
		users: map[int]*domain.User{},
		slips: map[int]*domain.Slip{},
		bets:  map[int][]domain.Bet{},
	}
}

func (s *memStore) LockAccount(ctx context.Context, userID int) (*domain.User, error) {
	s.locks.acquire(ctx, "user:"+strconv.Itoa(userID))
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) InsertEntry(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.entries {
		if e.Type == domain.EntryWin && existing.Type == domain.EntryWin && existing.ReferenceID == e.ReferenceID {
			return nil, domain.ErrAlreadySettled
		}
	}
	e.ID = len(s.entries) + 1
	s.entries = append(s.entries, *e)
	return e, nil
}

func (s *memStore) UpdateBalance(_ context.Context, userID int, balance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID].CashBalance = balance
	return nil
}

func (s *memStore) GetBalance(_ context.Context, userID int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID].CashBalance, nil
}

func (s *memStore) ListEntries(context.Context, int, int) ([]domain.LedgerEntry, error) {
	return nil, nil
}

func (s *memStore) Totals(context.Context, int) (float64, int, float64, error) {
	return 0, 0, 0, nil
}

func (s *memStore) ListOpenByDraw(_ context.Context, drawNumber int) ([]domain.Slip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Slip
	for id := 1; id <= len(s.slips); id++ {
		if slip := s.slips[id]; slip.DrawNumber == drawNumber && slip.Status.IsOpen() {
			out = append(out, *slip)
		}
	}
	return out, nil
}

func (s *memStore) LockByID(ctx context.Context, slipID int) (*domain.Slip, error) {
	s.locks.acquire(ctx, "slip:"+strconv.Itoa(slipID))
	s.mu.Lock()
	defer s.mu.Unlock()
	slip, ok := s.slips[slipID]
	if !ok {
		return nil, domain.ErrSlipNotFound
	}
	cp := *slip
	return &cp, nil
}

func (s *memStore) ListBets(_ context.Context, slipID int) ([]domain.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bets[slipID], nil
}

func (s *memStore) MarkSettled(_ context.Context, slipID int, status domain.SlipStatus, winningNumber int, settledAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slip := s.slips[slipID]
	if !slip.Status.IsOpen() {
		return domain.ErrAlreadySettled
	}
	slip.Status = status
	slip.WinningNumber = &winningNumber
	slip.SettledAt = &settledAt
	return nil
}

func (s *memStore) ledgerSum(userID int) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.UserID == userID {
			sum = sum.Add(decimal.NewFromFloat(e.SignedAmount))
		}
	}
	return sum
}

func (s *memStore) count(typ domain.EntryType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if e.Type == typ {
			n++
		}
	}
	return n
}

type fixedResolver struct {
	result resolverservice.Result
}

func (r fixedResolver) Resolve(_ context.Context, drawNumber int) (*resolverservice.Result, error) {
	if drawNumber != r.result.DrawNumber {
		return nil, domain.ErrNotYetDrawn
	}
	res := r.result
	return &res, nil
}

// seed opens two accounts with a 100 voucher each and sells one slip per account on draw 42.
func seed(t *testing.T, store *memStore) {
	for _, userID := range []int{7, 8} {
		store.users[userID] = &domain.User{ID: userID, CashBalance: 90}
		store.entries = append(store.entries,
			domain.LedgerEntry{ID: len(store.entries) + 1, UserID: userID, SignedAmount: 100, BalanceAfter: 100, Type: domain.EntryVoucher},
			domain.LedgerEntry{ID: len(store.entries) + 2, UserID: userID, SignedAmount: -10, BalanceAfter: 90, Type: domain.EntryBet},
		)
	}

	straight, err := roulette.Straight(17)
	require.NoError(t, err)
	red, err := roulette.EvenChance(roulette.EvenRed)
	require.NoError(t, err)
	store.slips[1] = &domain.Slip{ID: 1, SlipNumber: "79927398713", UserID: 7, DrawNumber: 42, TotalStake: 10, Status: domain.SlipStatusPending}
	store.bets[1] = []domain.Bet{bet(t, 1, straight, nil, 10, 36)}
	store.slips[2] = &domain.Slip{ID: 2, SlipNumber: "49927398716", UserID: 8, DrawNumber: 42, TotalStake: 10, Status: domain.SlipStatusActive}
	store.bets[2] = []domain.Bet{bet(t, 2, red, nil, 10, 2)}
}

func newFakeService(store *memStore) *Service {
	tx := memTx{}
	ledger := ledgerservice.New(store, tx)
	resolver := fixedResolver{result: resolverservice.Result{DrawNumber: 42, Number: 17, Color: roulette.Black, Source: resolverservice.SourceDraws}}
	return New(store, ledger, resolver, tx, 4)
}

func TestConcurrentSettlementPaysOnce(t *testing.T) {
	store := newMemStore()
	seed(t, store)
	svc := newFakeService(store)

	const runs = 8
	var wg sync.WaitGroup
	sums := make([]Summary, runs)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sum, err := svc.Settle(context.Background(), 42)
			assert.NoError(t, err)
			sums[i] = sum
		}()
	}
	wg.Wait()

	won, lost, failed := 0, 0, 0
	for _, sum := range sums {
		won += sum.Won
		lost += sum.Lost
		failed += sum.Failed
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Zero(t, failed)

	assert.Equal(t, 1, store.count(domain.EntryWin))
	assert.Equal(t, domain.SlipStatusWon, store.slips[1].Status)
	assert.Equal(t, domain.SlipStatusLost, store.slips[2].Status)

	for _, userID := range []int{7, 8} {
		balance, err := store.GetBalance(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, store.ledgerSum(userID).Equal(decimal.NewFromFloat(balance)), "user %d balance %v", userID, balance)
	}
	assert.Equal(t, 450.0, store.users[7].CashBalance)
	assert.Equal(t, 90.0, store.users[8].CashBalance)
}

func TestSettleTwiceIsNoop(t *testing.T) {
	store := newMemStore()
	seed(t, store)
	svc := newFakeService(store)

	first, err := svc.Settle(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, 360.0, first.Payout)

	second, err := svc.Settle(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, Summary{DrawNumber: 42}, second)
	assert.Equal(t, 1, store.count(domain.EntryWin))

	_, err = svc.Settle(context.Background(), 43)
	assert.ErrorIs(t, err, domain.ErrNotYetDrawn)
}
