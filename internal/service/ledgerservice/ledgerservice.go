package ledgerservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	LockAccount(ctx context.Context, userID int) (*domain.User, error)
	InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	UpdateBalance(ctx context.Context, userID int, balance float64) error
	GetBalance(ctx context.Context, userID int) (float64, error)
	ListEntries(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
	Totals(ctx context.Context, userID int) (sum float64, count int, last float64, err error)
}

const DefaultHistoryLimit = 100

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Post is the only way a cash balance changes. It locks the account row,
// appends the entry with the resulting balance and updates the cached
// balance, all in the caller's transaction or a new one.
func (s *Service) Post(ctx context.Context, userID int, amount float64, typ domain.EntryType, referenceID, description string) (*domain.LedgerEntry, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEntryType, typ)
	}
	delta := decimal.NewFromFloat(amount).Round(2)
	if delta.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.LockAccount(ctx, userID)
		if err != nil {
			return err
		}
		balance := decimal.NewFromFloat(account.CashBalance).Add(delta).Round(2)
		if balance.IsNegative() {
			return domain.ErrInsufficientFunds
		}
		after := balance.InexactFloat64()

		entry, err = s.repo.InsertEntry(ctx, &domain.LedgerEntry{
			UserID:       userID,
			SignedAmount: delta.InexactFloat64(),
			BalanceAfter: after,
			Type:         typ,
			ReferenceID:  referenceID,
			Description:  description,
		})
		if err != nil {
			return err
		}
		return s.repo.UpdateBalance(ctx, userID, after)
	})
	if err != nil {
		zap.L().Warn("ledger post rejected",
			zap.Int("user_id", userID),
			zap.String("type", string(typ)),
			zap.String("reference_id", referenceID),
			zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Credit is the operator path for manual balance changes. Adjustments may be
// negative; admin credits and vouchers must add funds.
func (s *Service) Credit(ctx context.Context, userID int, amount float64, typ domain.EntryType, description string) (*domain.LedgerEntry, error) {
	switch typ {
	case domain.EntryAdmin, domain.EntryVoucher:
		if amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
	case domain.EntryAdjustment:
	default:
		return nil, fmt.Errorf("%w: %q can not be posted manually", domain.ErrInvalidEntryType, typ)
	}
	reference := string(typ) + ":" + uuid.NewString()
	entry, err := s.Post(ctx, userID, amount, typ, reference, description)
	if err != nil {
		return nil, err
	}
	zap.L().Info("manual balance change",
		zap.Int("user_id", userID),
		zap.Float64("amount", entry.SignedAmount),
		zap.String("reference_id", reference))
	return entry, nil
}

// LockAccount takes the account row lock inside the caller's transaction.
func (s *Service) LockAccount(ctx context.Context, userID int) (*domain.User, error) {
	return s.repo.LockAccount(ctx, userID)
}

func (s *Service) GetBalance(ctx context.Context, userID int) (float64, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	if limit < 1 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	entries, err := s.repo.ListEntries(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Reconcile checks that the cached balance equals both the sum of the
// user's entries and the balance recorded by the latest entry.
func (s *Service) Reconcile(ctx context.Context, userID int) (*domain.Reconciliation, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum, count, last, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	cached := decimal.NewFromFloat(balance).Round(2)
	consistent := cached.Equal(decimal.NewFromFloat(sum).Round(2))
	if count > 0 {
		consistent = consistent && cached.Equal(decimal.NewFromFloat(last).Round(2))
	}
	if !consistent {
		zap.L().Error("ledger does not reproduce cash balance",
			zap.Int("user_id", userID),
			zap.Float64("cash_balance", balance),
			zap.Float64("ledger_sum", sum),
			zap.Float64("last_balance_after", last))
	}

	return &domain.Reconciliation{
		UserID:           userID,
		CashBalance:      balance,
		LedgerSum:        sum,
		LastBalanceAfter: last,
		Entries:          count,
		Consistent:       consistent,
	}, nil
}
