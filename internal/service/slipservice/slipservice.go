package slipservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/metrics"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"github.com/GlebRadaev/roulette/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	CreateSlip(ctx context.Context, slip *domain.Slip, bets []domain.Bet) (*domain.Slip, error)
	FindByNumber(ctx context.Context, slipNumber string) (*domain.Slip, error)
	LockByNumber(ctx context.Context, slipNumber string) (*domain.Slip, error)
	ListBets(ctx context.Context, slipID int) ([]domain.Bet, error)
	MarkCancelled(ctx context.Context, slipID int, at time.Time) error
	MarkPaid(ctx context.Context, slipID int, amount float64) error
}

type Ledger interface {
	Post(ctx context.Context, userID int, amount float64, typ domain.EntryType, referenceID, description string) (*domain.LedgerEntry, error)
}

type Commission interface {
	Record(ctx context.Context, userID int, stake float64, at time.Time) error
}

type DrawState interface {
	GetState(ctx context.Context) (*domain.DrawState, error)
	ShareState(ctx context.Context) (*domain.DrawState, error)
}

const maxBetsPerSlip = 50

// BetInput is one wager as submitted by the cashier. Odds come from the house
// table; a non-zero Multiplier must match it.
type BetInput struct {
	Kind       roulette.Kind
	Numbers    []int
	Index      int
	Even       roulette.EvenMoney
	Amount     float64
	Multiplier float64
}

type Receipt struct {
	Slip    *domain.Slip
	Bets    []domain.Bet
	Balance float64
}

type Details struct {
	Slip   *domain.Slip
	Bets   []domain.Bet
	Payout float64
}

type Service struct {
	repo       Repo
	ledger     Ledger
	commission Commission
	draws      DrawState
	txManager  pg.TXManager

	now func() time.Time
}

func New(repo Repo, ledger Ledger, commission Commission, draws DrawState, txManager pg.TXManager) *Service {
	return &Service{
		repo:       repo,
		ledger:     ledger,
		commission: commission,
		draws:      draws,
		txManager:  txManager,
		now:        time.Now,
	}
}

func reference(slipID int) string {
	return "slip:" + strconv.Itoa(slipID)
}

// open reports whether slips can still be sold or cancelled against drawNumber.
func (s *Service) open(state *domain.DrawState, drawNumber int) bool {
	return state != nil &&
		state.NextDrawNumber == drawNumber &&
		state.Phase == domain.PhaseCountingDown &&
		s.now().Before(state.CountdownDeadline)
}

// stillOpen repeats the open check on the share-locked state row inside the
// transaction. An operator advance may have drawn since the first read.
func (s *Service) stillOpen(ctx context.Context, drawNumber int) error {
	state, err := s.draws.ShareState(ctx)
	if err != nil {
		return err
	}
	if !s.open(state, drawNumber) {
		return domain.ErrDrawClosed
	}
	return nil
}

func buildBets(inputs []BetInput) ([]domain.Bet, decimal.Decimal, decimal.Decimal, error) {
	if len(inputs) == 0 || len(inputs) > maxBetsPerSlip {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: a slip holds 1..%d bets", domain.ErrInvalidBet, maxBetsPerSlip)
	}
	bets := make([]domain.Bet, 0, len(inputs))
	stake, potential := decimal.Zero, decimal.Zero
	for i, in := range inputs {
		target, err := roulette.NewTarget(in.Kind, in.Numbers, in.Index, in.Even)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: bet %d: %v", domain.ErrInvalidBet, i+1, err)
		}
		amount := decimal.NewFromFloat(in.Amount).Round(2)
		if !amount.IsPositive() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: bet %d", domain.ErrInvalidAmount, i+1)
		}
		multiplier, ok := roulette.DefaultMultiplier(target.Kind)
		if !ok {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: bet %d has no odds", domain.ErrInvalidBet, i+1)
		}
		if in.Multiplier != 0 && !decimal.NewFromFloat(in.Multiplier).Round(2).Equal(multiplier) {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: bet %d multiplier must be %s",
				domain.ErrInvalidBet, i+1, multiplier.String())
		}
		encoded, err := roulette.MarshalTarget(target)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		ret := roulette.PotentialReturn(amount, multiplier)
		bets = append(bets, domain.Bet{
			BetType:         string(target.Kind),
			Target:          encoded,
			Amount:          amount.InexactFloat64(),
			Multiplier:      multiplier.InexactFloat64(),
			PotentialReturn: ret.InexactFloat64(),
		})
		stake = stake.Add(amount)
		potential = potential.Add(ret)
	}
	return bets, stake, potential, nil
}

// CreateSlip sells a slip against the open draw. The stake debit, the slip
// rows and the commission line are written in one transaction.
func (s *Service) CreateSlip(ctx context.Context, userID, drawNumber int, inputs []BetInput) (receipt *Receipt, err error) {
	defer func() { metrics.RecordSlip("create", err) }()

	bets, stake, potential, err := buildBets(inputs)
	if err != nil {
		return nil, err
	}
	state, err := s.draws.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if !s.open(state, drawNumber) {
		return nil, domain.ErrDrawClosed
	}

	now := s.now().UTC()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.stillOpen(ctx, drawNumber); err != nil {
			return err
		}
		slip, err := s.repo.CreateSlip(ctx, &domain.Slip{
			SlipNumber:      validate.NewSlipNumber(),
			UserID:          userID,
			DrawNumber:      drawNumber,
			TotalStake:      stake.InexactFloat64(),
			PotentialPayout: potential.InexactFloat64(),
			Status:          domain.SlipStatusPending,
			CreatedAt:       now,
		}, bets)
		if err != nil {
			return err
		}
		entry, err := s.ledger.Post(ctx, userID, stake.Neg().InexactFloat64(), domain.EntryBet,
			reference(slip.ID), fmt.Sprintf("Bet on draw %d, slip %s", drawNumber, slip.SlipNumber))
		if err != nil {
			return err
		}
		if err := s.commission.Record(ctx, userID, stake.InexactFloat64(), now); err != nil {
			return err
		}
		receipt = &Receipt{Slip: slip, Bets: bets, Balance: entry.BalanceAfter}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("slip sold",
		zap.String("slip_number", receipt.Slip.SlipNumber),
		zap.Int("draw_number", drawNumber),
		zap.Int("user_id", userID),
		zap.String("stake", stake.StringFixed(2)))
	return receipt, nil
}

// GetSlipStatus returns the slip with its bets and the settled payout.
func (s *Service) GetSlipStatus(ctx context.Context, slipNumber string) (*Details, error) {
	if !validate.IsLuna(slipNumber) {
		return nil, domain.ErrSlipNotFound
	}
	slip, err := s.repo.FindByNumber(ctx, slipNumber)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, domain.ErrSlipNotFound
	}
	bets, err := s.repo.ListBets(ctx, slip.ID)
	if err != nil {
		return nil, err
	}
	payout, err := settledPayout(slip, bets)
	if err != nil {
		return nil, err
	}
	return &Details{Slip: slip, Bets: bets, Payout: payout}, nil
}

func settledPayout(slip *domain.Slip, bets []domain.Bet) (float64, error) {
	if slip.WinningNumber == nil || (slip.Status != domain.SlipStatusWon && slip.Status != domain.SlipStatusPaid) {
		return 0, nil
	}
	_, payout, err := roulette.EvaluateBets(bets, *slip.WinningNumber)
	if err != nil {
		return 0, err
	}
	return payout.InexactFloat64(), nil
}

// lock loads the slip for update and checks who may touch it.
func (s *Service) lock(ctx context.Context, userID int, role domain.Role, slipNumber string) (*domain.Slip, error) {
	if !validate.IsLuna(slipNumber) {
		return nil, domain.ErrSlipNotFound
	}
	slip, err := s.repo.LockByNumber(ctx, slipNumber)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && slip.UserID != userID {
		return nil, domain.ErrSlipNotFound
	}
	return slip, nil
}

// Cancel refunds the stake of a pending slip while its draw is still open.
func (s *Service) Cancel(ctx context.Context, userID int, role domain.Role, slipNumber string) (entry *domain.LedgerEntry, err error) {
	defer func() { metrics.RecordSlip("cancel", err) }()

	state, err := s.draws.GetState(ctx)
	if err != nil {
		return nil, err
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		slip, err := s.lock(ctx, userID, role, slipNumber)
		if err != nil {
			return err
		}
		if !slip.Status.IsOpen() || !s.open(state, slip.DrawNumber) {
			return domain.ErrSlipNotCancellable
		}
		if err := s.stillOpen(ctx, slip.DrawNumber); err != nil {
			if errors.Is(err, domain.ErrDrawClosed) {
				return domain.ErrSlipNotCancellable
			}
			return err
		}
		if err := s.repo.MarkCancelled(ctx, slip.ID, s.now().UTC()); err != nil {
			return err
		}
		entry, err = s.ledger.Post(ctx, slip.UserID, slip.TotalStake, domain.EntryRefund,
			"cancel:"+reference(slip.ID), fmt.Sprintf("Refund of slip %s", slip.SlipNumber))
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("slip cancelled", zap.String("slip_number", slipNumber), zap.Float64("refund", entry.SignedAmount))
	return entry, nil
}

// CashOut marks a won slip as paid. The win itself was credited at settlement.
func (s *Service) CashOut(ctx context.Context, userID int, role domain.Role, slipNumber string) (paid *domain.Slip, err error) {
	defer func() { metrics.RecordSlip("cashout", err) }()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		slip, err := s.lock(ctx, userID, role, slipNumber)
		if err != nil {
			return err
		}
		if slip.Status != domain.SlipStatusWon {
			return domain.ErrSlipNotWon
		}
		bets, err := s.repo.ListBets(ctx, slip.ID)
		if err != nil {
			return err
		}
		amount, err := settledPayout(slip, bets)
		if err != nil {
			return err
		}
		if err := s.repo.MarkPaid(ctx, slip.ID, amount); err != nil {
			return err
		}
		slip.Status = domain.SlipStatusPaid
		slip.PaidOutAmount = amount
		paid = slip
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrSlipNotWon) {
			zap.L().Error("cash-out failed", zap.String("slip_number", slipNumber), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("slip paid", zap.String("slip_number", slipNumber), zap.Float64("amount", paid.PaidOutAmount))
	return paid, nil
}
