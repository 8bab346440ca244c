package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/metrics"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"github.com/GlebRadaev/roulette/internal/service/resolverservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SlipRepo interface {
	ListOpenByDraw(ctx context.Context, drawNumber int) ([]domain.Slip, error)
	LockByID(ctx context.Context, slipID int) (*domain.Slip, error)
	ListBets(ctx context.Context, slipID int) ([]domain.Bet, error)
	MarkSettled(ctx context.Context, slipID int, status domain.SlipStatus, winningNumber int, settledAt time.Time) error
}

type Ledger interface {
	LockAccount(ctx context.Context, userID int) (*domain.User, error)
	Post(ctx context.Context, userID int, amount float64, typ domain.EntryType, referenceID, description string) (*domain.LedgerEntry, error)
}

type Resolver interface {
	Resolve(ctx context.Context, drawNumber int) (*resolverservice.Result, error)
}

type Summary struct {
	DrawNumber int     `json:"draw_number"`
	Total      int     `json:"total"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Skipped    int     `json:"skipped"`
	Failed     int     `json:"failed"`
	Payout     float64 `json:"payout"`
}

type outcome int

const (
	outcomeLost outcome = iota
	outcomeWon
)

type Service struct {
	slips     SlipRepo
	ledger    Ledger
	resolver  Resolver
	txManager pg.TXManager
	workers   int
}

func New(slips SlipRepo, ledger Ledger, resolver Resolver, txManager pg.TXManager, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		slips:     slips,
		ledger:    ledger,
		resolver:  resolver,
		txManager: txManager,
		workers:   workers,
	}
}

// Settle pays out every open slip of a draw. Each slip is settled in its own
// transaction, so one failing slip leaves the rest untouched and stays open
// for the next run. ErrNotYetDrawn is returned untouched for the caller to retry.
func (s *Service) Settle(ctx context.Context, drawNumber int) (sum Summary, err error) {
	started := time.Now()
	sum.DrawNumber = drawNumber
	payout := decimal.Zero
	defer func() {
		metrics.RecordSettle(err, sum.Won, sum.Lost, sum.Skipped, sum.Failed, sum.Payout, started)
	}()

	result, err := s.resolver.Resolve(ctx, drawNumber)
	if err != nil {
		return sum, err
	}
	slips, err := s.slips.ListOpenByDraw(ctx, drawNumber)
	if err != nil {
		return sum, fmt.Errorf("list slips of draw %d: %w", drawNumber, err)
	}
	sum.Total = len(slips)
	if len(slips) == 0 {
		return sum, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, slip := range slips {
		g.Go(func() error {
			out, amount, err := s.settleSlip(ctx, slip, result)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrAlreadySettled):
				sum.Skipped++
			case err != nil:
				sum.Failed++
				zap.L().Error("slip settlement failed",
					zap.Int("slip_id", slip.ID),
					zap.Int("draw_number", drawNumber),
					zap.Error(err))
			case out == outcomeWon:
				sum.Won++
				payout = payout.Add(amount)
			default:
				sum.Lost++
			}
			return nil
		})
	}
	_ = g.Wait()
	sum.Payout = payout.InexactFloat64()

	zap.L().Info("draw settled",
		zap.Int("draw_number", drawNumber),
		zap.Int("winning_number", result.Number),
		zap.String("source", string(result.Source)),
		zap.Int("won", sum.Won),
		zap.Int("lost", sum.Lost),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed),
		zap.String("payout", payout.StringFixed(2)))
	return sum, nil
}

// settleSlip takes the account lock before the slip lock, the same order
// as every other balance mutation.
func (s *Service) settleSlip(ctx context.Context, slip domain.Slip, result *resolverservice.Result) (out outcome, amount decimal.Decimal, err error) {
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.LockAccount(ctx, slip.UserID); err != nil {
			return err
		}
		locked, err := s.slips.LockByID(ctx, slip.ID)
		if err != nil {
			return err
		}
		if !locked.Status.IsOpen() {
			return domain.ErrAlreadySettled
		}
		bets, err := s.slips.ListBets(ctx, locked.ID)
		if err != nil {
			return err
		}
		// won only with a positive payout, so a won slip always has its win entry
		won, total, err := roulette.EvaluateBets(bets, result.Number)
		if err != nil {
			return err
		}

		status := domain.SlipStatusLost
		if won {
			status = domain.SlipStatusWon
		}
		if err := s.slips.MarkSettled(ctx, locked.ID, status, result.Number, time.Now().UTC()); err != nil {
			return err
		}
		if !won {
			out = outcomeLost
			return nil
		}
		if _, err := s.ledger.Post(ctx, locked.UserID, total.InexactFloat64(), domain.EntryWin,
			"slip:"+strconv.Itoa(locked.ID),
			fmt.Sprintf("Win on draw %d, slip %s", result.DrawNumber, locked.SlipNumber)); err != nil {
			return err
		}
		out, amount = outcomeWon, total
		return nil
	})
	return out, amount, err
}
