package commissionservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/roulette/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Add(ctx context.Context, userID int, day time.Time, stake, rate float64) error
	List(ctx context.Context, userID int, from, to time.Time) ([]domain.CommissionSummary, error)
}

// Rate is the cashier commission taken on every stake at sale time.
var Rate = decimal.RequireFromString("0.04")

type Service struct {
	repo Repo
	loc  *time.Location
}

func New(repo Repo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo: repo,
		loc:  loc,
	}
}

// Day truncates t to the business day of the configured time zone.
func (s *Service) Day(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Record adds a sale to the seller's daily summary. It joins the sale transaction through ctx.
func (s *Service) Record(ctx context.Context, userID int, stake float64, at time.Time) error {
	amount := decimal.NewFromFloat(stake).Round(2)
	// the store recomputes the day's commission from its stake total
	if err := s.repo.Add(ctx, userID, s.Day(at), amount.InexactFloat64(), Rate.InexactFloat64()); err != nil {
		zap.L().Error("failed to record commission", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// Summaries returns daily rows between from and to inclusive, newest first.
func (s *Service) Summaries(ctx context.Context, userID int, from, to time.Time) ([]domain.CommissionSummary, error) {
	from, to = s.Day(from), s.Day(to)
	if to.Before(from) {
		from, to = to, from
	}
	summaries, err := s.repo.List(ctx, userID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch commission", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return summaries, nil
}
