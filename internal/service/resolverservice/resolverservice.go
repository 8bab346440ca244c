package resolverservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/metrics"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"go.uber.org/zap"
)

type Source string

const (
	SourceDraws  Source = "draws"
	SourceSpins  Source = "spins"
	SourceForced Source = "forced"
	SourceState  Source = "state"
)

type Result struct {
	DrawNumber int            `json:"draw_number"`
	Number     int            `json:"number"`
	Color      roulette.Color `json:"color"`
	DrawnAt    time.Time      `json:"drawn_at"`
	Source     Source         `json:"source"`
}

type DrawRepo interface {
	GetDraw(ctx context.Context, drawNumber int) (*domain.Draw, error)
	GetForcedNumber(ctx context.Context, drawNumber int) (*domain.ForcedNumber, error)
	GetState(ctx context.Context) (*domain.DrawState, error)
}

type SpinProjection interface {
	Find(ctx context.Context, drawNumber int) (*domain.Spin, error)
}

type Service struct {
	drawRepo DrawRepo
	spins    SpinProjection
}

func New(drawRepo DrawRepo, spins SpinProjection) *Service {
	return &Service{
		drawRepo: drawRepo,
		spins:    spins,
	}
}

// Resolve answers the winning number of a draw. The draws table is
// authoritative; the spins projection, the forced-number table and the
// state row's last result are consulted in that order only when it has no
// row. ErrNotYetDrawn means no source knows the draw yet.
func (s *Service) Resolve(ctx context.Context, drawNumber int) (*Result, error) {
	draw, err := s.drawRepo.GetDraw(ctx, drawNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve draw %d: %w", drawNumber, err)
	}
	if draw != nil {
		s.crossCheck(ctx, draw)
		return s.found(&Result{
			DrawNumber: draw.DrawNumber,
			Number:     draw.WinningNumber,
			Color:      roulette.ColorOf(draw.WinningNumber),
			DrawnAt:    draw.DrawnAt,
			Source:     SourceDraws,
		}), nil
	}

	if spin := s.findSpin(ctx, drawNumber); spin != nil && roulette.ValidNumber(spin.Number) {
		return s.found(&Result{
			DrawNumber: drawNumber,
			Number:     spin.Number,
			Color:      roulette.ColorOf(spin.Number),
			DrawnAt:    spin.DrawnAt,
			Source:     SourceSpins,
		}), nil
	}

	state, err := s.drawRepo.GetState(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve draw %d: %w", drawNumber, err)
	}
	if state == nil {
		return nil, domain.ErrNotYetDrawn
	}

	if drawNumber == state.NextDrawNumber-1 {
		forced, err := s.drawRepo.GetForcedNumber(ctx, drawNumber)
		if err != nil {
			return nil, fmt.Errorf("resolve draw %d: %w", drawNumber, err)
		}
		if forced != nil && roulette.ValidNumber(forced.WinningNumber) {
			return s.found(&Result{
				DrawNumber: drawNumber,
				Number:     forced.WinningNumber,
				Color:      roulette.ColorOf(forced.WinningNumber),
				DrawnAt:    forced.CreatedAt,
				Source:     SourceForced,
			}), nil
		}
	}

	if state.LastDrawNumber != nil && *state.LastDrawNumber == drawNumber &&
		state.LastWinningNumber != nil && roulette.ValidNumber(*state.LastWinningNumber) {
		return s.found(&Result{
			DrawNumber: drawNumber,
			Number:     *state.LastWinningNumber,
			Color:      roulette.ColorOf(*state.LastWinningNumber),
			DrawnAt:    state.UpdatedAt,
			Source:     SourceState,
		}), nil
	}

	return nil, domain.ErrNotYetDrawn
}

func (s *Service) found(r *Result) *Result {
	metrics.RecordResolve(string(r.Source))
	return r
}

func (s *Service) findSpin(ctx context.Context, drawNumber int) *domain.Spin {
	if s.spins == nil {
		return nil
	}
	spin, err := s.spins.Find(ctx, drawNumber)
	if err != nil {
		zap.L().Warn("spins projection unavailable", zap.Int("draw_number", drawNumber), zap.Error(err))
		return nil
	}
	return spin
}

// crossCheck never changes the answer: the draws table wins.
func (s *Service) crossCheck(ctx context.Context, draw *domain.Draw) {
	spin := s.findSpin(ctx, draw.DrawNumber)
	if spin == nil || spin.Number == draw.WinningNumber {
		return
	}
	metrics.RecordInconsistency()
	zap.L().Error("draw result sources disagree",
		zap.Int("draw_number", draw.DrawNumber),
		zap.Int("draws_number", draw.WinningNumber),
		zap.Int("projection_number", spin.Number),
		zap.Error(domain.ErrDataInconsistency))
}
