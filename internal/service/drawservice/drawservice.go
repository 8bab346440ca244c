package drawservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/metrics"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"go.uber.org/zap"
)

type Repo interface {
	GetState(ctx context.Context) (*domain.DrawState, error)
	ShareState(ctx context.Context) (*domain.DrawState, error)
	CreateState(ctx context.Context, state *domain.DrawState) (*domain.DrawState, error)
	UpdateState(ctx context.Context, state *domain.DrawState, expectedVersion int64) (*domain.DrawState, error)
	InsertDraw(ctx context.Context, draw *domain.Draw) (bool, error)
	GetDraw(ctx context.Context, drawNumber int) (*domain.Draw, error)
	ListRecentDraws(ctx context.Context, limit int) ([]domain.Draw, error)
	GetForcedNumber(ctx context.Context, drawNumber int) (*domain.ForcedNumber, error)
	SetForcedNumber(ctx context.Context, forced *domain.ForcedNumber) error
	DeleteForcedNumber(ctx context.Context, drawNumber int) error
	FindGaps(ctx context.Context, upTo int) ([]int, error)
}

type Projection interface {
	Push(ctx context.Context, spin domain.Spin) error
	Recent(ctx context.Context, n int) ([]domain.Spin, error)
	Rebuild(ctx context.Context, draws []domain.Draw) error
	SaveState(ctx context.Context, state *domain.DrawState) error
	LoadState(ctx context.Context) (*domain.DrawState, error)
}

const maxStateRetries = 3

type Service struct {
	repo      Repo
	spins     Projection
	txManager pg.TXManager
	interval  time.Duration
	recent    int

	now    func() time.Time
	sample func() int
}

func New(repo Repo, spins Projection, txManager pg.TXManager, interval time.Duration, recent int) *Service {
	if interval < time.Second {
		interval = 180 * time.Second
	}
	if recent < 1 {
		recent = 20
	}
	return &Service{
		repo:      repo,
		spins:     spins,
		txManager: txManager,
		interval:  interval,
		recent:    recent,
		now:       time.Now,
		sample:    func() int { return rand.IntN(roulette.MaxNumber + 1) },
	}
}

func (s *Service) Interval() time.Duration {
	return s.interval
}

// Recover loads the state row on startup, creating it on a cold start, and
// realigns a deadline that no longer fits the configured interval. It also
// rebuilds the spins projection from the draws table.
func (s *Service) Recover(ctx context.Context) (*domain.DrawState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if state.Phase == domain.PhaseCountingDown && state.CountdownDeadline.After(now.Add(s.interval)) {
		aligned := *state
		aligned.CountdownDeadline = AlignDeadline(now, s.interval)
		updated, err := s.repo.UpdateState(ctx, &aligned, state.Version)
		switch {
		case errors.Is(err, domain.ErrConcurrentModification):
			if state, err = s.repo.GetState(ctx); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		default:
			zap.L().Info("draw deadline realigned",
				zap.Time("old", state.CountdownDeadline),
				zap.Time("new", updated.CountdownDeadline))
			state = updated
		}
	}

	if err := s.RebuildProjection(ctx); err != nil {
		zap.L().Warn("spins projection rebuild failed", zap.Error(err))
	}
	s.snapshot(ctx, state)
	return state, nil
}

func (s *Service) load(ctx context.Context) (*domain.DrawState, error) {
	state, err := s.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}
	state, err = s.repo.CreateState(ctx, &domain.DrawState{
		CurrentDrawNumber: 0,
		NextDrawNumber:    1,
		CountdownDeadline: AlignDeadline(s.now(), s.interval),
		Phase:             domain.PhaseCountingDown,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("draw state initialised", zap.Int("next_draw_number", state.NextDrawNumber))
	return state, nil
}

// GetState returns the persisted state, creating it on a cold start.
func (s *Service) GetState(ctx context.Context) (*domain.DrawState, error) {
	return s.load(ctx)
}

// ShareState re-reads the state inside the caller's transaction and holds it
// until commit, so the cycle cannot leave counting_down underneath a sale.
func (s *Service) ShareState(ctx context.Context) (*domain.DrawState, error) {
	return s.repo.ShareState(ctx)
}

// commit applies next over cur. A lost race returns the state written by the winner.
func (s *Service) commit(ctx context.Context, cur, next *domain.DrawState) (*domain.DrawState, bool, error) {
	updated, err := s.repo.UpdateState(ctx, next, cur.Version)
	metrics.RecordTransition(string(next.Phase), err)
	if errors.Is(err, domain.ErrConcurrentModification) {
		latest, err := s.repo.GetState(ctx)
		if err != nil {
			return nil, false, err
		}
		return latest, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

// Tick moves a counting-down state to drawing once its deadline has passed.
func (s *Service) Tick(ctx context.Context, state *domain.DrawState) (*domain.DrawState, bool, error) {
	if state.Phase != domain.PhaseCountingDown || s.now().Before(state.CountdownDeadline) {
		return state, false, nil
	}
	phase, err := NextPhase(state.Phase, EventDeadline)
	if err != nil {
		return nil, false, err
	}
	next := *state
	next.Phase = phase
	return s.commit(ctx, state, &next)
}

// Draw picks the winning number of NextDrawNumber, writes the authoritative
// draw row and moves the state to settling in one transaction. The forced
// number for the draw wins over the random sample. When another instance
// has already drawn, its draw is returned unchanged.
func (s *Service) Draw(ctx context.Context, state *domain.DrawState) (*domain.Draw, *domain.DrawState, error) {
	phase, err := NextPhase(state.Phase, EventDrawn)
	if err != nil {
		return nil, nil, err
	}

	drawNumber := state.NextDrawNumber
	var draw *domain.Draw
	var updated *domain.DrawState
	var source string
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		forced, err := s.repo.GetForcedNumber(ctx, drawNumber)
		if err != nil {
			return err
		}

		number, isManual := s.sample(), false
		source = "random"
		if forced != nil && roulette.ValidNumber(forced.WinningNumber) {
			number, isManual = forced.WinningNumber, true
			source = "forced"
		} else if state.ManualMode {
			zap.L().Warn("manual mode without a forced number, drawing at random", zap.Int("draw_number", drawNumber))
		}

		candidate := &domain.Draw{
			DrawNumber:    drawNumber,
			WinningNumber: number,
			WinningColor:  string(roulette.ColorOf(number)),
			IsManual:      isManual,
			DrawnAt:       s.now().UTC(),
		}
		inserted, err := s.repo.InsertDraw(ctx, candidate)
		if err != nil {
			return err
		}
		draw = candidate
		if !inserted {
			// the row is immutable once written; adopt it
			if draw, err = s.repo.GetDraw(ctx, drawNumber); err != nil {
				return err
			}
			if draw == nil {
				return fmt.Errorf("draw %d vanished after insert conflict", drawNumber)
			}
		}

		next := *state
		next.Phase = phase
		next.LastDrawNumber = &draw.DrawNumber
		next.LastWinningNumber = &draw.WinningNumber
		updated, err = s.repo.UpdateState(ctx, &next, state.Version)
		return err
	})
	metrics.RecordTransition(string(phase), err)

	if errors.Is(err, domain.ErrConcurrentModification) {
		existing, gErr := s.repo.GetDraw(ctx, drawNumber)
		if gErr != nil {
			return nil, nil, gErr
		}
		latest, gErr := s.repo.GetState(ctx)
		if gErr != nil {
			return nil, nil, gErr
		}
		return existing, latest, nil
	}
	metrics.RecordDraw(err, source)
	if err != nil {
		zap.L().Error("draw failed", zap.Int("draw_number", drawNumber), zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("draw completed",
		zap.Int("draw_number", draw.DrawNumber),
		zap.Int("winning_number", draw.WinningNumber),
		zap.String("color", draw.WinningColor),
		zap.Bool("manual", draw.IsManual))
	if s.spins != nil {
		if err := s.spins.Push(ctx, domain.Spin{
			DrawNumber: draw.DrawNumber,
			Number:     draw.WinningNumber,
			Color:      draw.WinningColor,
			DrawnAt:    draw.DrawnAt,
		}); err != nil {
			zap.L().Warn("spins projection push failed", zap.Int("draw_number", draw.DrawNumber), zap.Error(err))
		}
	}
	return draw, updated, nil
}

// Advance opens the following draw: the drawn number becomes current and
// the deadline is realigned. The forced number of the completed draw is cleared.
func (s *Service) Advance(ctx context.Context, state *domain.DrawState) (*domain.DrawState, bool, error) {
	phase, err := NextPhase(state.Phase, EventAdvanced)
	if err != nil {
		return nil, false, err
	}
	completed := state.NextDrawNumber
	next := *state
	next.Phase = phase
	next.CurrentDrawNumber = completed
	next.NextDrawNumber = completed + 1
	next.CountdownDeadline = AlignDeadline(s.now(), s.interval)

	var updated *domain.DrawState
	var won bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, won, err = s.commit(ctx, state, &next)
		if err != nil || !won {
			return err
		}
		return s.repo.DeleteForcedNumber(ctx, completed)
	})
	if err != nil {
		return nil, false, err
	}
	if won {
		zap.L().Info("draw advanced",
			zap.Int("current_draw_number", updated.CurrentDrawNumber),
			zap.Int("next_draw_number", updated.NextDrawNumber),
			zap.Time("deadline", updated.CountdownDeadline))
	}
	return updated, won, nil
}

// Step runs every transition that is due and returns the draw completed
// by this call, if any. It is safe to call from several schedulers.
func (s *Service) Step(ctx context.Context) (*domain.Draw, *domain.DrawState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	var completed *domain.Draw
	for i := 0; i < 3; i++ {
		switch state.Phase {
		case domain.PhaseCountingDown:
			next, moved, err := s.Tick(ctx, state)
			if err != nil {
				return nil, nil, err
			}
			state = next
			if !moved && state.Phase == domain.PhaseCountingDown {
				s.snapshot(ctx, state)
				return completed, state, nil
			}
		case domain.PhaseDrawing:
			draw, next, err := s.Draw(ctx, state)
			if err != nil {
				return nil, nil, err
			}
			completed, state = draw, next
		case domain.PhaseSettling:
			next, _, err := s.Advance(ctx, state)
			if err != nil {
				return nil, nil, err
			}
			state = next
		default:
			return nil, nil, fmt.Errorf("unknown draw phase %q", state.Phase)
		}
	}
	s.snapshot(ctx, state)
	return completed, state, nil
}

// ForceAdvance pulls the deadline to now and steps, drawing immediately.
func (s *Service) ForceAdvance(ctx context.Context) (*domain.Draw, *domain.DrawState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if state.Phase == domain.PhaseCountingDown && s.now().Before(state.CountdownDeadline) {
		next := *state
		next.CountdownDeadline = s.now()
		if _, _, err := s.commit(ctx, state, &next); err != nil {
			return nil, nil, err
		}
		zap.L().Info("draw advanced by operator", zap.Int("draw_number", state.NextDrawNumber))
	}
	return s.Step(ctx)
}

// SetForcedNumber fixes the winning number of a draw that has not been drawn yet.
func (s *Service) SetForcedNumber(ctx context.Context, drawNumber, number, adminID int) error {
	if !roulette.ValidNumber(number) {
		return domain.ErrInvalidNumber
	}
	state, err := s.load(ctx)
	if err != nil {
		return err
	}
	if drawNumber < state.NextDrawNumber ||
		(drawNumber == state.NextDrawNumber && state.Phase != domain.PhaseCountingDown) {
		return domain.ErrDrawAlreadyDrawn
	}
	existing, err := s.repo.GetDraw(ctx, drawNumber)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDrawAlreadyDrawn
	}
	if err := s.repo.SetForcedNumber(ctx, &domain.ForcedNumber{
		DrawNumber:    drawNumber,
		WinningNumber: number,
		CreatedBy:     adminID,
	}); err != nil {
		return err
	}
	zap.L().Info("forced number set", zap.Int("draw_number", drawNumber), zap.Int("admin_id", adminID))
	return nil
}

func (s *Service) SetManualMode(ctx context.Context, manual bool) (*domain.DrawState, error) {
	for i := 0; i < maxStateRetries; i++ {
		state, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		if state.ManualMode == manual {
			return state, nil
		}
		next := *state
		next.ManualMode = manual
		updated, won, err := s.commit(ctx, state, &next)
		if err != nil {
			return nil, err
		}
		if won {
			zap.L().Info("draw mode changed", zap.Bool("manual", manual))
			s.snapshot(ctx, updated)
			return updated, nil
		}
	}
	return nil, domain.ErrConcurrentModification
}

// StateView is what displays poll.
type StateView struct {
	State            *domain.DrawState
	CountdownSeconds int
	RecentDraws      []domain.Spin
}

func (s *Service) View(ctx context.Context) (*StateView, error) {
	state, err := s.viewState(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentDraws(ctx)
	if err != nil {
		return nil, err
	}
	return &StateView{
		State:            state,
		CountdownSeconds: state.CountdownSeconds(s.now()),
		RecentDraws:      recent,
	}, nil
}

// viewState serves display polling from the snapshot written on every step
// and reads postgres once it has expired.
func (s *Service) viewState(ctx context.Context) (*domain.DrawState, error) {
	if s.spins != nil {
		state, err := s.spins.LoadState(ctx)
		if err != nil {
			zap.L().Warn("draw state snapshot unavailable", zap.Error(err))
		}
		if state != nil {
			return state, nil
		}
	}
	return s.load(ctx)
}

// RecentDraws reads the projection and falls back to the draws table.
func (s *Service) RecentDraws(ctx context.Context) ([]domain.Spin, error) {
	if s.spins != nil {
		spins, err := s.spins.Recent(ctx, s.recent)
		if err == nil && len(spins) > 0 {
			return spins, nil
		}
		if err != nil {
			zap.L().Warn("spins projection unavailable", zap.Error(err))
		}
	}
	draws, err := s.repo.ListRecentDraws(ctx, s.recent)
	if err != nil {
		return nil, err
	}
	spins := make([]domain.Spin, len(draws))
	for i, d := range draws {
		spins[i] = domain.Spin{DrawNumber: d.DrawNumber, Number: d.WinningNumber, Color: d.WinningColor, DrawnAt: d.DrawnAt}
	}
	return spins, nil
}

func (s *Service) RebuildProjection(ctx context.Context) error {
	if s.spins == nil {
		return nil
	}
	draws, err := s.repo.ListRecentDraws(ctx, s.recent)
	if err != nil {
		return err
	}
	return s.spins.Rebuild(ctx, draws)
}

// DetectGaps lists completed draw numbers that have no draws row.
func (s *Service) DetectGaps(ctx context.Context) ([]int, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if state.CurrentDrawNumber < 1 {
		return nil, nil
	}
	gaps, err := s.repo.FindGaps(ctx, state.CurrentDrawNumber)
	if err != nil {
		return nil, err
	}
	if len(gaps) > 0 {
		zap.L().Warn("draw number gaps detected", zap.Ints("draws", gaps))
	}
	return gaps, nil
}

func (s *Service) snapshot(ctx context.Context, state *domain.DrawState) {
	if s.spins == nil || state == nil {
		return
	}
	if err := s.spins.SaveState(ctx, state); err != nil {
		zap.L().Debug("draw state snapshot failed", zap.Error(err))
	}
}
