package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/roulette/internal/config"
	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/service/settlementservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DrawMachine interface {
	Recover(ctx context.Context) (*domain.DrawState, error)
	Step(ctx context.Context) (*domain.Draw, *domain.DrawState, error)
	GetState(ctx context.Context) (*domain.DrawState, error)
	DetectGaps(ctx context.Context) ([]int, error)
}

type Settler interface {
	Settle(ctx context.Context, drawNumber int) (settlementservice.Summary, error)
}

type SlipRepo interface {
	ListDrawsWithOpenSlips(ctx context.Context, upTo int) ([]int, error)
}

// Service drives the draw cycle and settles completed draws in the background.
// Every instance of the server may run one; draws and settlement are idempotent.
type Service struct {
	draws          DrawMachine
	settler        Settler
	slips          SlipRepo
	workerPool     WorkerPoolI
	tickInterval   time.Duration
	settleInterval time.Duration

	settling sync.Map
	wg       sync.WaitGroup
}

func New(cfg *config.Config, draws DrawMachine, settler Settler, slips SlipRepo) *Service {
	return &Service{
		draws:          draws,
		settler:        settler,
		slips:          slips,
		workerPool:     NewWorkerPool(cfg.SettleWorkers),
		tickInterval:   cfg.TickInterval,
		settleInterval: cfg.SettleInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	state, err := s.draws.Recover(ctx)
	if err != nil {
		zap.L().Error("Draw state recovery failed, the tick loop will retry", zap.Error(err))
	} else {
		zap.L().Info("Scheduler started",
			zap.Int("next_draw_number", state.NextDrawNumber),
			zap.String("phase", string(state.Phase)))
	}
	if _, err := s.draws.DetectGaps(ctx); err != nil {
		zap.L().Warn("Gap detection failed", zap.Error(err))
	}
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	tick := time.NewTicker(s.tickInterval)
	defer tick.Stop()
	sweep := time.NewTicker(s.settleInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			s.wg.Wait()
			s.workerPool.Close()
			return
		case <-tick.C:
			s.step(ctx)
		case <-sweep.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) step(ctx context.Context) {
	draw, _, err := s.draws.Step(ctx)
	if err != nil {
		zap.L().Error("Draw step failed", zap.Error(err))
		return
	}
	if draw == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.enqueue(ctx, draw.DrawNumber); err != nil {
			zap.L().Warn("Settlement not queued", zap.Int("draw_number", draw.DrawNumber), zap.Error(err))
		}
	}()
}

// sweep settles every completed draw that still has open slips. It picks up
// draws whose settlement failed or was missed by the tick loop.
func (s *Service) sweep(ctx context.Context) {
	state, err := s.draws.GetState(ctx)
	if err != nil {
		zap.L().Error("Failed to read draw state for settlement", zap.Error(err))
		return
	}
	draws, err := s.slips.ListDrawsWithOpenSlips(ctx, state.CurrentDrawNumber)
	if err != nil {
		zap.L().Error("Failed to fetch draws for settlement", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, drawNumber := range draws {
		g.Go(func() error {
			return s.enqueue(ctx, drawNumber)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error queueing settlements", zap.Error(err))
	}
}

// enqueue hands a draw to the worker pool unless it is already being settled.
func (s *Service) enqueue(ctx context.Context, drawNumber int) error {
	if _, loaded := s.settling.LoadOrStore(drawNumber, struct{}{}); loaded {
		return nil
	}
	err := s.workerPool.AddTask(ctx, func() error {
		defer s.settling.Delete(drawNumber)
		return s.settle(ctx, drawNumber)
	})
	if err != nil {
		s.settling.Delete(drawNumber)
		return err
	}
	return nil
}

func (s *Service) settle(ctx context.Context, drawNumber int) error {
	sum, err := s.settler.Settle(ctx, drawNumber)
	switch {
	case errors.Is(err, domain.ErrNotYetDrawn):
		zap.L().Debug("Draw not yet drawn, settlement postponed", zap.Int("draw_number", drawNumber))
		return nil
	case err != nil:
		return err
	}
	if sum.Failed > 0 {
		zap.L().Warn("Slips left open for retry", zap.Int("draw_number", drawNumber), zap.Int("failed", sum.Failed))
	}
	return nil
}
