package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/roulette/internal/cache"
	"github.com/GlebRadaev/roulette/internal/config"
	"github.com/GlebRadaev/roulette/internal/handlers"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/GlebRadaev/roulette/internal/repo"
	"github.com/GlebRadaev/roulette/internal/scheduler"
	"github.com/GlebRadaev/roulette/internal/service"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/GlebRadaev/roulette/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sch   *scheduler.Service
	pool  *pgxpool.Pool
	redis *goredis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()
	a.cfg = cfg

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.openStorage(ctx); err != nil {
		return err
	}
	a.openCache(ctx)
	auth.SetSecret(cfg.JWTSecret)

	a.repo = repo.New(pg.New(a.pool), pg.NewTXManager(a.pool))
	a.srv = service.New(cfg, a.repo, cache.New(a.redis, cfg.RecentSpins))
	a.api = handlers.New(a.srv)
	a.sch = scheduler.New(cfg, a.srv.DrawService, a.srv.SettlementService, a.repo.SlipRepo)

	if err := a.srv.AuthService.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		return fmt.Errorf("can't create admin account: %w", err)
	}

	a.startHTTPServer(ctx)
	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("roulette service started",
		zap.Duration("draw_interval", cfg.DrawInterval),
		zap.Bool("recent_spins_cache", a.redis != nil))
	return nil
}

func (a *Application) openStorage(ctx context.Context) error {
	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	return nil
}

// openCache leaves a.redis nil when Redis is not configured or not reachable.
// Recent spins are then read from postgres.
func (a *Application) openCache(ctx context.Context) {
	client := cache.NewClient(a.cfg.RedisAddress, a.cfg.RedisPassword, a.cfg.RedisDB)
	if err := cache.Ping(ctx, client, 3*time.Second); err != nil {
		zap.L().Warn("redis unavailable, recent spins are served from postgres", zap.Error(err))
		client.Close()
		client = nil
	}
	a.redis = client
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	// settlement workers plus the tick loop and request traffic
	if floor := int32(cfg.SettleWorkers + 4); cfgpool.MaxConns < floor {
		cfgpool.MaxConns = floor
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()
}

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sch.Start(ctx)
	}()
}

// close releases storage once the server and the scheduler have stopped.
func (a *Application) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("redis close", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.close()

	return appErr
}
