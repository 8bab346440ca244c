package service

import (
	"github.com/GlebRadaev/roulette/internal/cache"
	"github.com/GlebRadaev/roulette/internal/config"
	"github.com/GlebRadaev/roulette/internal/repo"
	"github.com/GlebRadaev/roulette/internal/service/authservice"
	"github.com/GlebRadaev/roulette/internal/service/commissionservice"
	"github.com/GlebRadaev/roulette/internal/service/drawservice"
	"github.com/GlebRadaev/roulette/internal/service/ledgerservice"
	"github.com/GlebRadaev/roulette/internal/service/resolverservice"
	"github.com/GlebRadaev/roulette/internal/service/settlementservice"
	"github.com/GlebRadaev/roulette/internal/service/slipservice"
	pkgauth "github.com/GlebRadaev/roulette/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	LedgerService     *ledgerservice.Service
	CommissionService *commissionservice.Service
	ResolverService   *resolverservice.Service
	DrawService       *drawservice.Service
	SlipService       *slipservice.Service
	SettlementService *settlementservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, spins *cache.SpinCache) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.TxManager)
	commissionService := commissionservice.New(repo.CommissionRepo, cfg.Location())
	resolverService := resolverservice.New(repo.DrawRepo, spins)
	drawService := drawservice.New(repo.DrawRepo, spins, repo.TxManager, cfg.DrawInterval, cfg.RecentSpins)
	slipService := slipservice.New(repo.SlipRepo, ledgerService, commissionService, drawService, repo.TxManager)
	settlementService := settlementservice.New(repo.SlipRepo, ledgerService, resolverService, repo.TxManager, cfg.SettleWorkers)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(cfg.BcryptCost), &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		CommissionService: commissionService,
		ResolverService:   resolverService,
		DrawService:       drawService,
		SlipService:       slipService,
		SettlementService: settlementService,
	}
}
