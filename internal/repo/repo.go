package repo

import (
	"github.com/GlebRadaev/roulette/internal/pg"
	commissionrepo "github.com/GlebRadaev/roulette/internal/repo/commission-repo"
	drawrepo "github.com/GlebRadaev/roulette/internal/repo/draw-repo"
	ledgerrepo "github.com/GlebRadaev/roulette/internal/repo/ledger-repo"
	sliprepo "github.com/GlebRadaev/roulette/internal/repo/slip-repo"
	userrepo "github.com/GlebRadaev/roulette/internal/repo/user-repo"
	"github.com/GlebRadaev/roulette/internal/scheduler"
	"github.com/GlebRadaev/roulette/internal/service/authservice"
	"github.com/GlebRadaev/roulette/internal/service/commissionservice"
	"github.com/GlebRadaev/roulette/internal/service/drawservice"
	"github.com/GlebRadaev/roulette/internal/service/ledgerservice"
	"github.com/GlebRadaev/roulette/internal/service/settlementservice"
	"github.com/GlebRadaev/roulette/internal/service/slipservice"
)

// SlipRepo is the slip store as seen by sales, settlement and the scheduler sweep.
type SlipRepo interface {
	slipservice.Repo
	settlementservice.SlipRepo
	scheduler.SlipRepo
}

type Repositories struct {
	UserRepo       authservice.Repo
	LedgerRepo     ledgerservice.Repo
	DrawRepo       drawservice.Repo
	SlipRepo       SlipRepo
	CommissionRepo commissionservice.Repo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		DrawRepo:       drawrepo.New(conn),
		SlipRepo:       sliprepo.New(conn),
		CommissionRepo: commissionrepo.New(conn),
		TxManager:      txManager,
	}
}
