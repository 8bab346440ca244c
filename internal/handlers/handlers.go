package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/roulette/docs"
	"github.com/GlebRadaev/roulette/internal/domain"
	adminhandlers "github.com/GlebRadaev/roulette/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/roulette/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/roulette/internal/handlers/balance"
	drawhandlers "github.com/GlebRadaev/roulette/internal/handlers/draws"
	sliphandlers "github.com/GlebRadaev/roulette/internal/handlers/slips"
	"github.com/GlebRadaev/roulette/internal/service"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetCommission(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	GetDraw(w http.ResponseWriter, r *http.Request)
}

type SlipHandler interface {
	CreateSlip(w http.ResponseWriter, r *http.Request)
	GetSlip(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	CashOut(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Credit(w http.ResponseWriter, r *http.Request)
	SetForcedNumber(w http.ResponseWriter, r *http.Request)
	SetMode(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
	Gaps(w http.ResponseWriter, r *http.Request)
	RebuildRecent(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	DrawHandler    DrawHandler
	SlipHandler    SlipHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.LedgerService, s.CommissionService),
		DrawHandler:    drawhandlers.New(s.DrawService, s.ResolverService),
		SlipHandler:    sliphandlers.New(s.SlipService),
		AdminHandler:   adminhandlers.New(s.LedgerService, s.DrawService, s.SettlementService),
	}
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		hlog.NewHandler(log.Logger),
		hlog.RemoteAddrHandler("ip"),
		hlog.AccessHandler(accessLog),
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
				r.Get("/commission", h.BalanceHandler.GetCommission)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/draws", func(r chi.Router) {
				r.Get("/state", h.DrawHandler.GetState)
				r.Get("/{number}", h.DrawHandler.GetDraw)
			})
			r.Route("/slips", func(r chi.Router) {
				r.Post("/", h.SlipHandler.CreateSlip)
				r.Get("/{slipNumber}", h.SlipHandler.GetSlip)
				r.Post("/{slipNumber}/cancel", h.SlipHandler.Cancel)
				r.Post("/{slipNumber}/cashout", h.SlipHandler.CashOut)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleAdmin))
			r.Post("/credit", h.AdminHandler.Credit)
			r.Route("/draws", func(r chi.Router) {
				r.Post("/forced", h.AdminHandler.SetForcedNumber)
				r.Post("/mode", h.AdminHandler.SetMode)
				r.Post("/advance", h.AdminHandler.Advance)
				r.Post("/rebuild", h.AdminHandler.RebuildRecent)
				r.Get("/gaps", h.AdminHandler.Gaps)
			})
			r.Post("/settle/{number}", h.AdminHandler.Settle)
			r.Get("/reconcile/{userID}", h.AdminHandler.Reconcile)
		})
	})

	return r
}
