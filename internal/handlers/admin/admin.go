package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/internal/handlers/draws"
	"github.com/GlebRadaev/roulette/internal/service/drawservice"
	"github.com/GlebRadaev/roulette/internal/service/settlementservice"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/GlebRadaev/roulette/pkg/utils"
	"github.com/GlebRadaev/roulette/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Ledger interface {
	Credit(ctx context.Context, userID int, amount float64, typ domain.EntryType, description string) (*domain.LedgerEntry, error)
	Reconcile(ctx context.Context, userID int) (*domain.Reconciliation, error)
}

type Draws interface {
	SetForcedNumber(ctx context.Context, drawNumber, number, adminID int) error
	SetManualMode(ctx context.Context, manual bool) (*domain.DrawState, error)
	ForceAdvance(ctx context.Context) (*domain.Draw, *domain.DrawState, error)
	View(ctx context.Context) (*drawservice.StateView, error)
	DetectGaps(ctx context.Context) ([]int, error)
	RebuildProjection(ctx context.Context) error
}

type Settler interface {
	Settle(ctx context.Context, drawNumber int) (settlementservice.Summary, error)
}

type AdminHandler struct {
	ledger  Ledger
	draws   Draws
	settler Settler
}

func New(ledger Ledger, draws Draws, settler Settler) *AdminHandler {
	return &AdminHandler{
		ledger:  ledger,
		draws:   draws,
		settler: settler,
	}
}

func pathInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	return n, err == nil && n >= 1
}

// Credit godoc
//
//	@Summary		Manual balance change
//	@Description	Post an admin credit, voucher or adjustment to a cashier account.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditRequestDTO	true	"Credit"
//	@Success		200		{object}	dto.CreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/credit [post]
func (h *AdminHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.ledger.Credit(r.Context(), req.UserID, req.Amount, domain.EntryType(req.Type), req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidEntryType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditResponseDTO{
		EntryID: entry.ID,
		Balance: entry.BalanceAfter,
	})
}

// SetForcedNumber godoc
//
//	@Summary		Force a winning number
//	@Description	Fix the winning number of a future draw. Used when manual mode is on.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForcedNumberRequestDTO	true	"Forced number"
//	@Success		204
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		409		{object}	utils.Response	"Draw already drawn"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/forced [post]
func (h *AdminHandler) SetForcedNumber(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ForcedNumberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.draws.SetForcedNumber(r.Context(), req.DrawNumber, *req.Number, adminID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidNumber):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDrawAlreadyDrawn):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetMode godoc
//
//	@Summary		Switch draw mode
//	@Description	Turn manual mode on or off. Manual draws use the forced number when one is set.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ModeRequestDTO	true	"Mode"
//	@Success		200		{object}	dto.ModeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/mode [post]
func (h *AdminHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req dto.ModeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.draws.SetManualMode(r.Context(), *req.Manual)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ModeResponseDTO{
		ManualMode:     state.ManualMode,
		NextDrawNumber: state.NextDrawNumber,
	})
}

// Advance godoc
//
//	@Summary		Draw now
//	@Description	End the countdown of the open draw and draw it immediately.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdvanceResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/advance [post]
func (h *AdminHandler) Advance(w http.ResponseWriter, r *http.Request) {
	draw, _, err := h.draws.ForceAdvance(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	view, err := h.draws.View(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AdvanceResponseDTO{State: draws.StateDTO(view)}
	if draw != nil {
		response.DrawNumber = &draw.DrawNumber
		response.WinningNumber = &draw.WinningNumber
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Gaps godoc
//
//	@Summary		Missing draws
//	@Description	Draw numbers up to the current draw with no stored result.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GapsResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/gaps [get]
func (h *AdminHandler) Gaps(w http.ResponseWriter, r *http.Request) {
	gaps, err := h.draws.DetectGaps(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if gaps == nil {
		gaps = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GapsResponseDTO{Gaps: gaps})
}

// RebuildRecent godoc
//
//	@Summary		Rebuild recent results
//	@Description	Reload the cached list of recent results from the draws table.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/rebuild [post]
func (h *AdminHandler) RebuildRecent(w http.ResponseWriter, r *http.Request) {
	if err := h.draws.RebuildProjection(r.Context()); err != nil {
		zap.L().Error("failed to rebuild recent draws", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Settle godoc
//
//	@Summary		Settle a draw
//	@Description	Settle the open slips of a drawn draw. Already settled slips are skipped.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		int	true	"Draw number"
//	@Success		200		{object}	dto.SettleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid draw number"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Draw not yet drawn"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settle/{number} [post]
func (h *AdminHandler) Settle(w http.ResponseWriter, r *http.Request) {
	drawNumber, ok := pathInt(r, "number")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw number")
		return
	}

	summary, err := h.settler.Settle(r.Context(), drawNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotYetDrawn) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{
		DrawNumber: summary.DrawNumber,
		Total:      summary.Total,
		Won:        summary.Won,
		Lost:       summary.Lost,
		Skipped:    summary.Skipped,
		Failed:     summary.Failed,
		Payout:     summary.Payout,
	})
}

// Reconcile godoc
//
//	@Summary		Reconcile an account
//	@Description	Compare the cached cash balance of a user with the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.ReconcileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reconcile/{userID} [get]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(r, "userID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	rec, err := h.ledger.Reconcile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{
		UserID:           rec.UserID,
		CashBalance:      rec.CashBalance,
		LedgerSum:        rec.LedgerSum,
		LastBalanceAfter: rec.LastBalanceAfter,
		Entries:          rec.Entries,
		Consistent:       rec.Consistent,
	})
}
