package balance

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/GlebRadaev/roulette/pkg/utils"
)

const (
	dateLayout       = "2006-01-02"
	commissionWindow = 30 * 24 * time.Hour
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
	GetTransactions(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
}

type Commission interface {
	Summaries(ctx context.Context, userID int, from, to time.Time) ([]domain.CommissionSummary, error)
}

type BalanceHandler struct {
	ledgerService     Service
	commissionService Commission
	now               func() time.Time
}

func New(ledgerService Service, commissionService Commission) *BalanceHandler {
	return &BalanceHandler{
		ledgerService:     ledgerService,
		commissionService: commissionService,
		now:               time.Now,
	}
}

// GetBalance godoc
//
//	@Summary		Get current cash balance
//	@Description	Retrieve the cash balance of the authenticated cashier.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the authenticated cashier, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Maximum number of entries"
//	@Success		200		{array}		dto.TransactionResponseDTO		"Ledger entries"
//	@Success		204		{object}	utils.Response					"Transactions not found"
//	@Failure		400		{object}	utils.Response					"Invalid limit"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.ledgerService.GetTransactions(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.TransactionResponseDTO{
			ID:           e.ID,
			Amount:       e.SignedAmount,
			BalanceAfter: e.BalanceAfter,
			Type:         string(e.Type),
			Reference:    e.ReferenceID,
			Description:  e.Description,
			CreatedAt:    e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCommission godoc
//
//	@Summary		Get daily commission
//	@Description	Daily stake and commission totals of the authenticated cashier. Defaults to the last 30 days.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string						false	"First day, YYYY-MM-DD"
//	@Param			to		query		string						false	"Last day, YYYY-MM-DD"
//	@Success		200		{array}		dto.CommissionResponseDTO	"Daily summaries"
//	@Failure		400		{object}	utils.Response				"Invalid date"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/commission [get]
func (h *BalanceHandler) GetCommission(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	to := h.now()
	from := to.Add(-commissionWindow)
	var err error
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid from date")
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid to date")
			return
		}
	}

	summaries, err := h.commissionService.Summaries(r.Context(), userID, from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CommissionResponseDTO, len(summaries))
	for i, s := range summaries {
		response[i] = dto.CommissionResponseDTO{
			Date:            s.Date.Format(dateLayout),
			TotalBets:       s.TotalBets,
			TotalCommission: s.TotalCommission,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
