package slips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"github.com/GlebRadaev/roulette/internal/service/slipservice"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/GlebRadaev/roulette/pkg/utils"
	"github.com/GlebRadaev/roulette/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateSlip(ctx context.Context, userID, drawNumber int, bets []slipservice.BetInput) (*slipservice.Receipt, error)
	GetSlipStatus(ctx context.Context, slipNumber string) (*slipservice.Details, error)
	Cancel(ctx context.Context, userID int, role domain.Role, slipNumber string) (*domain.LedgerEntry, error)
	CashOut(ctx context.Context, userID int, role domain.Role, slipNumber string) (*domain.Slip, error)
}

type SlipHandler struct {
	slipService Service
}

func New(slipService Service) *SlipHandler {
	return &SlipHandler{
		slipService: slipService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBet), errors.Is(err, domain.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrSlipNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDrawClosed),
		errors.Is(err, domain.ErrSlipNotCancellable),
		errors.Is(err, domain.ErrSlipNotWon):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func identity(r *http.Request) (int, domain.Role) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(domain.Role)
	return userID, role
}

// CreateSlip godoc
//
//	@Summary		Sell a betting slip
//	@Description	Sell a slip with one or more bets against the open draw. The stake is debited from the cashier balance.
//	@Tags			Slips
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSlipRequestDTO	true	"Slip"
//	@Success		201		{object}	dto.CreateSlipResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		409		{object}	utils.Response	"Draw is closed for betting"
//	@Failure		422		{object}	utils.Response	"Invalid bet"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/slips [post]
func (h *SlipHandler) CreateSlip(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)

	var req dto.CreateSlipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	bets := make([]slipservice.BetInput, len(req.Bets))
	for i, b := range req.Bets {
		bets[i] = slipservice.BetInput{
			Kind:       roulette.Kind(b.Type),
			Numbers:    b.Numbers,
			Index:      b.Index,
			Even:       roulette.EvenMoney(b.Even),
			Amount:     b.Amount,
			Multiplier: b.Multiplier,
		}
	}

	receipt, err := h.slipService.CreateSlip(r.Context(), userID, req.DrawNumber, bets)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateSlipResponseDTO{
		SlipID:          receipt.Slip.ID,
		SlipNumber:      receipt.Slip.SlipNumber,
		DrawNumber:      receipt.Slip.DrawNumber,
		TotalStake:      receipt.Slip.TotalStake,
		PotentialPayout: receipt.Slip.PotentialPayout,
		Balance:         receipt.Balance,
	})
}

// GetSlip godoc
//
//	@Summary		Slip status
//	@Description	Status, winning number and payout of a slip with its bets.
//	@Tags			Slips
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slipNumber	path		string	true	"Slip number"
//	@Success		200			{object}	dto.SlipStatusResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Slip not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/slips/{slipNumber} [get]
func (h *SlipHandler) GetSlip(w http.ResponseWriter, r *http.Request) {
	details, err := h.slipService.GetSlipStatus(r.Context(), chi.URLParam(r, "slipNumber"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	bets := make([]dto.BetResponseDTO, len(details.Bets))
	for i, b := range details.Bets {
		description := b.BetType
		if target, err := roulette.UnmarshalTarget(b.Target); err == nil {
			description = target.Describe()
		}
		bets[i] = dto.BetResponseDTO{
			Type:            b.BetType,
			Description:     description,
			Amount:          b.Amount,
			Multiplier:      b.Multiplier,
			PotentialReturn: b.PotentialReturn,
		}
	}
	slip := details.Slip
	utils.RespondWithJSON(w, http.StatusOK, dto.SlipStatusResponseDTO{
		SlipNumber:      slip.SlipNumber,
		DrawNumber:      slip.DrawNumber,
		Status:          string(slip.Status),
		TotalStake:      slip.TotalStake,
		PotentialPayout: slip.PotentialPayout,
		WinningNumber:   slip.WinningNumber,
		Payout:          details.Payout,
		PaidOutAmount:   slip.PaidOutAmount,
		CreatedAt:       slip.CreatedAt,
		SettledAt:       slip.SettledAt,
		Bets:            bets,
	})
}

// Cancel godoc
//
//	@Summary		Cancel a slip
//	@Description	Cancel a pending slip and refund its stake while the draw is still open.
//	@Tags			Slips
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slipNumber	path		string	true	"Slip number"
//	@Success		200			{object}	dto.CancelSlipResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Slip not found"
//	@Failure		409			{object}	utils.Response	"Slip can not be cancelled"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/slips/{slipNumber}/cancel [post]
func (h *SlipHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, role := identity(r)
	slipNumber := chi.URLParam(r, "slipNumber")

	entry, err := h.slipService.Cancel(r.Context(), userID, role, slipNumber)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CancelSlipResponseDTO{
		SlipNumber: slipNumber,
		Refund:     entry.SignedAmount,
		Balance:    entry.BalanceAfter,
	})
}

// CashOut godoc
//
//	@Summary		Cash out a won slip
//	@Description	Mark a won slip as paid out to the bettor.
//	@Tags			Slips
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slipNumber	path		string	true	"Slip number"
//	@Success		200			{object}	dto.CashOutResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Slip not found"
//	@Failure		409			{object}	utils.Response	"Slip is not a winning slip"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/slips/{slipNumber}/cashout [post]
func (h *SlipHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	userID, role := identity(r)

	slip, err := h.slipService.CashOut(r.Context(), userID, role, chi.URLParam(r, "slipNumber"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CashOutResponseDTO{
		SlipNumber:    slip.SlipNumber,
		Status:        string(slip.Status),
		PaidOutAmount: slip.PaidOutAmount,
	})
}
