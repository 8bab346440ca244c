package draws

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/internal/service/drawservice"
	"github.com/GlebRadaev/roulette/internal/service/resolverservice"
	"github.com/GlebRadaev/roulette/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	View(ctx context.Context) (*drawservice.StateView, error)
}

type Resolver interface {
	Resolve(ctx context.Context, drawNumber int) (*resolverservice.Result, error)
}

type DrawHandler struct {
	drawService Service
	resolver    Resolver
}

func New(drawService Service, resolver Resolver) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
		resolver:    resolver,
	}
}

// StateDTO renders the display view of the draw cycle.
func StateDTO(view *drawservice.StateView) dto.DrawStateResponseDTO {
	recent := make([]dto.SpinDTO, len(view.RecentDraws))
	for i, s := range view.RecentDraws {
		recent[i] = dto.SpinDTO{DrawNumber: s.DrawNumber, Number: s.Number, Color: s.Color, DrawnAt: s.DrawnAt}
	}
	return dto.DrawStateResponseDTO{
		CurrentDrawNumber: view.State.CurrentDrawNumber,
		NextDrawNumber:    view.State.NextDrawNumber,
		CountdownSeconds:  view.CountdownSeconds,
		ManualMode:        view.State.ManualMode,
		Phase:             string(view.State.Phase),
		RecentDraws:       recent,
	}
}

// GetState godoc
//
//	@Summary		Current draw state
//	@Description	Current and next draw numbers, the countdown and the most recent results, as shown on displays.
//	@Tags			Draws
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DrawStateResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/draws/state [get]
func (h *DrawHandler) GetState(w http.ResponseWriter, r *http.Request) {
	view, err := h.drawService.View(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, StateDTO(view))
}

// GetDraw godoc
//
//	@Summary		Draw result
//	@Description	Winning number and color of a completed draw.
//	@Tags			Draws
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		int	true	"Draw number"
//	@Success		200		{object}	dto.DrawResultResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid draw number"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Draw not yet drawn"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/draws/{number} [get]
func (h *DrawHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	drawNumber, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || drawNumber < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw number")
		return
	}
	result, err := h.resolver.Resolve(r.Context(), drawNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotYetDrawn) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResultResponseDTO{
		DrawNumber: result.DrawNumber,
		Number:     result.Number,
		Color:      string(result.Color),
		DrawnAt:    result.DrawnAt,
		Source:     string(result.Source),
	})
}
