package draws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/internal/roulette"
	"github.com/GlebRadaev/roulette/internal/service/drawservice"
	"github.com/GlebRadaev/roulette/internal/service/resolverservice"
	"github.com/GlebRadaev/roulette/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DrawHandler, *MockService, *MockResolver) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	resolver := NewMockResolver(ctrl)
	return New(service, resolver), service, resolver
}

func withNumber(r *http.Request, number string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("number", number)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetStateHandler(t *testing.T) {
	drawnAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody dto.DrawStateResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(service *MockService) {
				service.EXPECT().View(gomock.Any()).Return(&drawservice.StateView{
					State: &domain.DrawState{
						CurrentDrawNumber: 41,
						NextDrawNumber:    42,
						Phase:             domain.PhaseCountingDown,
					},
					CountdownSeconds: 95,
					RecentDraws:      []domain.Spin{{DrawNumber: 41, Number: 32, Color: "red", DrawnAt: drawnAt}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.DrawStateResponseDTO{
				CurrentDrawNumber: 41,
				NextDrawNumber:    42,
				CountdownSeconds:  95,
				Phase:             "counting_down",
				RecentDraws:       []dto.SpinDTO{{DrawNumber: 41, Number: 32, Color: "red", DrawnAt: drawnAt}},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().View(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/draws/state", nil)
			w := httptest.NewRecorder()
			handler.GetState(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DrawStateResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetDrawHandler(t *testing.T) {
	drawnAt := time.Date(2024, 5, 1, 12, 3, 0, 0, time.UTC)

	tests := []struct {
		name          string
		number        string
		prepareMock   func(resolver *MockResolver)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Completed draw",
			number: "42",
			prepareMock: func(resolver *MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 42).Return(&resolverservice.Result{
					DrawNumber: 42, Number: 17, Color: roulette.Black, DrawnAt: drawnAt, Source: resolverservice.SourceDraws,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Not yet drawn",
			number: "43",
			prepareMock: func(resolver *MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 43).Return(nil, domain.ErrNotYetDrawn)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "draw not yet drawn",
		},
		{
			name:          "Invalid number",
			number:        "abc",
			prepareMock:   func(resolver *MockResolver) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid draw number",
		},
		{
			name:   "Store failure",
			number: "42",
			prepareMock: func(resolver *MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 42).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, resolver := NewMock(t)
			tt.prepareMock(resolver)

			r := withNumber(httptest.NewRequest(http.MethodGet, "/api/draws/"+tt.number, nil), tt.number)
			w := httptest.NewRecorder()
			handler.GetDraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var body dto.DrawResultResponseDTO
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, dto.DrawResultResponseDTO{DrawNumber: 42, Number: 17, Color: "black", DrawnAt: drawnAt, Source: "draws"}, body)
		})
	}
}
