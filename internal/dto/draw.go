package dto

import "time"

type SpinDTO struct {
	DrawNumber int       `json:"draw_number" example:"41"`
	Number     int       `json:"number" example:"32"`
	Color      string    `json:"color" example:"red"`
	DrawnAt    time.Time `json:"drawn_at" example:"2024-05-01T12:00:00Z"`
}

type DrawStateResponseDTO struct {
	CurrentDrawNumber int       `json:"current_draw_number" example:"41"`
	NextDrawNumber    int       `json:"next_draw_number" example:"42"`
	CountdownSeconds  int       `json:"countdown_seconds" example:"95"`
	ManualMode        bool      `json:"manual_mode" example:"false"`
	Phase             string    `json:"phase" example:"counting_down"`
	RecentDraws       []SpinDTO `json:"recent_draws"`
}

type DrawResultResponseDTO struct {
	DrawNumber int       `json:"draw_number" example:"41"`
	Number     int       `json:"number" example:"32"`
	Color      string    `json:"color" example:"red"`
	DrawnAt    time.Time `json:"drawn_at" example:"2024-05-01T12:00:00Z"`
	Source     string    `json:"source" example:"draws"`
}
