package api

import "time"

// ResetSettings is the weekly reset schedule. DayOfWeek is 0=Sunday..6=Saturday.
type ResetSettings struct {
	DayOfWeek int        `json:"dayOfWeek"`
	Hour      int        `json:"hour"`
	Minute    int        `json:"minute"`
	LastReset *time.Time `json:"lastReset"`
}

type GetResetSettingsRequest struct{}

type GetResetSettingsResponse struct {
	Settings  *ResetSettings `json:"settings"`
	NextReset time.Time      `json:"nextReset"`
}

type UpdateResetSettingsRequest struct {
	DayOfWeek *int `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Hour      *int `json:"hour" validate:"required,min=0,max=23"`
	Minute    *int `json:"minute" validate:"required,min=0,max=59"`
}

type UpdateResetSettingsResponse struct {
	Settings  *ResetSettings `json:"settings"`
	NextReset time.Time      `json:"nextReset"`
}
