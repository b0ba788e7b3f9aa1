package dto

import "time"

type CreateSessionRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	TrainerID       *string   `json:"trainer_id" validate:"omitempty,uuid"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gt=0,max=480"`
	Capacity        int       `json:"capacity" validate:"omitempty,min=0"`
}
