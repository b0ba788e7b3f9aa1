package dto

type CreateTrainerRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	Specialization string  `json:"specialization" validate:"omitempty,max=200"`
	Bio            string  `json:"bio" validate:"omitempty,max=2000"`
	HourlyRate     float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
}
