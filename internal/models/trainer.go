package models

// Trainer is the staff business record, linked to an account the same way a
// member is.
type Trainer struct {
	BaseModel
	AccountID      *string       `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	FirstName      string        `gorm:"not null" json:"first_name"`
	LastName       string        `gorm:"not null" json:"last_name"`
	Specialization string        `json:"specialization,omitempty"`
	Bio            string        `json:"bio,omitempty"`
	HourlyRate     float64       `gorm:"default:0" json:"hourly_rate"`
	Status         TrainerStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
}

func (t *Trainer) IsLinked() bool {
	return t.AccountID != nil && *t.AccountID != ""
}
