package models

// PaymentTransaction records money movement for a member. A paid transaction
// credits the member balance; the credit update is a separate best-effort
// write (see PaymentService).
type PaymentTransaction struct {
	BaseModel
	MemberID    string        `gorm:"type:uuid;not null;index" json:"member_id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Currency    string        `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	Description string        `json:"description,omitempty"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
