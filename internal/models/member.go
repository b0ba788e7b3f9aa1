package models

// Member is the gym-membership business record. AccountID is nullable: a
// member exists independently of any login and is linked to an account by an
// explicit admin action. The unique index keeps one account from backing two
// members.
type Member struct {
	BaseModel
	AccountID   *string      `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	FirstName   string       `gorm:"not null" json:"first_name"`
	LastName    string       `gorm:"not null" json:"last_name"`
	Credit      float64      `gorm:"default:0" json:"credit"`
	Status      MemberStatus `gorm:"type:varchar(20);default:'inactive'" json:"status"`
	MemberNotes string       `json:"member_notes,omitempty"`

	Onboarding *Onboarding `gorm:"foreignKey:MemberID" json:"onboarding,omitempty"`
}

func (m *Member) IsLinked() bool {
	return m.AccountID != nil && *m.AccountID != ""
}
