package dto

type CreateMemberRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	MemberNotes string  `json:"member_notes" validate:"omitempty,max=2000"`
	AccountID   *string `json:"account_id" validate:"omitempty,uuid"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

type LinkAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
}
