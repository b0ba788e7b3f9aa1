package dto

import "studiofit_backend/internal/models"

type ProvisionAccountRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=8"`
	IsAdmin           bool     `json:"is_admin"`
	AccessiblePortals []string `json:"accessible_portals" validate:"omitempty,dive,oneof=admin member trainer"`
}

type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileView is the denormalized profile response: the account plus
// whichever member and trainer records are linked to it.
type ProfileView struct {
	Account *models.Account `json:"account"`
	Member  *models.Member  `json:"member,omitempty"`
	Trainer *models.Trainer `json:"trainer,omitempty"`
}
