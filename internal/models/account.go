package models

import "gorm.io/datatypes"

// Account is the authentication-bearing identity record. It may be linked to
// at most one Member and at most one Trainer via their AccountID
// back-references.
type Account struct {
	BaseModel
	Email             string                      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string                      `gorm:"not null" json:"-"`
	AuthIdentityRef   *string                     `gorm:"index" json:"auth_identity_ref,omitempty"`
	IsAdmin           bool                        `gorm:"default:false" json:"is_admin"`
	AccessiblePortals datatypes.JSONSlice[string] `json:"accessible_portals"`
	Status            AccountStatus               `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ResetToken        string                      `json:"-"`
}

// HasPortal reports whether the account was granted the given portal tag.
func (a *Account) HasPortal(portal string) bool {
	for _, p := range a.AccessiblePortals {
		if p == portal {
			return true
		}
	}
	return false
}
