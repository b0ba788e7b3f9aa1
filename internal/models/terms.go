package models

import "time"

// Terms is a versioned legal document. At most one row per TermType may be
// active at a time; activation is exclusive and handled transactionally by
// the terms repository.
type Terms struct {
	BaseModel
	Version       string    `gorm:"not null" json:"version"`
	TermType      TermType  `gorm:"type:varchar(30);not null;index" json:"term_type"`
	Content       string    `json:"content,omitempty"`
	IsActive      bool      `gorm:"default:false;index" json:"is_active"`
	EffectiveDate time.Time `json:"effective_date"`
}
