package models

import "time"

// ClassSession is a scheduled class on the studio calendar.
// ParticipantCount is denormalized and maintained alongside registrations.
type ClassSession struct {
	BaseModel
	Title            string        `gorm:"not null" json:"title"`
	TrainerID        *string       `gorm:"type:uuid;index" json:"trainer_id,omitempty"`
	StartsAt         time.Time     `gorm:"not null;index" json:"starts_at"`
	DurationMinutes  int           `gorm:"default:60" json:"duration_minutes"`
	Capacity         int           `gorm:"default:0" json:"capacity"`
	ParticipantCount int           `gorm:"default:0" json:"participant_count"`
	Status           SessionStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
}

// EndsAt is the scheduled end of the session.
func (s *ClassSession) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Registration ties a member to a class session.
type Registration struct {
	BaseModel
	SessionID   string             `gorm:"type:uuid;not null;index:idx_session_member,unique" json:"session_id"`
	MemberID    string             `gorm:"type:uuid;not null;index:idx_session_member,unique" json:"member_id"`
	Status      RegistrationStatus `gorm:"type:varchar(20);default:'registered'" json:"status"`
	CheckedInAt *time.Time         `json:"checked_in_at,omitempty"`
}
