package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound      = errors.New("class session not found")
	ErrSessionFull          = errors.New("class session is full")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("member is already registered for this session")
)

type ClassRepository interface {
	CreateSession(session *models.ClassSession) error
	FindSessionByID(id string) (*models.ClassSession, error)
	FindSessions(limit, offset int) ([]models.ClassSession, error)
	FindSessionsStartedBefore(cutoff time.Time) ([]models.ClassSession, error)

	CreateRegistration(reg *models.Registration) error
	FindRegistration(sessionID, memberID string) (*models.Registration, error)
	UpdateRegistrationStatus(regID string, status models.RegistrationStatus, checkedInAt *time.Time) error
	DeleteRegistration(regID string) error

	// IncrementParticipants adjusts the denormalized counter. A positive delta
	// is conditional on remaining capacity (capacity 0 means unlimited).
	IncrementParticipants(sessionID string, delta int) error

	// MarkAbsentForSessions flips still-registered rows of the given sessions
	// to absent and reports how many were affected.
	MarkAbsentForSessions(sessionIDs []string) (int64, error)
}

type ClassRepositoryImpl struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &ClassRepositoryImpl{db: db}
}

func (r *ClassRepositoryImpl) CreateSession(session *models.ClassSession) error {
	return r.db.Create(session).Error
}

func (r *ClassRepositoryImpl) FindSessionByID(id string) (*models.ClassSession, error) {
	var session models.ClassSession
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *ClassRepositoryImpl) FindSessions(limit, offset int) ([]models.ClassSession, error) {
	var sessions []models.ClassSession
	err := r.db.Order("starts_at ASC").Limit(limit).Offset(offset).Find(&sessions).Error
	return sessions, err
}

func (r *ClassRepositoryImpl) FindSessionsStartedBefore(cutoff time.Time) ([]models.ClassSession, error) {
	var sessions []models.ClassSession
	err := r.db.Where("starts_at < ? AND status = ?", cutoff, models.SessionStatusScheduled).
		Find(&sessions).Error
	return sessions, err
}

func (r *ClassRepositoryImpl) CreateRegistration(reg *models.Registration) error {
	var existing models.Registration
	err := r.db.Where("session_id = ? AND member_id = ?", reg.SessionID, reg.MemberID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(reg).Error
}

func (r *ClassRepositoryImpl) FindRegistration(sessionID, memberID string) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("session_id = ? AND member_id = ?", sessionID, memberID).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *ClassRepositoryImpl) UpdateRegistrationStatus(regID string, status models.RegistrationStatus, checkedInAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if checkedInAt != nil {
		updates["checked_in_at"] = checkedInAt
	}

	result := r.db.Model(&models.Registration{}).Where("id = ?", regID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

func (r *ClassRepositoryImpl) DeleteRegistration(regID string) error {
	result := r.db.Where("id = ?", regID).Delete(&models.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

func (r *ClassRepositoryImpl) IncrementParticipants(sessionID string, delta int) error {
	query := r.db.Model(&models.ClassSession{}).Where("id = ?", sessionID)
	if delta > 0 {
		query = query.Where("capacity = 0 OR participant_count + ? <= capacity", delta)
	}

	result := query.Update("participant_count", gorm.Expr("participant_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindSessionByID(sessionID); err != nil {
			return err
		}
		return ErrSessionFull
	}
	return nil
}

func (r *ClassRepositoryImpl) MarkAbsentForSessions(sessionIDs []string) (int64, error) {
	if len(sessionIDs) == 0 {
		return 0, nil
	}

	result := r.db.Model(&models.Registration{}).
		Where("session_id IN ? AND status = ?", sessionIDs, models.RegistrationStatusRegistered).
		Updates(map[string]interface{}{
			"status":     models.RegistrationStatusAbsent,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
