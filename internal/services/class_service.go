package services

import (
	"time"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

// ClassService schedules sessions and moves registrations through their
// lifecycle: registered -> checked_in | absent | cancelled.
type ClassService struct {
	classes  repositories.ClassRepository
	members  repositories.MemberRepository
	trainers repositories.TrainerRepository
}

func NewClassService(
	classes repositories.ClassRepository,
	members repositories.MemberRepository,
	trainers repositories.TrainerRepository,
) *ClassService {
	return &ClassService{classes: classes, members: members, trainers: trainers}
}

func (s *ClassService) CreateSession(req *dto.CreateSessionRequest) (*models.ClassSession, error) {
	session := &models.ClassSession{
		Title:           req.Title,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		Status:          models.SessionStatusScheduled,
	}

	if req.TrainerID != nil && *req.TrainerID != "" {
		if _, err := s.trainers.FindByID(*req.TrainerID); err != nil {
			if apperrors.Is(err, repositories.ErrTrainerNotFound) {
				return nil, apperrors.NotFound("Trainer")
			}
			return nil, apperrors.InternalError(err)
		}
		session.TrainerID = req.TrainerID
	}

	if err := s.classes.CreateSession(session); err != nil {
		logger.Error("store operation failed", "operation", "create_session", "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return session, nil
}

func (s *ClassService) ListSessions(limit, offset int) ([]models.ClassSession, error) {
	sessions, err := s.classes.FindSessions(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sessions, nil
}

// Register books a member onto a session. The participant counter is bumped
// first with a capacity-conditional update; the registration insert follows,
// with a counter rollback on the duplicate race.
func (s *ClassService) Register(memberID, sessionID string) (*models.Registration, error) {
	session, err := s.classes.FindSessionByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.NotFound("Class session")
		}
		return nil, apperrors.InternalError(err)
	}
	if session.Status != models.SessionStatusScheduled {
		return nil, apperrors.Conflict("Class session is not open for registration")
	}

	if _, err := s.classes.FindRegistration(sessionID, memberID); err == nil {
		return nil, apperrors.Conflict("Member is already registered for this session")
	} else if !apperrors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := s.classes.IncrementParticipants(sessionID, 1); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrSessionFull):
			return nil, apperrors.Conflict("Class session is full")
		case apperrors.Is(err, repositories.ErrSessionNotFound):
			return nil, apperrors.NotFound("Class session")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	reg := &models.Registration{
		SessionID: sessionID,
		MemberID:  memberID,
		Status:    models.RegistrationStatusRegistered,
	}
	if err := s.classes.CreateRegistration(reg); err != nil {
		if decErr := s.classes.IncrementParticipants(sessionID, -1); decErr != nil {
			logger.Error("participant counter rollback failed",
				"session_id", sessionID, "error", decErr.Error())
		}
		if apperrors.Is(err, repositories.ErrAlreadyRegistered) {
			return nil, apperrors.Conflict("Member is already registered for this session")
		}
		logger.Error("store operation failed", "operation", "register", "session_id", sessionID, "member_id", memberID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return reg, nil
}

// Cancel deletes the registration, then decrements the participant counter
// as a second independent write. A failed decrement is logged and left
// standing; this path is documented best-effort, not atomic.
func (s *ClassService) Cancel(memberID, sessionID string) error {
	reg, err := s.classes.FindRegistration(sessionID, memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRegistrationNotFound) {
			return apperrors.NotFound("Registration")
		}
		return apperrors.InternalError(err)
	}
	if reg.Status != models.RegistrationStatusRegistered {
		return apperrors.Conflict("Registration cannot be cancelled in its current state")
	}

	if err := s.classes.DeleteRegistration(reg.ID); err != nil {
		if apperrors.Is(err, repositories.ErrRegistrationNotFound) {
			return apperrors.NotFound("Registration")
		}
		logger.Error("store operation failed", "operation", "cancel_registration", "registration_id", reg.ID, "error", err.Error())
		return apperrors.InternalError(err)
	}

	if err := s.classes.IncrementParticipants(sessionID, -1); err != nil {
		logger.Error("participant count decrement failed after cancellation",
			"session_id", sessionID, "registration_id", reg.ID, "error", err.Error())
	}
	return nil
}

// CheckIn flips a registered member to checked_in with a timestamp.
func (s *ClassService) CheckIn(memberID, sessionID string) (*models.Registration, error) {
	reg, err := s.classes.FindRegistration(sessionID, memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, apperrors.NotFound("Registration")
		}
		return nil, apperrors.InternalError(err)
	}
	if reg.Status != models.RegistrationStatusRegistered {
		return nil, apperrors.Conflict("Registration is not in a checkable state")
	}

	now := time.Now()
	if err := s.classes.UpdateRegistrationStatus(reg.ID, models.RegistrationStatusCheckedIn, &now); err != nil {
		logger.Error("store operation failed", "operation", "check_in", "registration_id", reg.ID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	reg.Status = models.RegistrationStatusCheckedIn
	reg.CheckedInAt = &now
	return reg, nil
}

// MarkAbsentees flips still-registered rows of sessions that ended more than
// grace ago to absent and returns how many were affected. An external
// scheduler calls this through the admin API; the attendance worker may also
// drive it on a ticker.
func (s *ClassService) MarkAbsentees(now time.Time, grace time.Duration) (int64, error) {
	candidates, err := s.classes.FindSessionsStartedBefore(now)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	var expired []string
	for _, session := range candidates {
		if session.EndsAt().Add(grace).Before(now) {
			expired = append(expired, session.ID)
		}
	}

	marked, err := s.classes.MarkAbsentForSessions(expired)
	if err != nil {
		logger.Error("store operation failed", "operation", "mark_absentees", "error", err.Error())
		return 0, apperrors.InternalError(err)
	}
	return marked, nil
}
