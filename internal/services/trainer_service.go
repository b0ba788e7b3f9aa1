package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

type TrainerService struct {
	trainers repositories.TrainerRepository
}

func NewTrainerService(trainers repositories.TrainerRepository) *TrainerService {
	return &TrainerService{trainers: trainers}
}

func (s *TrainerService) Create(req *dto.CreateTrainerRequest) (*models.Trainer, error) {
	trainer := &models.Trainer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		HourlyRate:     req.HourlyRate,
		Status:         models.TrainerStatusActive,
	}

	if err := s.trainers.Create(trainer); err != nil {
		logger.Error("store operation failed", "operation", "create_trainer", "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerService) FindByID(trainerID string) (*models.Trainer, error) {
	trainer, err := s.trainers.FindByID(trainerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.NotFound("Trainer")
		}
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerService) List(limit, offset int) ([]models.Trainer, int64, error) {
	trainers, err := s.trainers.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.trainers.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return trainers, total, nil
}
