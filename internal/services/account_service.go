package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/auth"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"

	"gorm.io/datatypes"
)

// AccountService covers admin account provisioning and the denormalized
// profile view joining account, member and trainer.
type AccountService struct {
	accounts repositories.AccountRepository
	members  repositories.MemberRepository
	trainers repositories.TrainerRepository
}

func NewAccountService(
	accounts repositories.AccountRepository,
	members repositories.MemberRepository,
	trainers repositories.TrainerRepository,
) *AccountService {
	return &AccountService{accounts: accounts, members: members, trainers: trainers}
}

// Provision creates an account on behalf of an admin. It starts pending like
// a self-service signup; approval is still a separate step.
func (s *AccountService) Provision(req *dto.ProvisionAccountRequest) (*models.Account, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	portals := req.AccessiblePortals
	if len(portals) == 0 {
		portals = []string{models.PortalMember}
	}

	account := &models.Account{
		Email:             req.Email,
		PasswordHash:      hash,
		IsAdmin:           req.IsAdmin,
		AccessiblePortals: datatypes.NewJSONSlice(portals),
		Status:            models.AccountStatusPending,
	}

	if err := s.accounts.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error("store operation failed", "operation", "provision_account", "email", req.Email, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}

func (s *AccountService) List(limit, offset int) ([]models.Account, int64, error) {
	accounts, err := s.accounts.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.accounts.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return accounts, total, nil
}

// Profile assembles the user_profiles view for one account: the account plus
// whichever member and trainer records reference it.
func (s *AccountService) Profile(account *models.Account) (*dto.ProfileView, error) {
	view := &dto.ProfileView{Account: account}

	member, err := s.members.FindByAccountID(account.ID)
	if err == nil {
		view.Member = member
	} else if !apperrors.Is(err, repositories.ErrMemberNotFound) {
		return nil, apperrors.InternalError(err)
	}

	trainer, err := s.trainers.FindByAccountID(account.ID)
	if err == nil {
		view.Trainer = trainer
	} else if !apperrors.Is(err, repositories.ErrTrainerNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return view, nil
}
