package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/email"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"

	"gorm.io/datatypes"
)

const ActionUnlinkAccount = "unlink_account"

// LinkingService owns the account<->member and account<->trainer 1:1
// relationship and the account approval transitions. Linking is an explicit,
// reversible admin action; unlinking clears the back-reference and deletes
// nothing.
type LinkingService struct {
	accounts repositories.AccountRepository
	members  repositories.MemberRepository
	trainers repositories.TrainerRepository
	audit    repositories.AuditRepository
	mailer   email.Provider
}

func NewLinkingService(
	accounts repositories.AccountRepository,
	members repositories.MemberRepository,
	trainers repositories.TrainerRepository,
	audit repositories.AuditRepository,
	mailer email.Provider,
) *LinkingService {
	return &LinkingService{
		accounts: accounts,
		members:  members,
		trainers: trainers,
		audit:    audit,
		mailer:   mailer,
	}
}

// LinkAccountToMember sets member.account_id after checking both sides of the
// exclusivity invariant. The final write is a conditional update, so a racing
// link on the same member loses cleanly.
func (s *LinkingService) LinkAccountToMember(accountID, memberID string) error {
	if _, err := s.accounts.FindByID(accountID); err != nil {
		return s.mapAccountErr(err, "link_member", accountID)
	}

	member, err := s.members.FindByID(memberID)
	if err != nil {
		return s.mapMemberErr(err, "link_member", memberID)
	}
	if member.IsLinked() {
		return apperrors.Conflict("Member is already linked to an account")
	}

	if _, err := s.members.FindByAccountID(accountID); err == nil {
		return apperrors.Conflict("Account is already linked to another member")
	} else if !apperrors.Is(err, repositories.ErrMemberNotFound) {
		return s.internalErr("link_member", err, "account_id", accountID)
	}

	if err := s.members.LinkAccount(memberID, accountID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrMemberAlreadyLinked):
			return apperrors.Conflict("Member is already linked to an account")
		case apperrors.Is(err, repositories.ErrMemberNotFound):
			return apperrors.NotFound("Member")
		default:
			return s.internalErr("link_member", err, "member_id", memberID, "account_id", accountID)
		}
	}
	return nil
}

// LinkAccountToTrainer is the trainer-side twin of LinkAccountToMember.
func (s *LinkingService) LinkAccountToTrainer(accountID, trainerID string) error {
	if _, err := s.accounts.FindByID(accountID); err != nil {
		return s.mapAccountErr(err, "link_trainer", accountID)
	}

	trainer, err := s.trainers.FindByID(trainerID)
	if err != nil {
		return s.mapTrainerErr(err, "link_trainer", trainerID)
	}
	if trainer.IsLinked() {
		return apperrors.Conflict("Trainer is already linked to an account")
	}

	if _, err := s.trainers.FindByAccountID(accountID); err == nil {
		return apperrors.Conflict("Account is already linked to another trainer")
	} else if !apperrors.Is(err, repositories.ErrTrainerNotFound) {
		return s.internalErr("link_trainer", err, "account_id", accountID)
	}

	if err := s.trainers.LinkAccount(trainerID, accountID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrTrainerAlreadyLinked):
			return apperrors.Conflict("Trainer is already linked to an account")
		case apperrors.Is(err, repositories.ErrTrainerNotFound):
			return apperrors.NotFound("Trainer")
		default:
			return s.internalErr("link_trainer", err, "trainer_id", trainerID, "account_id", accountID)
		}
	}
	return nil
}

// UnlinkAccountFromMember clears the back-reference and writes an audit
// record with the prior account id. The audit write follows the documented
// best-effort policy for second steps: a failure is logged, the unlink
// stands.
func (s *LinkingService) UnlinkAccountFromMember(actorID, memberID string) error {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return s.mapMemberErr(err, "unlink_member", memberID)
	}
	if !member.IsLinked() {
		return apperrors.Conflict("Member is not linked to an account")
	}
	priorAccountID := *member.AccountID

	if err := s.members.UnlinkAccount(memberID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrMemberNotLinked):
			return apperrors.Conflict("Member is not linked to an account")
		case apperrors.Is(err, repositories.ErrMemberNotFound):
			return apperrors.NotFound("Member")
		default:
			return s.internalErr("unlink_member", err, "member_id", memberID)
		}
	}

	s.writeUnlinkAudit("members", memberID, priorAccountID, actorID)
	return nil
}

// UnlinkAccountFromTrainer mirrors the member case, audit record included.
func (s *LinkingService) UnlinkAccountFromTrainer(actorID, trainerID string) error {
	trainer, err := s.trainers.FindByID(trainerID)
	if err != nil {
		return s.mapTrainerErr(err, "unlink_trainer", trainerID)
	}
	if !trainer.IsLinked() {
		return apperrors.Conflict("Trainer is not linked to an account")
	}
	priorAccountID := *trainer.AccountID

	if err := s.trainers.UnlinkAccount(trainerID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrTrainerNotLinked):
			return apperrors.Conflict("Trainer is not linked to an account")
		case apperrors.Is(err, repositories.ErrTrainerNotFound):
			return apperrors.NotFound("Trainer")
		default:
			return s.internalErr("unlink_trainer", err, "trainer_id", trainerID)
		}
	}

	s.writeUnlinkAudit("trainers", trainerID, priorAccountID, actorID)
	return nil
}

// ApproveAccount moves a pending or archived account to active and, when a
// member is linked, syncs the member status with the account as source of
// truth. Approving an already-active account is a Conflict, never a silent
// success.
func (s *LinkingService) ApproveAccount(accountID string) error {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return s.mapAccountErr(err, "approve_account", accountID)
	}

	if account.Status != models.AccountStatusPending && account.Status != models.AccountStatusArchived {
		return apperrors.Conflict("Account is not awaiting approval")
	}

	if err := s.accounts.UpdateStatus(accountID, models.AccountStatusActive); err != nil {
		return s.internalErr("approve_account", err, "account_id", accountID)
	}

	s.syncLinkedMemberStatus(accountID, models.AccountStatusActive)

	if err := s.mailer.SendAccountApproved(account.Email); err != nil {
		logger.Warn("failed to send approval email", "account_id", accountID, "error", err.Error())
	}
	return nil
}

// DisapproveAccount archives a pending account. Archived accounts stay
// eligible for re-approval.
func (s *LinkingService) DisapproveAccount(accountID string) error {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return s.mapAccountErr(err, "disapprove_account", accountID)
	}

	if account.Status != models.AccountStatusPending {
		return apperrors.Conflict("Only pending accounts can be disapproved")
	}

	if err := s.accounts.UpdateStatus(accountID, models.AccountStatusArchived); err != nil {
		return s.internalErr("disapprove_account", err, "account_id", accountID)
	}

	s.syncLinkedMemberStatus(accountID, models.AccountStatusArchived)
	return nil
}

// syncLinkedMemberStatus applies the account-driven status mapping to the
// linked member, if any. Sync failures are logged, not surfaced: the account
// transition already happened.
func (s *LinkingService) syncLinkedMemberStatus(accountID string, status models.AccountStatus) {
	member, err := s.members.FindByAccountID(accountID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrMemberNotFound) {
			logger.Warn("member status sync lookup failed", "account_id", accountID, "error", err.Error())
		}
		return
	}

	mapped := MapAccountStatusToMemberStatus(status)
	if member.Status == mapped {
		return
	}
	if err := s.members.UpdateStatus(member.ID, mapped); err != nil {
		logger.Warn("member status sync failed",
			"account_id", accountID, "member_id", member.ID, "error", err.Error())
	}
}

func (s *LinkingService) writeUnlinkAudit(tableName, recordID, priorAccountID, actorID string) {
	entry := &models.AuditLog{
		Action:    ActionUnlinkAccount,
		TableName: tableName,
		RecordID:  recordID,
		OldValues: datatypes.JSONMap{"account_id": priorAccountID},
		NewValues: datatypes.JSONMap{"account_id": nil},
		ActorID:   actorID,
	}
	if err := s.audit.Create(entry); err != nil {
		logger.Error("failed to write unlink audit record",
			"table", tableName, "record_id", recordID, "error", err.Error())
	}
}

func (s *LinkingService) mapAccountErr(err error, op, accountID string) error {
	if apperrors.Is(err, repositories.ErrAccountNotFound) {
		return apperrors.NotFound("Account")
	}
	return s.internalErr(op, err, "account_id", accountID)
}

func (s *LinkingService) mapMemberErr(err error, op, memberID string) error {
	if apperrors.Is(err, repositories.ErrMemberNotFound) {
		return apperrors.NotFound("Member")
	}
	return s.internalErr(op, err, "member_id", memberID)
}

func (s *LinkingService) mapTrainerErr(err error, op, trainerID string) error {
	if apperrors.Is(err, repositories.ErrTrainerNotFound) {
		return apperrors.NotFound("Trainer")
	}
	return s.internalErr(op, err, "trainer_id", trainerID)
}

func (s *LinkingService) internalErr(op string, err error, args ...any) error {
	fields := append([]any{"operation", op, "error", err.Error()}, args...)
	logger.Error("store operation failed", fields...)
	return apperrors.InternalError(err)
}
