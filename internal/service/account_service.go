package service

import (
	"context"
	"strings"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"github.com/Stratton1/futurepreneurs-sub002/internal/secrets"
)

// AccountService records custodial accounts on behalf of the onboarding flow
// and applies payment-processor KYC callbacks. The date of birth is encrypted
// before it ever reaches the database.
type AccountService interface {
	CreateAccount(ctx context.Context, parentID, studentID int64, processorRef, dateOfBirth string) (int64, error)
	UpdateKYCStatus(ctx context.Context, processorRef string, status models.KYCStatus) error
	AcknowledgeFirstDrawdown(ctx context.Context, accountID, parentID int64) error
}

type accountService struct {
	repo   repository.AccountRepository
	cipher *secrets.Cipher
}

func NewAccountService(repo repository.AccountRepository, cipher *secrets.Cipher) AccountService {
	return &accountService{repo: repo, cipher: cipher}
}

func (s *accountService) CreateAccount(ctx context.Context, parentID, studentID int64, processorRef, dateOfBirth string) (int64, error) {
	if parentID == 0 || studentID == 0 || strings.TrimSpace(dateOfBirth) == "" {
		return 0, apperrors.ErrInvalidRequest
	}

	encrypted, err := s.cipher.Encrypt(dateOfBirth)
	if err != nil {
		return 0, err
	}

	account := &models.CustodialAccount{
		ParentID:            parentID,
		StudentID:           studentID,
		ProcessorAccountRef: processorRef,
		KYCStatus:           models.KYCPending,
		EncryptedDOB:        encrypted,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return 0, err
	}
	return account.ID, nil
}

func (s *accountService) UpdateKYCStatus(ctx context.Context, processorRef string, status models.KYCStatus) error {
	switch status {
	case models.KYCPending, models.KYCAdultVerified, models.KYCMinorVerified, models.KYCFullyVerified, models.KYCFailed:
	default:
		return apperrors.ErrInvalidRequest
	}
	return s.repo.UpdateKYCStatusByRef(ctx, processorRef, status)
}

// AcknowledgeFirstDrawdown records the one-time parental acknowledgement
// that unlocks parent approvals for the account.
func (s *accountService) AcknowledgeFirstDrawdown(ctx context.Context, accountID, parentID int64) error {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.ParentID != parentID {
		return apperrors.ErrWrongRole
	}
	return s.repo.SetFirstDrawdownAcked(ctx, accountID)
}
