package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
)

// VendorPolicyService evaluates a vendor against the platform-wide blocked
// MCC list and the project's opt-in allowlist. The blocklist always wins and
// is checked first.
type VendorPolicyService interface {
	Validate(ctx context.Context, projectID int64, vendorName, vendorMCC string) (models.PolicyResult, error)
	CheckMCC(ctx context.Context, mcc string) (models.PolicyResult, error)
}

type vendorPolicyService struct {
	repo repository.VendorRepository
}

func NewVendorPolicyService(repo repository.VendorRepository) VendorPolicyService {
	return &vendorPolicyService{repo: repo}
}

func (s *vendorPolicyService) CheckMCC(ctx context.Context, mcc string) (models.PolicyResult, error) {
	if mcc == "" {
		return models.PolicyResult{Valid: true}, nil
	}

	blocked, err := s.repo.GetBlockedCategory(ctx, mcc)
	if err != nil {
		return models.PolicyResult{}, err
	}
	if blocked != nil {
		return models.PolicyResult{
			Reason: fmt.Sprintf("%s: %s", blocked.Category, blocked.Reason),
		}, nil
	}
	return models.PolicyResult{Valid: true}, nil
}

func (s *vendorPolicyService) Validate(ctx context.Context, projectID int64, vendorName, vendorMCC string) (models.PolicyResult, error) {
	mccResult, err := s.CheckMCC(ctx, vendorMCC)
	if err != nil {
		return models.PolicyResult{}, err
	}
	if !mccResult.Valid {
		return mccResult, nil
	}

	entries, err := s.repo.ListAllowlist(ctx, projectID)
	if err != nil {
		return models.PolicyResult{}, err
	}

	// No entries means the project has not opted into vendor restriction.
	if len(entries) == 0 {
		return models.PolicyResult{Valid: true}, nil
	}

	for _, e := range entries {
		if strings.EqualFold(e.VendorName, vendorName) {
			return models.PolicyResult{Valid: true}, nil
		}
		if e.MCC != "" && vendorMCC != "" && e.MCC == vendorMCC {
			return models.PolicyResult{Valid: true}, nil
		}
	}

	return models.PolicyResult{
		Reason: fmt.Sprintf("Vendor %q is not on this project's approved vendor list", vendorName),
	}, nil
}
