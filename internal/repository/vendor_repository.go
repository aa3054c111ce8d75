package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

type VendorRepository interface {
	ListAllowlist(ctx context.Context, projectID int64) ([]models.VendorAllowlistEntry, error)
	GetBlockedCategory(ctx context.Context, mcc string) (*models.BlockedMCCCategory, error)
}

type vendorRepo struct {
	db *sql.DB
}

func NewVendorRepository(db *sql.DB) VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) ListAllowlist(ctx context.Context, projectID int64) ([]models.VendorAllowlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, vendor_name, mcc
		FROM vendor_allowlist
		WHERE project_id = $1
	`, projectID)
	if err != nil {
		logger.Log.Error("failed to query vendor allowlist", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.VendorAllowlistEntry
	for rows.Next() {
		var e models.VendorAllowlistEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.VendorName, &e.MCC); err != nil {
			logger.Log.Error("failed to scan allowlist entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetBlockedCategory returns nil when the MCC is not blocked.
func (r *vendorRepo) GetBlockedCategory(ctx context.Context, mcc string) (*models.BlockedMCCCategory, error) {
	var c models.BlockedMCCCategory
	err := r.db.QueryRowContext(ctx, `
		SELECT id, mcc, category, reason
		FROM blocked_mcc_categories
		WHERE mcc = $1
	`, mcc).Scan(&c.ID, &c.MCC, &c.Category, &c.Reason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Error("failed to get blocked category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
