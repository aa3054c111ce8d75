package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

type BalanceRepository interface {
	GetOrCreate(ctx context.Context, accountID, projectID int64) (models.WalletBalance, error)
	GetByID(ctx context.Context, balanceID int64) (models.WalletBalance, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.WalletBalance, error)
	AddFunds(ctx context.Context, accountID, projectID, amount int64) error
	Hold(ctx context.Context, balanceID, amount int64) error
	Release(ctx context.Context, balanceID, amount int64) error
	Settle(ctx context.Context, balanceID, amount int64) error
}

type balanceRepo struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepo{db: db}
}

func (r *balanceRepo) GetOrCreate(ctx context.Context, accountID, projectID int64) (models.WalletBalance, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wallet_balances (custodial_account_id, project_id)
		VALUES ($1, $2)
		ON CONFLICT (custodial_account_id, project_id) DO NOTHING
	`, accountID, projectID)
	if err != nil {
		logger.Log.Error("failed to ensure wallet balance row", zap.Error(err))
		return models.WalletBalance{}, err
	}

	var b models.WalletBalance
	err = r.db.QueryRowContext(ctx, `
		SELECT id, custodial_account_id, project_id, available_balance, held_balance, total_disbursed, currency
		FROM wallet_balances
		WHERE custodial_account_id = $1 AND project_id = $2
	`, accountID, projectID).Scan(&b.ID, &b.CustodialAccountID, &b.ProjectID,
		&b.AvailableBalance, &b.HeldBalance, &b.TotalDisbursed, &b.Currency)
	if err != nil {
		logger.Log.Error("failed to get wallet balance", zap.Error(err))
		return models.WalletBalance{}, err
	}
	return b, nil
}

func (r *balanceRepo) GetByID(ctx context.Context, balanceID int64) (models.WalletBalance, error) {
	var b models.WalletBalance
	err := r.db.QueryRowContext(ctx, `
		SELECT id, custodial_account_id, project_id, available_balance, held_balance, total_disbursed, currency
		FROM wallet_balances
		WHERE id = $1
	`, balanceID).Scan(&b.ID, &b.CustodialAccountID, &b.ProjectID,
		&b.AvailableBalance, &b.HeldBalance, &b.TotalDisbursed, &b.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WalletBalance{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get wallet balance by id", zap.Error(err))
		return models.WalletBalance{}, err
	}
	return b, nil
}

func (r *balanceRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.WalletBalance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, custodial_account_id, project_id, available_balance, held_balance, total_disbursed, currency
		FROM wallet_balances
		WHERE custodial_account_id = $1
		ORDER BY project_id
	`, accountID)
	if err != nil {
		logger.Log.Error("failed to query wallet balances", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var balances []models.WalletBalance
	for rows.Next() {
		var b models.WalletBalance
		if err := rows.Scan(&b.ID, &b.CustodialAccountID, &b.ProjectID,
			&b.AvailableBalance, &b.HeldBalance, &b.TotalDisbursed, &b.Currency); err != nil {
			logger.Log.Error("failed to scan wallet balance", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *balanceRepo) AddFunds(ctx context.Context, accountID, projectID, amount int64) error {
	b, err := r.GetOrCreate(ctx, accountID, projectID)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE wallet_balances
		SET available_balance = available_balance + $1,
		    total_disbursed = total_disbursed + $1
		WHERE id = $2
	`, amount, b.ID)
	return err
}

// Hold moves amount from available to held. The WHERE guard makes two
// concurrent holds on the same row serializable: the second one sees the
// decremented available balance and affects no rows.
func (r *balanceRepo) Hold(ctx context.Context, balanceID, amount int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE wallet_balances
		SET available_balance = available_balance - $1,
		    held_balance = held_balance + $1
		WHERE id = $2 AND available_balance >= $1
	`, amount, balanceID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

// Release returns held funds to available, clamped at the current held
// balance so it can never go negative.
func (r *balanceRepo) Release(ctx context.Context, balanceID, amount int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE wallet_balances
		SET available_balance = available_balance + LEAST(held_balance, $1),
		    held_balance = held_balance - LEAST(held_balance, $1)
		WHERE id = $2
	`, amount, balanceID)
	return err
}

// Settle clears held funds that were spent through the card; the money has
// left the wallet and does not return to available.
func (r *balanceRepo) Settle(ctx context.Context, balanceID, amount int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE wallet_balances
		SET held_balance = held_balance - LEAST(held_balance, $1)
		WHERE id = $2
	`, amount, balanceID)
	return err
}
