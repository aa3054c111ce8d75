package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

// ErrNoCard is returned when no card has been issued for the lookup key.
var ErrNoCard = errors.New("no issued card")

type CardRepository interface {
	Create(ctx context.Context, card *models.IssuedCard) error
	GetByAccountProject(ctx context.Context, accountID, projectID int64) (models.IssuedCard, error)
	GetByCardRef(ctx context.Context, cardRef string) (models.IssuedCard, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.IssuedCard, error)
	UpdateStatus(ctx context.Context, cardID int64, status models.CardStatus) error
}

type cardRepo struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepo{db: db}
}

const cardColumns = `id, custodial_account_id, project_id, card_ref, card_status, last_four, per_tx_limit, daily_limit, weekly_limit, created_at`

func (r *cardRepo) Create(ctx context.Context, card *models.IssuedCard) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO issued_cards (custodial_account_id, project_id, card_ref, card_status, last_four, per_tx_limit, daily_limit, weekly_limit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, card.CustodialAccountID, card.ProjectID, card.CardRef, card.Status,
		card.LastFour, card.PerTxLimit, card.DailyLimit, card.WeeklyLimit).
		Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		logger.Log.Error("failed to create issued card", zap.Error(err))
	}
	return err
}

func (r *cardRepo) scanCard(row *sql.Row) (models.IssuedCard, error) {
	var c models.IssuedCard
	err := row.Scan(&c.ID, &c.CustodialAccountID, &c.ProjectID, &c.CardRef, &c.Status,
		&c.LastFour, &c.PerTxLimit, &c.DailyLimit, &c.WeeklyLimit, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IssuedCard{}, ErrNoCard
	}
	if err != nil {
		logger.Log.Error("failed to scan issued card", zap.Error(err))
		return models.IssuedCard{}, err
	}
	return c, nil
}

func (r *cardRepo) GetByAccountProject(ctx context.Context, accountID, projectID int64) (models.IssuedCard, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+cardColumns+` FROM issued_cards
		WHERE custodial_account_id = $1 AND project_id = $2
	`, accountID, projectID)
	return r.scanCard(row)
}

func (r *cardRepo) GetByCardRef(ctx context.Context, cardRef string) (models.IssuedCard, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+cardColumns+` FROM issued_cards
		WHERE card_ref = $1
	`, cardRef)
	return r.scanCard(row)
}

func (r *cardRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.IssuedCard, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cardColumns+` FROM issued_cards
		WHERE custodial_account_id = $1
		ORDER BY project_id
	`, accountID)
	if err != nil {
		logger.Log.Error("failed to query issued cards", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var cards []models.IssuedCard
	for rows.Next() {
		var c models.IssuedCard
		if err := rows.Scan(&c.ID, &c.CustodialAccountID, &c.ProjectID, &c.CardRef, &c.Status,
			&c.LastFour, &c.PerTxLimit, &c.DailyLimit, &c.WeeklyLimit, &c.CreatedAt); err != nil {
			logger.Log.Error("failed to scan issued card", zap.Error(err))
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *cardRepo) UpdateStatus(ctx context.Context, cardID int64, status models.CardStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE issued_cards
		SET card_status = $1
		WHERE id = $2
	`, status, cardID)
	return err
}
