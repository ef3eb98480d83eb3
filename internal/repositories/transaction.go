package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

// TransactionWriteRepository appends ledger rows. The table is append-only;
// there is deliberately no update or delete here.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one ledger row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, credits, description, external_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Type, txn.Credits, txn.Description, txn.ExternalRef}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// TransactionReadRepository handles ledger read operations.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// SumByUserID returns the sum of all credit deltas for a user. By the ledger
// invariant this equals the user's cached balance.
func (r *TransactionReadRepository) SumByUserID(ctx context.Context, userID uuid.UUID) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(credits), 0)
		FROM transactions
		WHERE user_id = $1
	`

	var sum float64
	err := r.db.GetContext(ctx, &sum, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", sum,
		"error", err,
	)

	return sum, err
}

// ListByUserID returns a user's ledger rows, newest first.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, credits, description, external_ref, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
