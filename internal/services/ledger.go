package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingDescription = errors.New("transaction description is required")
)

// LedgerUserWriter moves a user's cached balance.
type LedgerUserWriter interface {
	ApplyCreditDelta(ctx context.Context, userID uuid.UUID, delta float64) (float64, error) // Returns the new balance
}

// LedgerTransactionWriter appends ledger rows.
type LedgerTransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// LedgerTransactionReader reads ledger aggregates.
type LedgerTransactionReader interface {
	SumByUserID(ctx context.Context, userID uuid.UUID) (float64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService is the single gate for credit balance changes: every change
// appends exactly one immutable transaction row and moves the cached balance
// by exactly the same delta. Both writes share the caller's database
// transaction, so they commit or roll back together.
type LedgerService struct {
	users       LedgerUserWriter
	txns        LedgerTransactionWriter
	reader      LedgerTransactionReader
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(users LedgerUserWriter, txns LedgerTransactionWriter, reader LedgerTransactionReader, kafkaWriter KafkaWriter) *LedgerService {
	return &LedgerService{
		users:       users,
		txns:        txns,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Apply records a balance change and returns the new balance. Delta may be
// negative; the ledger does not police overdrafts, that is the caller's
// responsibility before it asks for the debit.
func (s *LedgerService) Apply(ctx context.Context, userID uuid.UUID, delta float64, txType, description string, externalRef *string) (float64, error) {
	if description == "" {
		return 0, ErrMissingDescription
	}

	newBalance, err := s.users.ApplyCreditDelta(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("ledger apply for unknown user", "user_id", userID)
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to move balance", "user_id", userID, "delta", delta, "error", err)
		return 0, err
	}

	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          txType,
		Credits:       delta,
		Description:   description,
		ExternalRef:   externalRef,
	}
	if err := s.txns.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to append ledger row", "user_id", userID, "delta", delta, "error", err)
		return 0, err
	}

	s.publishTransaction(ctx, txn, newBalance)

	return newBalance, nil
}

// Sum returns the sum of all ledger deltas for a user. By the ledger
// invariant it equals the cached balance.
func (s *LedgerService) Sum(ctx context.Context, userID uuid.UUID) (float64, error) {
	return s.reader.SumByUserID(ctx, userID)
}

// publishTransaction publishes a ledger event to Kafka, best effort.
func (s *LedgerService) publishTransaction(ctx context.Context, txn *models.TransactionDB, balance float64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		UserID:        txn.UserID.String(),
		Type:          txn.Type,
		Credits:       txn.Credits,
		Balance:       balance,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.TransactionID, "credits", txn.Credits)
	}
}
