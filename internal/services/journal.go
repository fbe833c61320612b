package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=journal.go -destination=journal_mock.go -package=services

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// TransactionStore is the append-only journal table.
type TransactionStore interface {
	Append(ctx context.Context, rec *models.TransactionRecord) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionRecord, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// JournalService is the Transaction Journal: an audit trail of every completed
// ledger mutation, optionally mirrored to a Kafka topic.
type JournalService struct {
	repo        TransactionStore
	kafkaWriter KafkaWriter
}

// NewJournalService creates a JournalService. kafkaWriter may be nil.
func NewJournalService(repo TransactionStore, kafkaWriter KafkaWriter) *JournalService {
	return &JournalService{repo: repo, kafkaWriter: kafkaWriter}
}

// Record appends a completed record of txType for userID and returns it.
// It joins the caller's transaction, so the record commits or rolls back
// together with the mutation it describes.
func (s *JournalService) Record(
	ctx context.Context,
	userID uuid.UUID,
	txType, asset string,
	amount decimal.Decimal,
	referenceID uuid.UUID,
) (*models.TransactionRecord, error) {
	rec := &models.TransactionRecord{
		ID:              uuid.New(),
		UserID:          userID,
		TransactionType: txType,
		Asset:           asset,
		Amount:          amount,
		Status:          models.TransactionStatusCompleted,
	}
	if referenceID != uuid.Nil {
		rec.ReferenceID = &referenceID
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		logger.Log.Errorw("failed to append transaction record", "userID", userID, "type", txType, "error", err)
		return nil, storageErr(err)
	}
	return rec, nil
}

// ListForUser returns a page of the user's records, newest first.
// A non-positive limit means the default page size; limit is capped.
func (s *JournalService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionRecord, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, storageErr(err)
	}
	return records, nil
}

// Publish sends a committed record to Kafka. Failures are logged and counted, never returned.
func (s *JournalService) Publish(ctx context.Context, rec *models.TransactionRecord) {
	if rec == nil {
		return
	}
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", rec.ID)
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", rec.ID, "error", err)
		metrics.RecordPublishFailure()
		return
	}

	msg := kafka.Message{
		Key:   []byte(rec.UserID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", rec.ID, "error", err)
		metrics.RecordPublishFailure()
		return
	}
	logger.Log.Infow("Transaction published to Kafka", "transaction_id", rec.ID, "type", rec.TransactionType, "amount", rec.Amount)
}
