package archive

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

type TransactionRepository interface {
	Create(ctx context.Context, entity *models.TransactionRecord) error
	GetByID(ctx context.Context, id string) (*models.TransactionRecord, error)
	GetBy(ctx context.Context, query string, value interface{}) ([]models.TransactionRecord, error)
}

// Archive persists settled transactions so they outlive the in-memory ledger.
type Archive struct {
	Repository TransactionRepository
}

func New(repo TransactionRepository) *Archive {
	return &Archive{Repository: repo}
}

// HandleEvent stores the transaction carried by payment_processed events.
func (a *Archive) HandleEvent(ctx context.Context, evt models.Event) {
	if evt.Type != models.EventPaymentProcessed || evt.Transaction == nil {
		return
	}
	if !evt.Transaction.Status.IsTerminal() {
		logrus.Warnf("Not archiving transaction %s in status %s", evt.Transaction.ID, evt.Transaction.Status)
		return
	}

	record := models.NewTransactionRecord(*evt.Transaction)
	if err := a.Repository.Create(ctx, &record); err != nil {
		logrus.WithFields(logrus.Fields{
			"transaction_id": record.ID,
			"error":          err.Error(),
		}).Error("Failed to archive transaction")
		return
	}
	logrus.Debugf("Archived transaction %s", record.ID)
}

func (a *Archive) Find(ctx context.Context, transactionID string) (*models.TransactionRecord, error) {
	record, err := a.Repository.GetByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("error finding archived transaction %s: %w", transactionID, err)
	}
	return record, nil
}

func (a *Archive) ListByDevice(ctx context.Context, deviceID string) ([]models.TransactionRecord, error) {
	records, err := a.Repository.GetBy(ctx, "device_id = ?", deviceID)
	if err != nil {
		return nil, fmt.Errorf("error listing archived transactions for %s: %w", deviceID, err)
	}
	return records, nil
}
