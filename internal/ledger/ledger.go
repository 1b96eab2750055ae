package ledger

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

// Stats counts transactions per status.
type Stats struct {
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// Ledger is the in-memory store of transactions. Status only moves from
// processing to exactly one terminal status; every status is kept in the
// transaction history.
type Ledger struct {
	mu           sync.RWMutex
	transactions map[string]*models.Transaction
	byDevice     map[string][]string
	now          func() time.Time
}

func New() *Ledger {
	return &Ledger{
		transactions: make(map[string]*models.Transaction),
		byDevice:     make(map[string][]string),
		now:          time.Now,
	}
}

// Open records a new processing transaction with a fresh id.
func (l *Ledger) Open(deviceID string, deviceType models.DeviceType, request models.PaymentRequest) models.Transaction {
	now := l.now().UTC()
	request.Metadata = maps.Clone(request.Metadata)
	txn := &models.Transaction{
		ID:         "txn_" + uuid.NewString(),
		DeviceID:   deviceID,
		DeviceType: deviceType,
		Request:    request,
		Status:     models.StatusProcessing,
		CreatedAt:  now,
		UpdatedAt:  now,
		History:    []models.StatusChange{{Status: models.StatusProcessing, At: now}},
	}

	l.mu.Lock()
	l.transactions[txn.ID] = txn
	l.byDevice[deviceID] = append(l.byDevice[deviceID], txn.ID)
	l.mu.Unlock()

	return copyTransaction(txn)
}

// Close settles a processing transaction as completed or failed according to
// result.Success. Closing a settled transaction is an InvalidStateError and
// leaves it untouched.
func (l *Ledger) Close(transactionID string, result models.PaymentResult) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txn, ok := l.transactions[transactionID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("transaction %s not found", transactionID)
	}
	if txn.Status.IsTerminal() {
		err := models.NewInvalidStateError(fmt.Sprintf("transaction %s is already %s", transactionID, txn.Status))
		logrus.WithFields(logrus.Fields{
			"transaction_id": transactionID,
			"status":         txn.Status,
		}).Error("Attempt to close a settled transaction")
		return copyTransaction(txn), err
	}

	status := models.StatusFailed
	if result.Success {
		status = models.StatusCompleted
	}
	now := l.now().UTC()
	result.TransactionID = transactionID
	txn.Result = &result
	txn.Status = status
	txn.UpdatedAt = now
	txn.History = append(txn.History, models.StatusChange{Status: status, At: now})

	return copyTransaction(txn), nil
}

func (l *Ledger) Get(transactionID string) (models.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	txn, ok := l.transactions[transactionID]
	if !ok {
		return models.Transaction{}, false
	}
	return copyTransaction(txn), true
}

// ListByDevice returns a device's transactions, oldest first.
func (l *Ledger) ListByDevice(deviceID string) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := l.byDevice[deviceID]
	list := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		list = append(list, copyTransaction(l.transactions[id]))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list
}

func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var stats Stats
	for _, txn := range l.transactions {
		switch txn.Status {
		case models.StatusProcessing:
			stats.Processing++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusFailed:
			stats.Failed++
		}
	}
	return stats
}

func copyTransaction(txn *models.Transaction) models.Transaction {
	out := *txn
	out.History = slices.Clone(txn.History)
	out.Request.Metadata = maps.Clone(txn.Request.Metadata)
	if txn.Result != nil {
		result := *txn.Result
		result.Metadata = maps.Clone(txn.Result.Metadata)
		out.Result = &result
	}
	return out
}
