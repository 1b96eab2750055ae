package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/ledger"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

type TransactionStore interface {
	Get(transactionID string) (models.Transaction, bool)
	ListByDevice(deviceID string) []models.Transaction
	Stats() ledger.Stats
}

// TransactionArchive looks up transactions that are no longer in memory.
type TransactionArchive interface {
	Find(ctx context.Context, transactionID string) (*models.TransactionRecord, error)
	ListByDevice(ctx context.Context, deviceID string) ([]models.TransactionRecord, error)
}

type TransactionHandler struct {
	Store   TransactionStore
	Archive TransactionArchive
}

// NewTransactionHandler accepts a nil archive when archiving is disabled.
func NewTransactionHandler(store TransactionStore, archive TransactionArchive) *TransactionHandler {
	return &TransactionHandler{Store: store, Archive: archive}
}

// GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	if txn, ok := h.Store.Get(id); ok {
		c.JSON(http.StatusOK, txn)
		return
	}

	if h.Archive != nil {
		if record, err := h.Archive.Find(c.Request.Context(), id); err == nil {
			c.JSON(http.StatusOK, record)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "transaction " + id + " not found"})
}

// GET /devices/:id/transactions
//
// The ledger answers while it still holds the device's transactions; after a
// restart the archive does.
func (h *TransactionHandler) ListDeviceTransactions(c *gin.Context) {
	deviceID := c.Param("id")
	if txns := h.Store.ListByDevice(deviceID); len(txns) > 0 || h.Archive == nil {
		c.JSON(http.StatusOK, txns)
		return
	}

	records, err := h.Archive.ListByDevice(c.Request.Context(), deviceID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"device_id": deviceID,
			"error":     err.Error(),
		}).Error("Failed to list archived transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list archived transactions"})
		return
	}
	if records == nil {
		records = []models.TransactionRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /transactions/stats
func (h *TransactionHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Stats())
}
