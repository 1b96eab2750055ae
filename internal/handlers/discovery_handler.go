package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/discovery"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

type DiscoveryScanner interface {
	ScanOnce(ctx context.Context) []models.DiscoveredDevice
	State() discovery.State
	LastScan() time.Time
}

type DiscoveryHandler struct {
	Scanner DiscoveryScanner
}

func NewDiscoveryHandler(s DiscoveryScanner) *DiscoveryHandler {
	return &DiscoveryHandler{Scanner: s}
}

// POST /discovery/scan
func (h *DiscoveryHandler) Scan(c *gin.Context) {
	if h.Scanner.State() == discovery.StateScanning {
		c.JSON(http.StatusConflict, gin.H{"error": "scan already in progress"})
		return
	}
	found := h.Scanner.ScanOnce(c.Request.Context())
	if found == nil {
		found = []models.DiscoveredDevice{}
	}
	c.JSON(http.StatusOK, gin.H{"discovered": found})
}

// GET /discovery/status
func (h *DiscoveryHandler) Status(c *gin.Context) {
	body := gin.H{"state": h.Scanner.State()}
	if last := h.Scanner.LastScan(); !last.IsZero() {
		body["last_scan"] = last
	}
	c.JSON(http.StatusOK, body)
}
