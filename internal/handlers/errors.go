package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

func respondError(c *gin.Context, err error) {
	pe := models.AsPaymentError(err)
	status := pe.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": pe})
}
