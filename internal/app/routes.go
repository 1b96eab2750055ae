package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-device-payments/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(
	devices *handlers.DeviceHandler,
	payments *handlers.PaymentHandler,
	transactions *handlers.TransactionHandler,
	discovery *handlers.DiscoveryHandler,
) {
	a.Router.GET("/health", a.health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	device := a.Router.Group("/devices")
	device.POST("", devices.RegisterDevice)
	device.GET("", devices.ListDevices)
	device.GET("/:id", devices.GetDevice)
	device.DELETE("/:id", devices.UnregisterDevice)
	device.POST("/:id/payments", payments.CreatePayment)
	device.GET("/:id/transactions", transactions.ListDeviceTransactions)

	txn := a.Router.Group("/transactions")
	txn.GET("/stats", transactions.GetStats)
	txn.GET("/:id", transactions.GetTransaction)

	scan := a.Router.Group("/discovery")
	scan.POST("/scan", discovery.Scan)
	scan.GET("/status", discovery.Status)
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"devices": a.Registry.Count(),
		"scanner": a.Scanner.State(),
	})
}
