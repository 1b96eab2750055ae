package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/device"
	"github.com/jeffleon2/draftea-device-payments/internal/discovery"
	"github.com/jeffleon2/draftea-device-payments/internal/handlers"
	"github.com/jeffleon2/draftea-device-payments/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-device-payments/internal/ledger"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/jeffleon2/draftea-device-payments/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func remoteDevice(req dto.RegisterDevice) models.Device {
	return device.NewRemoteDevice(req, nil)
}

type fixture struct {
	router    *gin.Engine
	registry  *registry.Registry
	ledger    *ledger.Ledger
	processor *mocks.MockPaymentProcessor
	scanner   *mocks.MockDiscoveryScanner
	archive   *mocks.MockTransactionArchive
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		router:    gin.New(),
		registry:  registry.New(8, nil),
		ledger:    ledger.New(),
		processor: mocks.NewMockPaymentProcessor(t),
		scanner:   mocks.NewMockDiscoveryScanner(t),
		archive:   mocks.NewMockTransactionArchive(t),
	}

	deviceHandler := handlers.NewDeviceHandler(f.registry, remoteDevice)
	paymentHandler := handlers.NewPaymentHandler(f.processor, f.registry)
	transactionHandler := handlers.NewTransactionHandler(f.ledger, f.archive)
	discoveryHandler := handlers.NewDiscoveryHandler(f.scanner)

	f.router.POST("/devices", deviceHandler.RegisterDevice)
	f.router.GET("/devices", deviceHandler.ListDevices)
	f.router.GET("/devices/:id", deviceHandler.GetDevice)
	f.router.DELETE("/devices/:id", deviceHandler.UnregisterDevice)
	f.router.POST("/devices/:id/payments", paymentHandler.CreatePayment)
	f.router.GET("/devices/:id/transactions", transactionHandler.ListDeviceTransactions)
	f.router.GET("/transactions/stats", transactionHandler.GetStats)
	f.router.GET("/transactions/:id", transactionHandler.GetTransaction)
	f.router.POST("/discovery/scan", discoveryHandler.Scan)
	f.router.GET("/discovery/status", discoveryHandler.Status)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

const tvRegistration = `{
	"type": "smart_tv",
	"fingerprint": "tv-living-room-01",
	"capabilities": {"has_display": true, "internet_connection": true, "supported_currencies": [" usd "]},
	"security": {"encryption_level": "aes256"}
}`

func (f *fixture) registerTV(t *testing.T) string {
	w := f.do(http.MethodPost, "/devices", tvRegistration)
	require.Equal(t, http.StatusCreated, w.Code)
	var view dto.DeviceView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view.DeviceID
}

func TestRegisterDevice(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/devices", tvRegistration)

	require.Equal(t, http.StatusCreated, w.Code)
	var view dto.DeviceView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, strings.HasPrefix(view.DeviceID, "smart_tv_1_"))
	assert.Equal(t, models.CategoryTV, view.Category)
	assert.Equal(t, []string{"USD"}, view.Capabilities.SupportedCurrencies)

	again := f.do(http.MethodPost, "/devices", tvRegistration)
	require.Equal(t, http.StatusCreated, again.Code)
	assert.Contains(t, again.Body.String(), view.DeviceID)
	assert.Equal(t, 1, f.registry.Count())
}

func TestRegisterDevice_Rejected(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/devices", `{"type":"iot_device","fingerprint":"short","capabilities":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "internet_connection")
	assert.Equal(t, 0, f.registry.Count())

	w = f.do(http.MethodPost, "/devices", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndUnregisterDevice(t *testing.T) {
	f := newFixture(t)
	id := f.registerTV(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/devices/"+id, "").Code)
	assert.Contains(t, f.do(http.MethodGet, "/devices", "").Body.String(), id)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/devices/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/devices/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/devices/"+id, "").Code)
}

func TestCreatePayment(t *testing.T) {
	f := newFixture(t)
	id := f.registerTV(t)
	body := `{"type":"remote_control","amount":20,"merchant_id":"netflix"}`

	f.processor.EXPECT().ProcessPayment(mock.Anything, id, models.RawEvent(body)).
		Return(models.PaymentResult{Success: true, TransactionID: "txn_1", Amount: 20, Currency: "USD"}).Once()

	w := f.do(http.MethodPost, "/devices/"+id+"/payments", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn_1")
}

func TestCreatePayment_Statuses(t *testing.T) {
	f := newFixture(t)
	id := f.registerTV(t)

	f.processor.EXPECT().ProcessPayment(mock.Anything, id, mock.Anything).
		Return(models.PaymentResult{Error: "validation failed"}).Once()
	assert.Equal(t, http.StatusUnprocessableEntity, f.do(http.MethodPost, "/devices/"+id+"/payments", `{}`).Code)

	f.processor.EXPECT().ProcessPayment(mock.Anything, id, mock.Anything).
		Return(models.PaymentResult{TransactionID: "txn_2", Error: "card declined"}).Once()
	assert.Equal(t, http.StatusPaymentRequired, f.do(http.MethodPost, "/devices/"+id+"/payments", `{}`).Code)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/devices/ghost/payments", `{}`).Code)
}

func TestGetTransaction(t *testing.T) {
	f := newFixture(t)
	txn := f.ledger.Open("dev-1", models.DeviceIoT, models.PaymentRequest{Amount: 3, Currency: "USD", MerchantID: "m"})

	w := f.do(http.MethodGet, "/transactions/"+txn.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"processing"`)

	f.archive.EXPECT().Find(mock.Anything, "txn_archived").Return(&models.TransactionRecord{ID: "txn_archived", Status: models.StatusCompleted}, nil).Once()
	w = f.do(http.MethodGet, "/transactions/txn_archived", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn_archived")

	f.archive.EXPECT().Find(mock.Anything, "txn_missing").Return(nil, errors.New("record not found")).Once()
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/transactions/txn_missing", "").Code)

	stats := f.do(http.MethodGet, "/transactions/stats", "")
	assert.Equal(t, http.StatusOK, stats.Code)
	assert.JSONEq(t, `{"processing":1,"completed":0,"failed":0}`, stats.Body.String())

	list := f.do(http.MethodGet, "/devices/dev-1/transactions", "")
	assert.Contains(t, list.Body.String(), txn.ID)
}

func TestDiscoveryScan(t *testing.T) {
	f := newFixture(t)
	found := []models.DiscoveredDevice{{Fingerprint: "hub-fp-0001", DeviceType: models.DeviceIoT, Probe: "static"}}

	f.scanner.EXPECT().State().Return(discovery.StateIdle).Once()
	f.scanner.EXPECT().ScanOnce(mock.Anything).Return(found).Once()
	w := f.do(http.MethodPost, "/discovery/scan", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hub-fp-0001")

	f.scanner.EXPECT().State().Return(discovery.StateScanning).Once()
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/discovery/scan", "").Code)

	last := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.scanner.EXPECT().State().Return(discovery.StateIdle).Once()
	f.scanner.EXPECT().LastScan().Return(last).Once()
	status := f.do(http.MethodGet, "/discovery/status", "")
	assert.Contains(t, status.Body.String(), `"state":"idle"`)
	assert.Contains(t, status.Body.String(), "2026-01-02T03:04:05Z")
}

func TestHandleEvents(t *testing.T) {
	f := newFixture(t)
	id := f.registerTV(t)
	handler := handlers.NewPaymentHandler(f.processor, f.registry)
	raw := `{"type":"voice_command","text":"pay 5 dollars to spotify"}`

	f.processor.EXPECT().ProcessPayment(mock.Anything, id, mock.Anything).
		Run(func(_ context.Context, _ string, event models.RawEvent) {
			assert.JSONEq(t, raw, string(event))
		}).
		Return(models.PaymentResult{Success: true, TransactionID: "txn_k"}).Once()

	var msg bytes.Buffer
	require.NoError(t, json.NewEncoder(&msg).Encode(models.DevicePaymentRequestedEvent{DeviceID: id, Event: models.RawEvent(raw)}))

	assert.NoError(t, handler.HandleEvents(context.Background(), models.DevicePaymentRequestedTopic, msg.Bytes()))
	assert.Error(t, handler.HandleEvents(context.Background(), "other.topic", msg.Bytes()))
	assert.Error(t, handler.HandleEvents(context.Background(), models.DevicePaymentRequestedTopic, []byte("{")))

	err := handler.HandleEvents(context.Background(), models.DevicePaymentRequestedTopic, []byte(`{"device_id":"ghost","event":{}}`))
	assert.ErrorIs(t, err, models.ErrDeviceNotFound)
}

// vanishingRegistry loses every device right after admitting it, as when a
// concurrent DELETE wins the race.
type vanishingRegistry struct {
	*registry.Registry
}

func (vanishingRegistry) Get(string) (models.Device, bool) { return nil, false }

func TestRegisterDevice_UnregisteredBeforeResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewDeviceHandler(vanishingRegistry{registry.New(8, nil)}, remoteDevice)
	router.POST("/devices", h.RegisterDevice)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(tvRegistration))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "smart_tv_1_")
}

func TestListDeviceTransactions_FallsBackToArchive(t *testing.T) {
	f := newFixture(t)
	archived := []models.TransactionRecord{{ID: "txn_old", DeviceID: "dev-2", Status: models.StatusCompleted}}

	f.archive.EXPECT().ListByDevice(mock.Anything, "dev-2").Return(archived, nil).Once()
	w := f.do(http.MethodGet, "/devices/dev-2/transactions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn_old")

	f.archive.EXPECT().ListByDevice(mock.Anything, "dev-3").Return(nil, nil).Once()
	w = f.do(http.MethodGet, "/devices/dev-3/transactions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	f.archive.EXPECT().ListByDevice(mock.Anything, "dev-4").Return(nil, errors.New("connection reset")).Once()
	w = f.do(http.MethodGet, "/devices/dev-4/transactions", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
