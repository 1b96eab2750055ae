package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/translator"
	"github.com/sirupsen/logrus"
)

const DefaultPaymentTimeout = 15 * time.Second

// Gateway authorizes and settles a canonical payment request. A declined
// payment is a result with Success false, not an error.
type Gateway interface {
	ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error)
}

// DeviceDirectory resolves registered devices by id.
type DeviceDirectory interface {
	Get(deviceID string) (models.Device, bool)
}

// TransactionLedger records the lifecycle of every dispatched payment.
type TransactionLedger interface {
	Open(deviceID string, deviceType models.DeviceType, request models.PaymentRequest) models.Transaction
	Close(transactionID string, result models.PaymentResult) (models.Transaction, error)
}

// EventPublisher receives lifecycle events. Publish must not block.
type EventPublisher interface {
	Publish(evt models.Event)
}

type Config struct {
	PaymentTimeout     time.Duration
	SerializePerDevice bool
}

// Engine runs the payment pipeline for a device event: translate, validate,
// open a transaction, call the gateway, close the transaction, answer the
// device and publish the outcome. ProcessPayment never returns an error;
// every failure becomes a failed PaymentResult.
type Engine struct {
	Devices   DeviceDirectory
	Ledger    TransactionLedger
	Gateway   Gateway
	Publisher EventPublisher
	Input     *translator.InputTranslator
	Output    *translator.OutputTranslator

	validate  *validator.Validate
	timeout   time.Duration
	serialize bool

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewEngine(
	devices DeviceDirectory,
	ledger TransactionLedger,
	gateway Gateway,
	publisher EventPublisher,
	input *translator.InputTranslator,
	output *translator.OutputTranslator,
	cfg Config,
) *Engine {
	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = DefaultPaymentTimeout
	}
	return &Engine{
		Devices:   devices,
		Ledger:    ledger,
		Gateway:   gateway,
		Publisher: publisher,
		Input:     input,
		Output:    output,
		validate:  newValidator(),
		timeout:   cfg.PaymentTimeout,
		serialize: cfg.SerializePerDevice,
		locks:     make(map[string]*sync.Mutex),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ProcessPayment dispatches one raw device event for deviceID.
//
// The gateway call runs detached from ctx and bounded by the payment
// timeout, so a caller that goes away never leaves a transaction in
// processing.
func (e *Engine) ProcessPayment(ctx context.Context, deviceID string, raw models.RawEvent) (result models.PaymentResult) {
	var (
		device    models.Device
		request   models.PaymentRequest
		txnID     string
		settled   models.Transaction
		closeErr  error
		closed    bool
		published bool
	)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := models.NewInternalError(fmt.Errorf("panic while processing payment: %v", r))
		logrus.WithFields(logrus.Fields{
			"device_id":      deviceID,
			"transaction_id": txnID,
			"settled":        closed,
		}).Errorf("Recovered from panic in payment pipeline: %v", r)
		if device != nil {
			safely(deviceID, "HandleError", func() {
				device.HandleError(context.WithoutCancel(ctx), err)
			})
		}

		// A settled transaction keeps the gateway outcome it was closed with.
		if closed {
			if closeErr == nil && !published {
				published = true
				e.publishProcessed(settled, result)
			}
			return
		}

		result = models.FailedResult(txnID, request, err)
		if txnID != "" {
			if txn, cerr := e.closeTransaction(txnID, result); cerr == nil {
				e.publishProcessed(txn, result)
			}
		}
	}()

	device, ok := e.Devices.Get(deviceID)
	if !ok {
		err := models.NewDeviceNotFoundError(deviceID)
		logrus.WithField("device_id", deviceID).Warn("Payment for unknown device")
		return models.FailedResult("", request, err)
	}

	if e.serialize {
		lock := e.lockFor(deviceID)
		lock.Lock()
		defer lock.Unlock()
	}

	caps := device.Capabilities()
	request = e.Input.Translate(raw, caps)

	if err := e.validateRequest(request, caps); err != nil {
		return e.reject(ctx, device, request, err)
	}

	e.displayPaymentUI(ctx, device, caps, request)

	txn := e.Ledger.Open(device.DeviceID(), device.DeviceType(), request)
	txnID = txn.ID

	result, gwErr := e.callGateway(ctx, request)
	result = normalizeResult(result, txnID, request, gwErr)

	settled, closeErr = e.closeTransaction(txnID, result)
	closed = true

	var response models.DeviceResponse
	if gwErr != nil {
		response = e.Output.TranslateFailure(gwErr, result, device)
	} else {
		response = e.Output.TranslateOutput(result, device)
	}
	e.deliver(ctx, device, result, response)

	logrus.WithFields(logrus.Fields{
		"device_id":      device.DeviceID(),
		"transaction_id": txnID,
		"success":        result.Success,
		"amount":         result.Amount,
		"currency":       result.Currency,
	}).Info("Payment processed")

	if closeErr == nil {
		published = true
		e.publishProcessed(settled, result)
	}
	return result
}

func (e *Engine) validateRequest(request models.PaymentRequest, caps models.CapabilitySet) *models.PaymentError {
	var fields, reasons []string

	if err := e.validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return models.NewInternalError(err)
		}
		for _, fe := range validationErrors {
			fields = append(fields, fe.Field())
			reasons = append(reasons, validationReason(fe))
		}
	}

	if caps.MaxPaymentAmount > 0 && request.Amount > caps.MaxPaymentAmount {
		fields = append(fields, "amount")
		reasons = append(reasons, fmt.Sprintf("amount %.2f exceeds device limit %.2f", request.Amount, caps.MaxPaymentAmount))
	}
	if len(request.Currency) == 3 && !caps.SupportsCurrency(request.Currency) {
		fields = append(fields, "currency")
		reasons = append(reasons, fmt.Sprintf("currency %s is not supported by the device", request.Currency))
	}

	if len(fields) > 0 {
		return models.NewValidationError(fields, reasons)
	}
	return nil
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// reject answers a request that failed validation. No transaction is opened
// and the gateway is never called.
func (e *Engine) reject(ctx context.Context, device models.Device, request models.PaymentRequest, err *models.PaymentError) models.PaymentResult {
	logrus.WithFields(logrus.Fields{
		"device_id": device.DeviceID(),
		"fields":    strings.Join(err.Fields, ","),
		"defaults":  strings.Join(request.DefaultsApplied(), ","),
	}).Warnf("Payment rejected: %v", err)

	e.notifyError(ctx, device, err)
	e.publish(models.Event{
		Type:       models.EventPaymentRejected,
		DeviceID:   device.DeviceID(),
		DeviceType: device.DeviceType(),
		Request:    &request,
	})
	return models.FailedResult("", request, err)
}

// callGateway runs the gateway in its own goroutine so a hung or panicking
// gateway cannot take the pipeline with it.
func (e *Engine) callGateway(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, *models.PaymentError) {
	gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	type outcome struct {
		result models.PaymentResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("gateway panicked: %v", r)}
			}
		}()
		result, err := e.Gateway.ProcessPayment(gctx, request)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err == nil {
			return out.result, nil
		}
		logrus.WithField("merchant_id", request.MerchantID).Errorf("Gateway call failed: %v", out.err)
		if errors.Is(out.err, context.DeadlineExceeded) {
			return models.PaymentResult{}, models.NewGatewayTimeoutError(out.err)
		}
		var pe *models.PaymentError
		if errors.As(out.err, &pe) {
			return models.PaymentResult{}, pe
		}
		return models.PaymentResult{}, models.NewGatewayError(out.err)
	case <-gctx.Done():
		logrus.WithField("timeout", e.timeout).Error("Gateway call timed out")
		return models.PaymentResult{}, models.NewGatewayTimeoutError(gctx.Err())
	}
}

// normalizeResult fills what a gateway may leave out and pins the result to
// the ledger transaction.
func normalizeResult(result models.PaymentResult, txnID string, request models.PaymentRequest, gwErr *models.PaymentError) models.PaymentResult {
	if gwErr != nil {
		return models.FailedResult(txnID, request, gwErr)
	}
	result.TransactionID = txnID
	if result.Amount == 0 {
		result.Amount = request.Amount
	}
	if result.Currency == "" {
		result.Currency = request.Currency
	}
	if !result.Success && result.Error == "" {
		result.Error = "payment declined"
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now().UTC()
	}
	return result
}

func (e *Engine) closeTransaction(txnID string, result models.PaymentResult) (models.Transaction, error) {
	settled, err := e.Ledger.Close(txnID, result)
	if err != nil {
		logrus.WithField("transaction_id", txnID).Errorf("Failed to close transaction: %v", err)
	}
	return settled, err
}

func (e *Engine) displayPaymentUI(ctx context.Context, device models.Device, caps models.CapabilitySet, request models.PaymentRequest) {
	if !caps.HasDisplay {
		return
	}
	displayer, ok := displayerOf(device)
	if !ok {
		return
	}
	safely(device.DeviceID(), "DisplayPaymentUI", func() {
		if err := displayer.DisplayPaymentUI(ctx, request); err != nil {
			logrus.WithField("device_id", device.DeviceID()).Warnf("Failed to display payment UI: %v", err)
		}
	})
}

func displayerOf(device models.Device) (models.PaymentUIDisplayer, bool) {
	for device != nil {
		if displayer, ok := device.(models.PaymentUIDisplayer); ok {
			return displayer, true
		}
		wrapped, ok := device.(interface{ Unwrap() models.Device })
		if !ok {
			return nil, false
		}
		device = wrapped.Unwrap()
	}
	return nil, false
}

// deliver hands the outcome to the device. Failures are logged and never
// change the settled transaction.
func (e *Engine) deliver(ctx context.Context, device models.Device, result models.PaymentResult, response models.DeviceResponse) {
	safely(device.DeviceID(), "HandlePaymentResponse", func() {
		if err := device.HandlePaymentResponse(context.WithoutCancel(ctx), result, response); err != nil {
			logrus.WithFields(logrus.Fields{
				"device_id":      device.DeviceID(),
				"transaction_id": result.TransactionID,
			}).Warnf("Device failed to handle payment response: %v", err)
		}
	})
}

func (e *Engine) notifyError(ctx context.Context, device models.Device, err *models.PaymentError) {
	safely(device.DeviceID(), "HandleError", func() {
		device.HandleError(context.WithoutCancel(ctx), err)
	})
}

func (e *Engine) publishProcessed(settled models.Transaction, result models.PaymentResult) {
	e.publish(models.Event{
		Type:        models.EventPaymentProcessed,
		DeviceID:    settled.DeviceID,
		DeviceType:  settled.DeviceType,
		Transaction: &settled,
		Result:      &result,
	})
}

func (e *Engine) publish(evt models.Event) {
	if e.Publisher == nil {
		return
	}
	e.Publisher.Publish(evt)
}

func (e *Engine) lockFor(deviceID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	if _, ok := e.locks[deviceID]; !ok {
		e.locks[deviceID] = &sync.Mutex{}
	}
	return e.locks[deviceID]
}

func safely(deviceID, callback string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"device_id": deviceID,
				"callback":  callback,
			}).Errorf("Device callback panicked: %v", r)
		}
	}()
	fn()
}
