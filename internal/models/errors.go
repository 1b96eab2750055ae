package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindDeviceNotFound ErrorKind = "device_not_found"
	KindGateway        ErrorKind = "gateway"
	KindGatewayTimeout ErrorKind = "gateway_timeout"
	KindInvalidState   ErrorKind = "invalid_state"
	KindScannerProbe   ErrorKind = "scanner_probe"
	KindInternal       ErrorKind = "internal"
)

// Sentinels for errors.Is. Any *PaymentError of the same kind matches.
var (
	ErrValidation     = &PaymentError{Kind: KindValidation}
	ErrDeviceNotFound = &PaymentError{Kind: KindDeviceNotFound}
	ErrGateway        = &PaymentError{Kind: KindGateway}
	ErrGatewayTimeout = &PaymentError{Kind: KindGatewayTimeout}
	ErrInvalidState   = &PaymentError{Kind: KindInvalidState}
	ErrScannerProbe   = &PaymentError{Kind: KindScannerProbe}
	ErrInternal       = &PaymentError{Kind: KindInternal}
)

// PaymentError is the structured error handed to devices and API callers.
type PaymentError struct {
	Kind       ErrorKind `json:"kind"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	// Fields names the offending fields of a validation failure.
	Fields []string `json:"fields,omitempty"`
	Err    error    `json:"-"`
}

func (e *PaymentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewValidationError(fields []string, reasons []string) *PaymentError {
	return &PaymentError{
		Kind:       KindValidation,
		Code:       "VALIDATION_FAILED",
		Message:    "validation failed: " + strings.Join(reasons, "; "),
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

func NewDeviceNotFoundError(deviceID string) *PaymentError {
	return &PaymentError{
		Kind:       KindDeviceNotFound,
		Code:       "DEVICE_NOT_FOUND",
		Message:    fmt.Sprintf("device %s not found", deviceID),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewGatewayError(err error) *PaymentError {
	return &PaymentError{
		Kind:       KindGateway,
		Code:       "GATEWAY_ERROR",
		Message:    fmt.Sprintf("gateway error: %s", err.Error()),
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewDeclinedError is a gateway answer, not a gateway failure: the message is
// passed through untouched so callers see exactly what the processor said.
func NewDeclinedError(message string) *PaymentError {
	return &PaymentError{
		Kind:       KindGateway,
		Code:       "PAYMENT_DECLINED",
		Message:    message,
		HTTPStatus: http.StatusPaymentRequired,
	}
}

func NewGatewayTimeoutError(err error) *PaymentError {
	return &PaymentError{
		Kind:       KindGatewayTimeout,
		Code:       "GATEWAY_TIMEOUT",
		Message:    "gateway timed out",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewInvalidStateError(message string) *PaymentError {
	return &PaymentError{
		Kind:       KindInvalidState,
		Code:       "INVALID_STATE",
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func NewScannerProbeError(probe string, err error) *PaymentError {
	return &PaymentError{
		Kind:    KindScannerProbe,
		Code:    "SCANNER_PROBE_FAILED",
		Message: fmt.Sprintf("probe %s failed: %v", probe, err),
		Err:     err,
	}
}

func NewInternalError(err error) *PaymentError {
	return &PaymentError{
		Kind:       KindInternal,
		Code:       "INTERNAL_ERROR",
		Message:    "internal error while processing payment",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AsPaymentError returns err as a *PaymentError, wrapping unknown errors as
// internal ones.
func AsPaymentError(err error) *PaymentError {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe
	}
	return NewInternalError(err)
}
