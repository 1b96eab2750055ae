package models

import (
	"encoding/json"
	"time"
)

type TransactionStatus string

const (
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"

	DefaultCurrency = "USD"

	MetaInputType       = "input_type"
	MetaCapturedAt      = "captured_at"
	MetaConfidence      = "confidence"
	MetaDefaultsApplied = "defaults_applied"
	MetaGatewayRef      = "gateway_reference"
	MetaCardToken       = "card_token"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// RawEvent is the untouched JSON body a device sent. Nothing about its shape
// is trusted.
type RawEvent = json.RawMessage

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

// PaymentRequest is the canonical, device-agnostic payment intent.
type PaymentRequest struct {
	Amount      float64        `json:"amount" validate:"gt=0"`
	Currency    string         `json:"currency" validate:"len=3"`
	Description string         `json:"description,omitempty"`
	MerchantID  string         `json:"merchant_id" validate:"required"`
	Location    *Location      `json:"location,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// DefaultsApplied returns the fields the input translator had to fill in.
func (r PaymentRequest) DefaultsApplied() []string {
	applied, _ := r.Metadata[MetaDefaultsApplied].([]string)
	return applied
}

type PaymentResult struct {
	Success       bool           `json:"success"`
	TransactionID string         `json:"transaction_id"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Error         string         `json:"error,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Timestamp     time.Time      `json:"timestamp,omitempty"`
}

// FailedResult builds the failed result returned to callers for any error
// that stops a payment.
func FailedResult(transactionID string, request PaymentRequest, err error) PaymentResult {
	return PaymentResult{
		Success:       false,
		TransactionID: transactionID,
		Amount:        request.Amount,
		Currency:      request.Currency,
		Error:         err.Error(),
		Timestamp:     time.Now().UTC(),
	}
}

type StatusChange struct {
	Status TransactionStatus `json:"status"`
	At     time.Time         `json:"at"`
}

type Transaction struct {
	ID         string            `json:"id"`
	DeviceID   string            `json:"device_id"`
	DeviceType DeviceType        `json:"device_type"`
	Request    PaymentRequest    `json:"request"`
	Result     *PaymentResult    `json:"result,omitempty"`
	Status     TransactionStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	History    []StatusChange    `json:"history"`
}
