package models

import "time"

// TransactionRecord is the archived, flattened form of a settled transaction.
type TransactionRecord struct {
	ID           string            `gorm:"primaryKey" json:"id"`
	DeviceID     string            `gorm:"index;not null" json:"device_id"`
	DeviceType   DeviceType        `json:"device_type"`
	MerchantID   string            `gorm:"index" json:"merchant_id"`
	Amount       float64           `gorm:"not null" json:"amount"`
	Currency     string            `gorm:"size:3" json:"currency"`
	Description  string            `json:"description,omitempty"`
	InputType    string            `json:"input_type,omitempty"`
	Status       TransactionStatus `gorm:"index" json:"status"`
	FailedReason string            `json:"failed_reason,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	SettledAt    time.Time         `json:"settled_at"`
}

func (TransactionRecord) TableName() string {
	return "device_transactions"
}

// NewTransactionRecord flattens a terminal transaction for archiving.
func NewTransactionRecord(txn Transaction) TransactionRecord {
	record := TransactionRecord{
		ID:          txn.ID,
		DeviceID:    txn.DeviceID,
		DeviceType:  txn.DeviceType,
		MerchantID:  txn.Request.MerchantID,
		Amount:      txn.Request.Amount,
		Currency:    txn.Request.Currency,
		Description: txn.Request.Description,
		Status:      txn.Status,
		CreatedAt:   txn.CreatedAt,
		SettledAt:   txn.UpdatedAt,
	}
	if inputType, ok := txn.Request.Metadata[MetaInputType].(string); ok {
		record.InputType = inputType
	}
	if txn.Result != nil {
		record.FailedReason = txn.Result.Error
	}
	return record
}
