package domain

import (
	"errors"
)

var (
	MessageSuccessWebhook = "webhook processed successfully"
	MessageFailedWebhook  = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPaymentFailed       = errors.New("payment processing failed")
)

const (
	PlanPriceProIDR     = 49000
	PlanPricePremiumIDR = 99000
)

type (
	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
