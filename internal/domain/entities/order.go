package entities

import (
	"encoding/json"
	"time"
)

// OrderStatus represents the payment outcome of a checkout.
type OrderStatus string

const (
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusDeclined OrderStatus = "declined"
)

// Order is a checkout snapshot of a cart.
//
// Lines and totals are copied at purchase time so later catalog changes
// cannot rewrite history.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response body (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type Order struct {
	ID                string      `json:"id"`
	SessionID         string      `json:"session_id"`
	Lines             []CartLine  `json:"lines"`
	TotalPrice        float64     `json:"total_price"`
	TotalCount        int         `json:"total_count"`
	PaymentMethod     string      `json:"payment_method"`
	ProviderPaymentID string      `json:"provider_payment_id"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
