package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts payment providers.
//
// Checkout uses it to process a payment and persists the provider response
// payload for traceability. The default implementation simulates acceptance
// after a fixed delay; a Mercado Pago implementation can be switched in by
// configuration.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
