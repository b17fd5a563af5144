package request

import "strings"

type AddCartItemRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

// UpdateCartItemRequest carries the desired line quantity. A pointer so
// an explicit 0 binds (the guard downstream treats it as a no-op); only an
// absent field is rejected.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutRequest is the checkout payload. The payment method is optional;
// an omitted or blank value resolves to the default card method.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (r CheckoutRequest) ResolvePaymentMethod() string {
	return strings.TrimSpace(r.PaymentMethod)
}

type SaveVehicleRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}
