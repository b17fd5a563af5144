package response

import (
	"time"

	"carmarket/internal/domain/entities"
)

type OrderResponse struct {
	ID                string             `json:"id"`
	SessionID         string             `json:"session_id"`
	Lines             []CartLineResponse `json:"lines"`
	TotalPrice        float64            `json:"total_price"`
	TotalCount        int                `json:"total_count"`
	PaymentMethod     string             `json:"payment_method"`
	ProviderPaymentID string             `json:"provider_payment_id"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	lines := make([]CartLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, CartLineResponse{
			Vehicle:  FromVehicle(l.Vehicle),
			Quantity: l.Quantity,
			Subtotal: l.Vehicle.Price * float64(l.Quantity),
		})
	}
	return OrderResponse{
		ID:                o.ID,
		SessionID:         o.SessionID,
		Lines:             lines,
		TotalPrice:        o.TotalPrice,
		TotalCount:        o.TotalCount,
		PaymentMethod:     o.PaymentMethod,
		ProviderPaymentID: o.ProviderPaymentID,
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

func FromOrders(orders []entities.Order) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return OrderListResponse{Orders: out, Total: len(out)}
}
