package response

import "carmarket/internal/domain/entities"

type CartLineResponse struct {
	Vehicle  VehicleResponse `json:"vehicle"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

// CartResponse carries the derived totals alongside the lines so clients
// never compute prices themselves.
type CartResponse struct {
	SessionID  string             `json:"session_id"`
	Lines      []CartLineResponse `json:"lines"`
	TotalPrice float64            `json:"total_price"`
	TotalCount int                `json:"total_count"`
}

func FromCart(c entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			Vehicle:  FromVehicle(l.Vehicle),
			Quantity: l.Quantity,
			Subtotal: l.Vehicle.Price * float64(l.Quantity),
		})
	}
	return CartResponse{
		SessionID:  c.SessionID,
		Lines:      lines,
		TotalPrice: c.TotalPrice(),
		TotalCount: c.TotalCount(),
	}
}
