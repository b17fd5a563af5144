package response

import (
	"time"

	"carmarket/internal/domain/entities"
)

type ValuationResponse struct {
	ID             string    `json:"id"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Mileage        int       `json:"mileage"`
	Condition      string    `json:"condition"`
	Features       []string  `json:"features,omitempty"`
	Location       string    `json:"location,omitempty"`
	EstimatedValue int       `json:"estimated_value"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromValuation(v entities.Valuation) ValuationResponse {
	return ValuationResponse{
		ID:             v.ID,
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		Mileage:        v.Mileage,
		Condition:      string(v.Condition),
		Features:       v.Features,
		Location:       v.Location,
		EstimatedValue: v.EstimatedValue,
		CreatedAt:      v.CreatedAt,
	}
}
