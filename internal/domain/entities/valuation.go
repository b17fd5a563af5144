package entities

import "time"

// Condition buckets a vehicle's state for the valuation estimator.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// ConditionMultiplier returns the estimator scale for c. Unknown conditions
// price as poor.
func ConditionMultiplier(c Condition) float64 {
	switch c {
	case ConditionExcellent:
		return 1.2
	case ConditionGood:
		return 1.0
	case ConditionFair:
		return 0.8
	default:
		return 0.6
	}
}

// Valuation is a computed market-value estimate for a described vehicle.
// EstimatedValue is an estimate band, not a quote.
type Valuation struct {
	ID             string    `json:"id"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Mileage        int       `json:"mileage"`
	Condition      Condition `json:"condition"`
	Features       []string  `json:"features,omitempty"`
	Location       string    `json:"location,omitempty"`
	ContactName    string    `json:"contact_name"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	EstimatedValue int       `json:"estimated_value"`
	CreatedAt      time.Time `json:"created_at"`
}
