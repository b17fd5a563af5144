package entities

import "time"

// ListingStatus represents the review lifecycle of a seller listing.
//
// Submissions start pending; moderation moves them to published or rejected.
type ListingStatus string

const (
	ListingStatusPendingReview ListingStatus = "pending_review"
	ListingStatusPublished     ListingStatus = "published"
	ListingStatusRejected      ListingStatus = "rejected"
)

// Listing is a seller-submitted vehicle advertisement produced by the
// sell-a-car flow.
//
// Storage model (DynamoDB backend):
//   - PK: id
type Listing struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Make          string        `json:"make"`
	Model         string        `json:"model"`
	Year          int           `json:"year"`
	Trim          string        `json:"trim,omitempty"`
	BodyType      string        `json:"body_type,omitempty"`
	Mileage       int           `json:"mileage"`
	VIN           string        `json:"vin,omitempty"`
	ExteriorColor string        `json:"exterior_color,omitempty"`
	InteriorColor string        `json:"interior_color,omitempty"`
	FuelType      FuelType      `json:"fuel_type"`
	Transmission  Transmission  `json:"transmission"`
	Drivetrain    string        `json:"drivetrain,omitempty"`
	Photos        []string      `json:"photos,omitempty"`
	Price         float64       `json:"price"`
	Description   string        `json:"description"`
	SellerName    string        `json:"seller_name"`
	SellerEmail   string        `json:"seller_email"`
	SellerPhone   string        `json:"seller_phone"`
	SellerCity    string        `json:"seller_city,omitempty"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
