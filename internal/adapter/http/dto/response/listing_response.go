package response

import (
	"time"

	"carmarket/internal/domain/entities"
)

type ListingResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Trim          string    `json:"trim,omitempty"`
	BodyType      string    `json:"body_type,omitempty"`
	Mileage       int       `json:"mileage"`
	VIN           string    `json:"vin,omitempty"`
	ExteriorColor string    `json:"exterior_color,omitempty"`
	InteriorColor string    `json:"interior_color,omitempty"`
	FuelType      string    `json:"fuel_type"`
	Transmission  string    `json:"transmission"`
	Drivetrain    string    `json:"drivetrain,omitempty"`
	Photos        []string  `json:"photos,omitempty"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	SellerName    string    `json:"seller_name"`
	SellerCity    string    `json:"seller_city,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromListing omits the seller's email and phone; contact details stay
// server-side once a listing is submitted.
func FromListing(l entities.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Make:          l.Make,
		Model:         l.Model,
		Year:          l.Year,
		Trim:          l.Trim,
		BodyType:      l.BodyType,
		Mileage:       l.Mileage,
		VIN:           l.VIN,
		ExteriorColor: l.ExteriorColor,
		InteriorColor: l.InteriorColor,
		FuelType:      string(l.FuelType),
		Transmission:  string(l.Transmission),
		Drivetrain:    l.Drivetrain,
		Photos:        l.Photos,
		Price:         l.Price,
		Description:   l.Description,
		SellerName:    l.SellerName,
		SellerCity:    l.SellerCity,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

func FromListings(listings []entities.Listing) ListingListResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, FromListing(l))
	}
	return ListingListResponse{Listings: out, Total: len(out)}
}
