package entities

// FuelType is the drivetrain energy source of a vehicle.
//
// The filter surface treats this as a closed set, but catalog data keeps the
// field open so imported inventory with other fuels still round-trips.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelElectric FuelType = "Electric"
)

// Transmission is the gearbox kind of a vehicle.
type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
	TransmissionCVT       Transmission = "CVT"
)

// Vehicle is one catalog entry available to browse.
//
// Records are seeded at startup and never mutated afterwards; the ID is
// stable for the process lifetime. Price is a USD display amount, mileage is
// in kilometers.
type Vehicle struct {
	ID           string       `json:"id"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuel_type"`
	Transmission Transmission `json:"transmission"`
	ImageURL     string       `json:"image_url"`
	Description  string       `json:"description"`
}
