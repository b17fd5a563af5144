package response

import "carmarket/internal/domain/entities"

type VehicleResponse struct {
	ID           string  `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Mileage      int     `json:"mileage"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	ImageURL     string  `json:"image_url"`
	Description  string  `json:"description"`
}

type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Price:        v.Price,
		Mileage:      v.Mileage,
		FuelType:     string(v.FuelType),
		Transmission: string(v.Transmission),
		ImageURL:     v.ImageURL,
		Description:  v.Description,
	}
}

func FromVehicles(vehicles []entities.Vehicle) VehicleListResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return VehicleListResponse{Vehicles: out, Total: len(out)}
}
