package repository

import "carmarket/internal/domain/entities"

// featuredCount is how many catalog entries the landing surface shows.
const featuredCount = 10

// vehicleMakes is the curated make list offered by the filter and sell
// forms. It is broader than the seeded inventory on purpose.
var vehicleMakes = []string{
	"Audi",
	"BMW",
	"Ford",
	"Honda",
	"Hyundai",
	"Kia",
	"Mazda",
	"Mercedes-Benz",
	"Nissan",
	"Tesla",
	"Toyota",
	"Volkswagen",
}

// vehicleModels maps a make to its curated model choices for the sell form.
var vehicleModels = map[string][]string{
	"Toyota": {"Camry", "Corolla", "RAV4", "Highlander", "Tacoma", "Prius"},
	"Honda":  {"Civic", "Accord", "CR-V", "Pilot", "Odyssey", "Fit"},
	"Ford":   {"F-150", "Escape", "Explorer", "Mustang", "Bronco", "Edge"},
	"BMW":    {"3 Series", "5 Series", "X3", "X5", "7 Series", "i4"},
}

// SeedVehicles returns the static sample inventory in its canonical order.
func SeedVehicles() []entities.Vehicle {
	return []entities.Vehicle{
		{
			ID: "1", Make: "Toyota", Model: "Camry", Year: 2022, Price: 27999, Mileage: 15000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/48/e6/d4/48e6d4a3a1fe79ddbad2c541703bd359.jpg",
			Description: "Well-maintained Toyota Camry with low mileage. Features include leather seats, sunroof, and advanced safety systems.",
		},
		{
			ID: "2", Make: "Honda", Model: "Civic", Year: 2021, Price: 22500, Mileage: 18000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/14/9e/79/149e79ae64b8bd6969a49c9da79f1439.jpg",
			Description: "Sporty Honda Civic in excellent condition. Includes backup camera, Bluetooth connectivity, and fuel-efficient engine.",
		},
		{
			ID: "3", Make: "BMW", Model: "3 Series", Year: 2020, Price: 38500, Mileage: 25000,
			FuelType: entities.FuelDiesel, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/e4/2f/52/e42f52918e6dbd6a41513b83671138a3.jpg",
			Description: "Elegant BMW 3 Series with premium features. Includes navigation, leather interior, and premium sound system.",
		},
		{
			ID: "4", Make: "Ford", Model: "F-150", Year: 2019, Price: 35000, Mileage: 30000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/d0/17/6d/d0176d01f3b2ce35dd70095d4ae6d60b.jpg",
			Description: "Powerful Ford F-150 truck in great condition. Perfect for work and adventure with towing package and off-road capabilities.",
		},
		{
			ID: "5", Make: "Tesla", Model: "Model 3", Year: 2021, Price: 48999, Mileage: 12000,
			FuelType: entities.FuelElectric, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/2a/7a/6b/2a7a6b80010057270b280d07eac76d8a.jpg",
			Description: "Tesla Model 3 with Autopilot. Amazing range and performance with latest software updates installed.",
		},
		{
			ID: "6", Make: "Mercedes-Benz", Model: "C-Class", Year: 2020, Price: 41500, Mileage: 22000,
			FuelType: entities.FuelDiesel, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/97/7d/24/977d24a0b5e818dc79fbefc9e2c4af5a.jpg",
			Description: "Luxurious Mercedes C-Class with premium features. Includes MBUX system, heated seats, and driver assistance package.",
		},
		{
			ID: "7", Make: "Nissan", Model: "Rogue", Year: 2021, Price: 26800, Mileage: 16500,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionCVT,
			ImageURL:    "https://i.pinimg.com/736x/f0/97/91/f09791c528c17d8f6b407f6a22557617.jpg",
			Description: "Versatile Nissan Rogue SUV with ample space. Features include Apple CarPlay, Android Auto, and ProPilot Assist.",
		},
		{
			ID: "8", Make: "Audi", Model: "Q5", Year: 2019, Price: 39900, Mileage: 28000,
			FuelType: entities.FuelDiesel, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/04/00/50/0400506b5b2f513212ccf2c10a60d8e3.jpg",
			Description: "Premium Audi Q5 SUV with quattro all-wheel drive. Includes virtual cockpit, Bang & Olufsen sound, and panoramic sunroof.",
		},
		{
			ID: "9", Make: "Hyundai", Model: "Tucson", Year: 2021, Price: 24500, Mileage: 14000,
			FuelType: entities.FuelHybrid, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/e1/c4/9f/e1c49f1aacc947efb5bca8e8b65aaf94.jpg",
			Description: "Modern Hyundai Tucson with hybrid efficiency. Features include large touchscreen, advanced safety features, and comfortable interior.",
		},
		{
			ID: "10", Make: "Volkswagen", Model: "Golf", Year: 2020, Price: 23900, Mileage: 20000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionManual,
			ImageURL:    "https://i.pinimg.com/736x/de/36/b6/de36b63ebe2aa619e60dd42203a5faad.jpg",
			Description: "Sporty Volkswagen Golf with German engineering. Includes digital cockpit, CarPlay/Android Auto, and driver assistance package.",
		},
		{
			ID: "11", Make: "Mazda", Model: "CX-5", Year: 2020, Price: 27500, Mileage: 19000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/d9/bf/91/d9bf91b5f98451c16501293be95d2ce5.jpg",
			Description: "Stylish Mazda CX-5 with premium feel. Includes Bose audio, leather seats, and i-ACTIVSENSE safety features.",
		},
		{
			ID: "12", Make: "Kia", Model: "Telluride", Year: 2021, Price: 39500, Mileage: 15000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/fd/d3/28/fdd328741b61c8b9e4fc6a51f42c5896.jpg",
			Description: "Spacious Kia Telluride with three rows of seating. Perfect family SUV with advanced tech and safety features.",
		},
		{
			ID: "13", Make: "Subaru", Model: "Outback", Year: 2020, Price: 29800, Mileage: 22000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionCVT,
			ImageURL:    "https://i.pinimg.com/736x/86/d0/6d/86d06dd5c910a7ff29938d2969e8aaeb.jpg",
			Description: "Adventure-ready Subaru Outback with all-wheel drive. Features include X-Mode for off-road capability and EyeSight safety system.",
		},
		{
			ID: "14", Make: "Porsche", Model: "911", Year: 2019, Price: 98500, Mileage: 12000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/3f/df/8f/3fdf8f6def1440a98f0670c548704ccd.jpg",
			Description: "Iconic Porsche 911 sports car in pristine condition. Includes sport chrono package, premium audio, and ceramic brakes.",
		},
		{
			ID: "15", Make: "Jeep", Model: "Wrangler", Year: 2021, Price: 42000, Mileage: 8000,
			FuelType: entities.FuelPetrol, Transmission: entities.TransmissionAutomatic,
			ImageURL:    "https://i.pinimg.com/736x/d8/39/41/d83941a4954f5fc605e5ae2b70a40694.jpg",
			Description: "Trail-rated Jeep Wrangler ready for adventure. Features include removable top, off-road tires, and modern tech amenities.",
		},
	}
}
