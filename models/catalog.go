package models

// Service is a bookable car-wash service. Prices are VAT-inclusive PHP, keyed
// by vehicle type; DurationMin drives slot arithmetic.
type Service struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DurationMin int                `json:"durationMin"`
	Prices      map[string]float64 `json:"prices"` // vehicle type -> price
}

// Product is a retail add-on sold alongside services.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // VAT-inclusive PHP
	Stock int     `json:"stock"`
}

// Vehicle types accepted by the service catalog.
var VehicleTypes = []string{"sedan", "suv", "pickup", "van"}

// Services is the service catalog.
var Services = []Service{
	{
		ID:          "svc-express-wash",
		Name:        "Express Wash",
		Description: "Exterior hand wash, rinse and dry",
		DurationMin: 30,
		Prices:      map[string]float64{"sedan": 250, "suv": 300, "pickup": 300, "van": 350},
	},
	{
		ID:          "svc-premium-wash",
		Name:        "Premium Wash & Vacuum",
		Description: "Exterior wash, interior vacuum, tire black",
		DurationMin: 60,
		Prices:      map[string]float64{"sedan": 450, "suv": 550, "pickup": 550, "van": 650},
	},
	{
		ID:          "svc-wax-detail",
		Name:        "Wax & Buff Detailing",
		Description: "Full wash plus machine wax and buffing",
		DurationMin: 90,
		Prices:      map[string]float64{"sedan": 1200, "suv": 1500, "pickup": 1500, "van": 1800},
	},
	{
		ID:          "svc-interior-detail",
		Name:        "Deep Interior Detailing",
		Description: "Shampoo seats and carpets, dashboard treatment",
		DurationMin: 120,
		Prices:      map[string]float64{"sedan": 2000, "suv": 2500, "pickup": 2500, "van": 3000},
	},
	{
		ID:          "svc-engine-wash",
		Name:        "Engine Bay Wash",
		Description: "Degrease and dress the engine bay",
		DurationMin: 45,
		Prices:      map[string]float64{"sedan": 500, "suv": 600, "pickup": 600, "van": 700},
	},
}

// Products is the retail catalog.
var Products = []Product{
	{ID: "prd-microfiber", Name: "Microfiber Towel Set", Price: 350, Stock: 40},
	{ID: "prd-shampoo", Name: "Car Shampoo 1L", Price: 280, Stock: 25},
	{ID: "prd-tire-black", Name: "Tire Black Gel", Price: 180, Stock: 30},
	{ID: "prd-air-freshener", Name: "Air Freshener", Price: 120, Stock: 60},
	{ID: "prd-glass-cleaner", Name: "Glass Cleaner Spray", Price: 200, Stock: 20},
}

// FindService returns the service with the given id, or false if unknown.
func FindService(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// FindProduct returns the product with the given id, or false if unknown.
func FindProduct(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
