package models

// GeoPoint is a GeoJSON point: [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Location is a branch of the car-wash. Static reference data; Capacity is
// the maximum number of simultaneous in-progress services at the branch.
type Location struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	OperatingHours string   `json:"operatingHours"`
	Geo            GeoPoint `json:"geo"`
	Capacity       int      `json:"capacity"`
}

// Locations is the branch catalog.
var Locations = []Location{
	{
		ID:             "esp-makati",
		Name:           "Espuma Makati",
		Address:        "112 Chino Roces Ave, Makati, Metro Manila",
		OperatingHours: "Mon-Sun 8:00 AM - 6:00 PM",
		Geo:            GeoPoint{Type: "Point", Coordinates: []float64{121.0164, 14.5547}},
		Capacity:       3,
	},
	{
		ID:             "esp-quezon",
		Name:           "Espuma Quezon City",
		Address:        "45 Timog Ave, Diliman, Quezon City",
		OperatingHours: "Mon-Sun 8:00 AM - 6:00 PM",
		Geo:            GeoPoint{Type: "Point", Coordinates: []float64{121.0355, 14.6349}},
		Capacity:       2,
	},
	{
		ID:             "esp-bgc",
		Name:           "Espuma BGC",
		Address:        "7th Ave cor 30th St, Bonifacio Global City, Taguig",
		OperatingHours: "Mon-Sun 8:00 AM - 6:00 PM",
		Geo:            GeoPoint{Type: "Point", Coordinates: []float64{121.0523, 14.5507}},
		Capacity:       4,
	},
}

// FindLocation returns the branch with the given id, or false if unknown.
func FindLocation(id string) (Location, bool) {
	for _, loc := range Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
