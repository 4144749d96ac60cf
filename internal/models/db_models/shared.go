package db_models

// Coordinates is a WGS84 lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is the address snapshot embedded in bookings and worker
// profiles. A booking owns its copy; later address edits never touch it.
type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	ZipCode     string      `json:"zip_code"`
	Coordinates Coordinates `json:"coordinates"`
}
