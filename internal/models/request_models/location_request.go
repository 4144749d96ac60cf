package request_models

type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}
