package response_models

import "github.com/dinesh3456/essential-workers-booking/internal/models/db_models"

type GeocodeResponse struct {
	Address     string                `json:"address"`
	Coordinates db_models.Coordinates `json:"coordinates"`
	City        string                `json:"city"`
	State       string                `json:"state"`
	ZipCode     string                `json:"zip_code"`
}
