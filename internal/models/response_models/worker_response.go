package response_models

import "github.com/dinesh3456/essential-workers-booking/internal/models/db_models"

type NearbyWorkerResponse struct {
	Worker     *db_models.Worker `json:"worker"`
	DistanceKm float64           `json:"distance_km"`
}
