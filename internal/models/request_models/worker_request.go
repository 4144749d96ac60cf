package request_models

import (
	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type OnboardWorkerRequest struct {
	Bio            string                          `json:"bio"`
	HourlyRate     float64                         `json:"hourly_rate" binding:"required,gt=0"`
	Location       db_models.Location              `json:"location"`
	Availability   map[string]db_models.DayWindow  `json:"availability"`
	Certifications []string                        `json:"certifications"`
	ServiceIDs     []string                        `json:"service_ids" binding:"required,min=1,dive,uuid"`
}

type UpdateWorkerStatusRequest struct {
	Status db_models.WorkerStatus `json:"status" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type AssignServicesRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required,min=1,dive,uuid"`
}
