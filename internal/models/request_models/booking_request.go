package request_models

import (
	"time"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type CreateBookingRequest struct {
	WorkerID               string             `json:"worker_id" binding:"required,uuid"`
	ServiceID              string             `json:"service_id" binding:"required,uuid"`
	ScheduledAt            time.Time          `json:"scheduled_at" binding:"required"`
	Description            string             `json:"description"`
	CustomerLocation       db_models.Location `json:"customer_location" binding:"required"`
	AdditionalRequirements []string           `json:"additional_requirements"`
}

type UpdateBookingStatusRequest struct {
	Status db_models.BookingStatus `json:"status" binding:"required"`
	Reason string                  `json:"reason"` // recorded when status is cancelled
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
