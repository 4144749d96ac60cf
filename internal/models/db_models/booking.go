package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	WorkerID   uuid.UUID `gorm:"type:uuid;index:idx_bookings_worker_schedule" json:"worker_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index" json:"service_id"`

	Description string        `gorm:"type:text" json:"description"`
	ScheduledAt time.Time     `gorm:"index:idx_bookings_worker_schedule" json:"scheduled_at"`
	Status      BookingStatus `gorm:"size:20;default:pending;index" json:"status"`

	// Frozen at creation time; later rate or catalog changes never
	// retroactively alter an existing booking.
	EstimatedDuration int     `json:"estimated_duration"` // minutes
	TotalAmount       float64 `gorm:"type:decimal(10,2)" json:"total_amount"`

	CustomerLocation       datatypes.JSONType[Location] `json:"customer_location"`
	AdditionalRequirements datatypes.JSONType[[]string] `json:"additional_requirements"`

	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CancellationReason string     `gorm:"type:text" json:"cancellation_reason,omitempty"`

	Customer Account        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Worker   Worker         `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Service  CatalogService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Payment  *Payment       `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}
