package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WorkerStatus string

const (
	WorkerStatusPending   WorkerStatus = "pending"
	WorkerStatusApproved  WorkerStatus = "approved"
	WorkerStatusSuspended WorkerStatus = "suspended"
	WorkerStatusRejected  WorkerStatus = "rejected"
)

// DayWindow is one weekday's working window.
type DayWindow struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type Worker struct {
	BaseModel
	AccountID     uuid.UUID                               `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	Bio           string                                  `gorm:"type:text" json:"bio"`
	HourlyRate    float64                                 `gorm:"type:decimal(10,2);default:0" json:"hourly_rate"`
	Availability  datatypes.JSONType[map[string]DayWindow] `json:"availability"`
	Location      datatypes.JSONType[Location]            `json:"location"`
	Rating        float64                                 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	TotalReviews  int                                     `gorm:"default:0" json:"total_reviews"`
	CompletedJobs int                                     `gorm:"default:0" json:"completed_jobs"`
	Status        WorkerStatus                            `gorm:"size:20;default:pending;index" json:"status"`
	Certifications datatypes.JSONType[[]string]           `json:"certifications"`
	IsAvailable   bool                                    `gorm:"default:true" json:"is_available"`

	Account  Account          `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Services []CatalogService `gorm:"many2many:worker_services" json:"services,omitempty"`
}

// Bookable reports whether the worker may accept new bookings.
func (w *Worker) Bookable() bool {
	return w.Status == WorkerStatusApproved && w.IsAvailable
}
