package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	ReviewerID uuid.UUID `gorm:"type:uuid;index" json:"reviewer_id"`
	WorkerID   uuid.UUID `gorm:"type:uuid;index" json:"worker_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid" json:"service_id"`
	BookingID  uuid.UUID `gorm:"type:uuid;index" json:"booking_id"`
	Rating     int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`

	Reviewer Account `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Worker   Worker  `gorm:"foreignKey:WorkerID" json:"-"`
}
