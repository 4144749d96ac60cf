package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	BaseModel
	BookingID             uuid.UUID     `gorm:"type:uuid;uniqueIndex" json:"booking_id"`
	StripePaymentIntentID string        `gorm:"index" json:"stripe_payment_intent_id"`
	Amount                float64       `gorm:"type:decimal(10,2)" json:"amount"`
	Currency              string        `gorm:"size:3" json:"currency"`
	Status                PaymentStatus `gorm:"size:20;default:pending;index" json:"status"`
	ProcessedAt           *time.Time    `json:"processed_at"`
	RefundedAt            *time.Time    `json:"refunded_at"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
