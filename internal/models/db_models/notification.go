package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationTypeBookingUpdate NotificationType = "booking_update"
	NotificationTypePayment       NotificationType = "payment"
	NotificationTypeSystem        NotificationType = "system"
)

// Notification is the persisted record of one dispatch to one recipient.
// It is the source of truth regardless of channel delivery outcome.
type Notification struct {
	BaseModel
	AccountID uuid.UUID        `gorm:"type:uuid;index" json:"account_id"`
	Title     string           `gorm:"size:255" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Type      NotificationType `gorm:"size:30" json:"type"`
	IsRead    bool             `gorm:"default:false" json:"is_read"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}
