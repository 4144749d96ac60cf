package db_models

import "time"

type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleWorker   AccountRole = "worker"
	RoleAdmin    AccountRole = "admin"
)

type Account struct {
	BaseModel
	FirstName       string      `gorm:"size:100" json:"first_name"`
	LastName        string      `gorm:"size:100" json:"last_name"`
	Email           string      `gorm:"size:255;unique" json:"email"`
	PhoneNumber     string      `gorm:"size:20" json:"phone_number"`
	PasswordHash    string      `json:"-"`
	Role            AccountRole `gorm:"size:20;default:customer" json:"role"`
	ProfileImage    string      `json:"profile_image"`
	FCMToken        string      `json:"-"`
	IsEmailVerified bool        `gorm:"default:false" json:"is_email_verified"`
	IsPhoneVerified bool        `gorm:"default:false" json:"is_phone_verified"`
	IsActive        bool        `gorm:"default:true" json:"is_active"`
	LastLoginAt     *time.Time  `json:"last_login_at"`

	WorkerProfile *Worker `gorm:"foreignKey:AccountID" json:"worker_profile,omitempty"`
}
