package db_models

type CatalogService struct {
	BaseModel
	Name              string  `gorm:"size:255" json:"name"`
	Description       string  `gorm:"type:text" json:"description"`
	Category          string  `gorm:"size:100;index" json:"category"`
	Price             float64 `gorm:"type:decimal(10,2)" json:"price"`
	EstimatedDuration int     `json:"estimated_duration"` // minutes
	IsActive          bool    `gorm:"default:true" json:"is_active"`
}
