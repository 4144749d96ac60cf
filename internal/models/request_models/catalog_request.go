package request_models

type UpsertCatalogServiceRequest struct {
	Name              string  `json:"name" binding:"required,max=255"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	EstimatedDuration int     `json:"estimated_duration" binding:"required,gt=0"`
	IsActive          *bool   `json:"is_active"`
}
