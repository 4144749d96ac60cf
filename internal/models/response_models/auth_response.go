package response_models

import "github.com/dinesh3456/essential-workers-booking/internal/models/db_models"

type AuthResponse struct {
	Token   string             `json:"token"`
	Account *db_models.Account `json:"account"`
}
