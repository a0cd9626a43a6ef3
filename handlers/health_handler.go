package handlers

import (
	"shop_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Status - GET /
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	dbStatus := "connected"
	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "error"
	}

	return c.JSON(models.SuccessResponse("Shop backend is running", fiber.Map{
		"service":  "shop_backend",
		"database": dbStatus,
	}))
}
