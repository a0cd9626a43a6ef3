package handlers

import (
	"errors"
	"log"
	"strconv"

	"shop_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.DB.Find(&products).Error; err != nil {
		log.Printf("Failed to fetch products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch products"))
	}

	return c.JSON(models.ListResponse(products, int64(len(products))))
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch product"))
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
		}
		log.Printf("Failed to fetch product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch product"))
	}

	return c.JSON(models.SuccessResponse("", product))
}
