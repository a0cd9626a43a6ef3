package handlers

import (
	"log"

	"shop_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// OrderItemRequest mirrors the line-item shape supplied by the client. Items
// are persisted exactly as given; the order keeps its own snapshot of name,
// price and image independent of later catalog changes.
type OrderItemRequest struct {
	ProductID uint    `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// CreateOrderRequest defines the payload for order placement
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	Total           *float64           `json:"total"`
	ShippingAddress *models.Address    `json:"shippingAddress"`
}

// CreateOrder - POST /api/orders (auth required)
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	if len(req.Items) == 0 || req.Total == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Items and total are required"))
	}

	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user session"))
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	order := models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: *req.Total,
		Status:      models.OrderStatusPending,
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = *req.ShippingAddress
	}

	if err := h.DB.Create(&order).Error; err != nil {
		log.Printf("Failed to create order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create order"))
	}

	// Reload with the owning user populated for the response view
	if err := h.DB.Preload("Items").Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).First(&order, order.ID).Error; err != nil {
		log.Printf("Failed to load created order %d: %v", order.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create order"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Order created", order))
}

// GetMyOrders - GET /api/orders/my-orders (auth required)
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user session"))
	}

	var orders []models.Order
	err := h.DB.Preload("Items").Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error

	if err != nil {
		log.Printf("Failed to fetch orders for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch orders"))
	}

	return c.JSON(models.ListResponse(orders, int64(len(orders))))
}
