package handlers

import (
	"errors"
	"log"

	"shop_backend/models"
	"shop_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: jwtSecret}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData is the success payload for both register and login.
type AuthData struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Name, email and password are required"))
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("User already exists"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check existing user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not register user"))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not hash password"))
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		// The unique index is the real arbiter; the pre-check above only
		// gives a friendlier fast path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("User already exists"))
		}
		log.Printf("Failed to create user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not register user"))
	}

	token, err := utils.GenerateToken(&user, h.JWTSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not generate token"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(
		"User registered successfully",
		AuthData{User: user.Public(), Token: token},
	))
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required"))
	}

	// Unknown email and wrong password answer identically so the two cases
	// cannot be told apart.
	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid credentials"))
		}
		log.Printf("Failed to fetch user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not login"))
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid credentials"))
	}

	token, err := utils.GenerateToken(&user, h.JWTSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not login"))
	}

	return c.JSON(models.SuccessResponse(
		"Login successful",
		AuthData{User: user.Public(), Token: token},
	))
}
