package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop_backend/models"
	"shop_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret-key"

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Total   *int64          `json:"total"`
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupTestApp wires the handlers onto a fiber app the same way main does.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)

	app := fiber.New()

	authHandler := NewAuthHandler(db, testSecret)
	productHandler := NewProductHandler(db)
	orderHandler := NewOrderHandler(db)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	products := api.Group("/products")
	products.Get("/", productHandler.GetAllProducts)
	products.Get("/:id", productHandler.GetProduct)

	orders := api.Group("/orders", utils.AuthMiddleware(testSecret))
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/my-orders", orderHandler.GetMyOrders)

	return app, db
}

// doJSON performs a request against the app and decodes the response envelope.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}

	return resp.StatusCode, env
}

// registerUser creates a user through the register endpoint and returns the
// sanitized user plus a valid session token.
func registerUser(t *testing.T, app *fiber.App, name, email, password string) (models.PublicUser, string) {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register returned status %d (error: %q)", status, env.Error)
	}

	var data struct {
		User  models.PublicUser `json:"user"`
		Token string            `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode register data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("register returned empty token")
	}

	return data.User, data.Token
}
