package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// JWT Settings
	JWTSecret string

	// CORS Settings
	CORSAllowOrigins string
	CORSAllowMethods string
	CORSAllowHeaders string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "4000"),
		HOST:        getEnv("HOST", ""),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CORSAllowOrigins: "*",
		CORSAllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		CORSAllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}

	if config.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if config.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
