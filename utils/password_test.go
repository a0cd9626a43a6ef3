package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "secret123" {
		t.Error("hash equals the raw password")
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("hash %q does not carry the expected bcrypt cost prefix", hash)
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password did not verify")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("wrong password verified")
	}
	if CheckPasswordHash("secret123", "not-a-hash") {
		t.Error("garbage hash verified")
	}
}
