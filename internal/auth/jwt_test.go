// SPDX-License-Identifier: MIT
package auth

import (
	"testing"

	"github.com/verdantgarden/verdant/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("VERDANT_JWT_SECRET", "test-secret")

	user := &models.User{ID: 7, Email: "gardener@example.com", IsGlobalAdmin: true}
	garden := &models.Garden{ID: 3, Subdomain: "ferns"}

	token, err := GenerateToken(user, garden)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "gardener@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.GardenID != 3 {
		t.Errorf("GardenID = %d, want 3", claims.GardenID)
	}
	if !claims.IsGlobalAdmin {
		t.Error("IsGlobalAdmin not carried in claims")
	}
}

func TestValidateTokenRejectsEmpty(t *testing.T) {
	if _, err := ValidateToken(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	t.Setenv("VERDANT_JWT_SECRET", "test-secret")

	user := &models.User{ID: 1, Email: "a@example.com"}
	garden := &models.Garden{ID: 1}
	token, err := GenerateToken(user, garden)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("VERDANT_JWT_SECRET", "secret-one")
	user := &models.User{ID: 1, Email: "a@example.com"}
	garden := &models.Garden{ID: 1}
	token, err := GenerateToken(user, garden)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Setenv("VERDANT_JWT_SECRET", "secret-two")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error when secret changes")
	}
}
