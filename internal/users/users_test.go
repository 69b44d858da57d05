package users

import (
	"testing"

	"github.com/verdantgarden/verdant/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return database
}

func TestCreateUser(t *testing.T) {
	database := setupTestDB(t)

	user, err := CreateUser(database, "  Gardener@Example.COM ", "seedling")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Email != "gardener@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "seedling" || user.PasswordHash == "" {
		t.Error("password not hashed")
	}
	if err := ValidatePassword(user, "seedling"); err != nil {
		t.Errorf("ValidatePassword failed: %v", err)
	}
	if err := ValidatePassword(user, "wrong"); err == nil {
		t.Error("wrong password should not validate")
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	database := setupTestDB(t)

	if _, err := CreateUser(database, "a@example.com", "pw"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := CreateUser(database, "A@example.com", "pw"); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestCreateUserRestoresSoftDeleted(t *testing.T) {
	database := setupTestDB(t)

	user, err := CreateUser(database, "a@example.com", "old-pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := DeleteUser(database, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	restored, err := CreateUser(database, "a@example.com", "new-pw")
	if err != nil {
		t.Fatalf("CreateUser after delete failed: %v", err)
	}
	if restored.ID != user.ID {
		t.Errorf("restored user ID = %d, want original %d", restored.ID, user.ID)
	}

	loaded, err := GetUserByEmail(database, "a@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if err := ValidatePassword(loaded, "new-pw"); err != nil {
		t.Errorf("restored user should carry the new password: %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	database := setupTestDB(t)

	created, err := CreateUser(database, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := GetUserByID(database, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got.Email != "a@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if _, err := GetUserByID(database, 9999); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestListUsers(t *testing.T) {
	database := setupTestDB(t)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := CreateUser(database, email, "pw"); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", email, err)
		}
	}

	list, err := ListUsers(database)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("user count = %d, want 2", len(list))
	}
}

func TestSetGlobalAdmin(t *testing.T) {
	database := setupTestDB(t)

	user, err := CreateUser(database, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := SetGlobalAdmin(database, user.ID, true); err != nil {
		t.Fatalf("SetGlobalAdmin failed: %v", err)
	}
	loaded, err := GetUserByID(database, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if !loaded.IsGlobalAdmin {
		t.Error("user should be global admin")
	}

	if err := SetGlobalAdmin(database, 9999, true); err == nil {
		t.Error("expected error for unknown user")
	}
}
