package gardens

import (
	"fmt"

	"github.com/verdantgarden/verdant/internal/models"
	"github.com/verdantgarden/verdant/internal/themes"
	"gorm.io/gorm"
)

// CreateGarden creates a new garden with the given subdomain and owner.
// Every garden starts with an active default theme.
func CreateGarden(db *gorm.DB, subdomain string, ownerID uint) (*models.Garden, error) {
	// Check if subdomain already exists
	var existing models.Garden
	result := db.Where("subdomain = ?", subdomain).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("subdomain %s already exists", subdomain)
	}

	garden := &models.Garden{
		Subdomain: subdomain,
		OwnerID:   ownerID,
		Title:     subdomain,
	}

	if err := db.Create(garden).Error; err != nil {
		return nil, fmt.Errorf("failed to create garden: %w", err)
	}

	// Add owner to garden_users with owner role
	gardenUser := &models.GardenUser{
		UserID:   ownerID,
		GardenID: garden.ID,
		Role:     "owner",
	}

	if err := db.Create(gardenUser).Error; err != nil {
		return nil, fmt.Errorf("failed to add owner to garden: %w", err)
	}

	// Seed the stock theme so the garden renders from the first request
	form := themes.NewThemeFormData()
	document, err := themes.MarshalDocument(themes.FormToDocument(form))
	if err != nil {
		return nil, fmt.Errorf("failed to build default theme: %w", err)
	}

	theme := &models.Theme{
		GardenID:   garden.ID,
		Title:      form.Title,
		Type:       form.Type,
		Kind:       form.Kind,
		ActiveMode: string(form.ActiveMode),
		Document:   document,
		Active:     true,
	}
	if err := db.Create(theme).Error; err != nil {
		return nil, fmt.Errorf("failed to create default theme: %w", err)
	}

	return garden, nil
}

// GetGardenBySubdomain retrieves a garden by subdomain
func GetGardenBySubdomain(db *gorm.DB, subdomain string) (*models.Garden, error) {
	var garden models.Garden
	result := db.Where("subdomain = ?", subdomain).First(&garden)
	if result.Error != nil {
		return nil, fmt.Errorf("garden not found: %w", result.Error)
	}
	return &garden, nil
}

// GetGardenByID retrieves a garden by ID
func GetGardenByID(db *gorm.DB, id uint) (*models.Garden, error) {
	var garden models.Garden
	result := db.First(&garden, id)
	if result.Error != nil {
		return nil, fmt.Errorf("garden not found: %w", result.Error)
	}
	return &garden, nil
}

// GetGardenByDomain retrieves a garden by custom domain
func GetGardenByDomain(db *gorm.DB, domain string) (*models.Garden, error) {
	var garden models.Garden
	result := db.Where("custom_domain = ?", domain).First(&garden)
	if result.Error != nil {
		return nil, fmt.Errorf("garden not found: %w", result.Error)
	}
	return &garden, nil
}

// ListGardens returns all gardens
func ListGardens(db *gorm.DB) ([]models.Garden, error) {
	var list []models.Garden
	result := db.Preload("Owner").Find(&list)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list gardens: %w", result.Error)
	}
	return list, nil
}

// AddUserToGarden adds a user to a garden with a specific role
func AddUserToGarden(db *gorm.DB, gardenID, userID uint, role string) error {
	// Validate role
	validRoles := map[string]bool{"owner": true, "admin": true, "editor": true}
	if !validRoles[role] {
		return fmt.Errorf("invalid role: %s (must be owner, admin, or editor)", role)
	}

	// Check if relationship already exists
	var existing models.GardenUser
	result := db.Where("garden_id = ? AND user_id = ?", gardenID, userID).First(&existing)
	if result.Error == nil {
		return fmt.Errorf("user already has access to this garden")
	}

	gardenUser := &models.GardenUser{
		UserID:   userID,
		GardenID: gardenID,
		Role:     role,
	}

	if err := db.Create(gardenUser).Error; err != nil {
		return fmt.Errorf("failed to add user to garden: %w", err)
	}

	return nil
}

// RemoveUserFromGarden removes a user's access to a garden
func RemoveUserFromGarden(db *gorm.DB, gardenID, userID uint) error {
	result := db.Where("garden_id = ? AND user_id = ?", gardenID, userID).Delete(&models.GardenUser{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove user from garden: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user does not have access to this garden")
	}
	return nil
}

// ListGardenUsers returns all users with access to a garden
func ListGardenUsers(db *gorm.DB, gardenID uint) ([]models.GardenUser, error) {
	var gardenUsers []models.GardenUser
	result := db.Where("garden_id = ?", gardenID).Preload("User").Find(&gardenUsers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list garden users: %w", result.Error)
	}
	return gardenUsers, nil
}

// DeleteGarden soft-deletes a garden
func DeleteGarden(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Garden{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete garden: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("garden not found")
	}
	return nil
}

// AddCustomDomain adds a custom domain to a garden
func AddCustomDomain(db *gorm.DB, gardenID uint, domain string) error {
	// Check if domain is already in use (including soft-deleted gardens)
	var existing models.Garden
	result := db.Unscoped().Where("custom_domain = ?", domain).First(&existing)
	if result.Error == nil {
		if existing.DeletedAt.Valid {
			// Domain is on a deleted garden - clear it so it can be reused
			db.Unscoped().Model(&existing).Update("custom_domain", nil)
		} else {
			return fmt.Errorf("domain %s is already in use by garden '%s'", domain, existing.Subdomain)
		}
	}

	garden, err := GetGardenByID(db, gardenID)
	if err != nil {
		return err
	}

	garden.CustomDomain = &domain
	if err := db.Save(garden).Error; err != nil {
		return fmt.Errorf("failed to add custom domain: %w", err)
	}

	return nil
}

// ActiveTheme returns the garden's active theme record
func ActiveTheme(db *gorm.DB, gardenID uint) (*models.Theme, error) {
	var theme models.Theme
	result := db.Where("garden_id = ? AND active = ?", gardenID, true).First(&theme)
	if result.Error != nil {
		return nil, fmt.Errorf("active theme not found: %w", result.Error)
	}
	return &theme, nil
}
