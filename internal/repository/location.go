package repository

import (
	"strings"

	"pickup-sports-backend/internal/database/models"

	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return translateError(r.db.Create(location).Error)
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetOrCreate returns the location with this name and address, creating it if needed
func (r *LocationRepository) GetOrCreate(name, address string) (*models.Location, error) {
	location := models.Location{Name: name, Address: address}
	err := r.db.Where("name = ? AND address = ?", name, address).FirstOrCreate(&location).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &location, nil
}

// Search finds locations whose name or address contains query (case-insensitive)
func (r *LocationRepository) Search(query string) ([]models.Location, error) {
	var locations []models.Location
	db := r.db.Order("name ASC")
	if q := strings.TrimSpace(query); q != "" {
		pattern := "%" + q + "%"
		db = db.Where("name ILIKE ? OR address ILIKE ?", pattern, pattern)
	}
	err := db.Find(&locations).Error
	return locations, err
}
