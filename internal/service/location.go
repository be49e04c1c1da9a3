package service

import (
	"context"
	"fmt"
	"strings"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LocationService handles business logic for locations
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Address   string   `json:"address" validate:"max=255"`
	Latitude  *float64 `json:"lat" validate:"omitempty,latitude"`
	Longitude *float64 `json:"lng" validate:"omitempty,longitude"`
}

// Create creates a location. Name and address together must be new.
func (s *LocationService) Create(ctx context.Context, actor *permission.Actor, req *CreateLocationRequest) (*LocationResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	location := &models.Location{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.repo.Create(location); err != nil {
		return nil, err
	}

	resp := newLocationResponse(location)
	return &resp, nil
}

// Get retrieves a location by ID
func (s *LocationService) Get(ctx context.Context, id uint) (*LocationResponse, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrLocationNotFound, "location")
	}
	resp := newLocationResponse(location)
	return &resp, nil
}

// Search lists locations whose name or address contains query
func (s *LocationService) Search(ctx context.Context, query string) ([]LocationResponse, error) {
	locations, err := s.repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	resp := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		resp = append(resp, newLocationResponse(&locations[i]))
	}
	return resp, nil
}
