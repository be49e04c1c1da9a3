package models

// Location is a place where games are played, unique by name and address.
type Location struct {
	BaseModel
	Name      string   `json:"name" gorm:"size:255;not null;uniqueIndex:idx_locations_name_address" validate:"required,max=255"`
	Address   string   `json:"address" gorm:"size:255;not null;uniqueIndex:idx_locations_name_address" validate:"max=255"`
	Latitude  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
