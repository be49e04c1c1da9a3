package models

// Team groups players (through Role) and is edited by its managers
type Team struct {
	BaseModel
	Name        string   `json:"name" gorm:"size:30;not null" validate:"required,min=1,max=30"`
	Info        string   `json:"info" gorm:"size:1000" validate:"max=1000"`
	Type        TeamType `json:"type" gorm:"not null"`
	SlotsFemale int      `json:"slots_female" gorm:"not null"`
	SlotsMale   int      `json:"slots_male" gorm:"not null"`

	// Relationships
	Managers []User `json:"managers,omitempty" gorm:"many2many:team_managers"`
	Roles    []Role `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// ManagerIDs returns the ids of the loaded managers
func (t *Team) ManagerIDs() []uint {
	ids := make([]uint, 0, len(t.Managers))
	for _, m := range t.Managers {
		ids = append(ids, m.ID)
	}
	return ids
}
