package models

// User is a player account. Email may be blank, but a non-blank email
// is unique across all users.
type User struct {
	BaseModel
	Username    string `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,max=150"`
	Email       string `json:"email" gorm:"size:254;not null;uniqueIndex:idx_users_email_not_blank,where:email <> ''" validate:"omitempty,email,max=254"`
	FirstName   string `json:"first_name" gorm:"size:30" validate:"max=30"`
	LastName    string `json:"last_name" gorm:"size:150" validate:"max=150"`
	Bio         string `json:"bio" gorm:"type:text"`
	Phone       string `json:"phone" gorm:"size:12" validate:"max=12"`
	Gender      string `json:"gender" gorm:"size:1" validate:"omitempty,oneof=F M"`
	IsSuperuser bool   `json:"is_superuser" gorm:"not null"`

	// Relationships
	ManagedTeams []Team `json:"managed_teams,omitempty" gorm:"many2many:team_managers"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
