package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. AccountID references accounts.id
// without a uniqueness constraint: the account-to-profile relationship is 1:1
// by convention only.
type ProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Username   string    `gorm:"type:varchar(100);not null;index"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	MiddleName string    `gorm:"type:varchar(100)"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	BirthDate  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
