package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// UserAccount mirrors the identity subsystem's user table. Reads are free;
// the only writes this service performs are the admin pass-through updates.
type UserAccount struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Email       string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	IsActive    bool         `gorm:"not null;default:true" json:"is_active"`
	IsAdmin     bool         `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt   time.Time    `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"created_at"`
	LastLoginAt *time.Time   `json:"last_login_at,omitempty"`
}

// TableName sets the database table name.
func (UserAccount) TableName() string { return "user_accounts" }
