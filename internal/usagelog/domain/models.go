// Package domain contains the persistence model for API usage events.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// UsageEvent is one recorded API call. The logging subsystem owns the table;
// this service only reads it.
type UsageEvent struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID `gorm:"not null;index" json:"user_id"`
	Endpoint  string       `gorm:"type:text;not null" json:"endpoint"`
	Metadata  string       `gorm:"type:text" json:"metadata,omitempty"` // opaque serialized key/value text
	CreatedAt time.Time    `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (UsageEvent) TableName() string { return "usage_events" }
