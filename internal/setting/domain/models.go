package domain

import "context"

// SystemSetting is one configuration row, upserted by key.
type SystemSetting struct {
	Key         string  `gorm:"primaryKey;type:text" json:"key"`
	Value       *string `gorm:"type:text" json:"value"`
	Description *string `gorm:"type:text" json:"description"`
}

// TableName sets the database table name.
func (SystemSetting) TableName() string { return "system_settings" }

type Service interface {
	List(ctx context.Context) ([]SystemSetting, error)
	Upsert(ctx context.Context, settings []SystemSetting) error
}
