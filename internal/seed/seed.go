// Package seed bootstraps the schema and default settings at startup.
package seed

import (
	"context"
	"errors"

	billingdomain "github.com/smallbiznis/modguard/internal/billing/domain"
	identitydomain "github.com/smallbiznis/modguard/internal/identity/domain"
	settingdomain "github.com/smallbiznis/modguard/internal/setting/domain"
	usagelogdomain "github.com/smallbiznis/modguard/internal/usagelog/domain"
	pkgdb "github.com/smallbiznis/modguard/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Invoke(ensureSchema)

var defaultSettings = []settingdomain.SystemSetting{
	{Key: "maintenance_mode", Value: strPtr("off"), Description: strPtr("Toggle read-only maintenance mode")},
	{Key: "filter_threshold", Value: strPtr("0.8"), Description: strPtr("Minimum confidence before content is blocked")},
	{Key: "report_retention_days", Value: strPtr("90"), Description: strPtr("How long resolved reports stay visible")},
}

func ensureSchema(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Ensure(db)
		},
	})
}

// Ensure migrates the tables this service reads and inserts default system
// settings without overwriting operator edits.
func Ensure(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	if err := db.AutoMigrate(
		&identitydomain.UserAccount{},
		&usagelogdomain.UsageEvent{},
		&billingdomain.Transaction{},
		&settingdomain.SystemSetting{},
	); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range defaultSettings {
			if err := tx.Create(&setting).Error; err != nil {
				if pkgdb.IsDuplicateKeyErr(err) {
					continue
				}
				return err
			}
		}
		return nil
	})
}

func strPtr(v string) *string { return &v }
