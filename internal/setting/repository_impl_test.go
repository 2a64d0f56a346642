package setting

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/modguard/internal/setting/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSettings(t *testing.T) domain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.SystemSetting{}))
	return NewService(db)
}

func strPtr(v string) *string { return &v }

func TestUpsertInsertsThenUpdates(t *testing.T) {
	svc := setupSettings(t)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, []domain.SystemSetting{
		{Key: "maintenance_mode", Value: strPtr("off"), Description: strPtr("Toggle read-only mode")},
		{Key: "filter_threshold", Value: strPtr("0.8")},
	}))

	settings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "filter_threshold", settings[0].Key)

	require.NoError(t, svc.Upsert(ctx, []domain.SystemSetting{
		{Key: "maintenance_mode", Value: strPtr("on")},
	}))

	settings, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	for _, s := range settings {
		if s.Key == "maintenance_mode" {
			require.NotNil(t, s.Value)
			assert.Equal(t, "on", *s.Value)
		}
	}
}

func TestUpsertEmptyBatchIsNoop(t *testing.T) {
	svc := setupSettings(t)
	require.NoError(t, svc.Upsert(context.Background(), nil))
}
