package setting

import (
	"context"

	"github.com/smallbiznis/modguard/internal/setting/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Module = fx.Module("setting.service",
	fx.Provide(NewService),
)

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) domain.Service {
	return &service{db: db}
}

func (s *service) List(ctx context.Context) ([]domain.SystemSetting, error) {
	var settings []domain.SystemSetting
	err := s.db.WithContext(ctx).
		Order("key asc").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *service) Upsert(ctx context.Context, settings []domain.SystemSetting) error {
	if len(settings) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description"}),
		}).
		Create(&settings).Error
}
