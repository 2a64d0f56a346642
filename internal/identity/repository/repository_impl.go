package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/modguard/internal/identity/domain"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter, page pagination.Pagination) ([]domain.UserAccount, int64, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.UserAccount{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		stmt = stmt.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", needle, needle)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsAdmin != nil {
		stmt = stmt.Where("is_admin = ?", *filter.IsAdmin)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.UserAccount
	err := page.Apply(stmt).
		Order("created_at desc, id desc").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.UserAccount, error) {
	var user domain.UserAccount
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, email, name, is_active, is_admin, created_at, last_login_at
		 FROM user_accounts WHERE id = ?`,
		id,
	).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (r *repo) UpdateFlags(ctx context.Context, id snowflake.ID, isActive, isAdmin *bool) error {
	updates := map[string]any{}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if isAdmin != nil {
		updates["is_admin"] = *isAdmin
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.UserAccount{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.UserAccount{}).Error
}
