package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
)

type ListFilter struct {
	Search   string
	IsActive *bool
	IsAdmin  *bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter, page pagination.Pagination) ([]UserAccount, int64, error)
	FindByID(ctx context.Context, id snowflake.ID) (*UserAccount, error)
	UpdateFlags(ctx context.Context, id snowflake.ID, isActive, isAdmin *bool) error
	Delete(ctx context.Context, id snowflake.ID) error
}
