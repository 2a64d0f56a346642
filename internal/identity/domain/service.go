package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/modguard/pkg/db/pagination"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

type ListUsersRequest struct {
	// Search matches email or name, case-insensitive substring.
	Search string
	// Status filters on is_active: "active", "inactive" or empty.
	Status string
	// Role filters on is_admin: "admin", "user" or empty.
	Role string
	Page pagination.Pagination
}

type ListUsersResponse struct {
	Users []UserAccount `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type UpdateStatusRequest struct {
	UserID   string
	IsActive *bool
	IsAdmin  *bool
}

// Service is the thin admin pass-through over the identity subsystem's
// user table.
type Service interface {
	List(context.Context, ListUsersRequest) (ListUsersResponse, error)
	UpdateStatus(context.Context, UpdateStatusRequest) (UserAccount, error)
	Delete(ctx context.Context, userID string) error
}

var (
	ErrNotFound  = errors.New("not_found")
	ErrInvalidID = errors.New("invalid_id")
)
