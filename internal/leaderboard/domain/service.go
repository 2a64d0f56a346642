package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
)

// UserSummary is one row of a ranked listing. Every user gets a row; users
// with no qualifying activity carry a zero value.
type UserSummary struct {
	UserID snowflake.ID `json:"user_id"`
	Email  string       `json:"email"`
	Name   string       `json:"name"`
	Value  int64        `json:"value"`
}

type TopByUsageRequest struct {
	// EndpointPattern narrows qualifying events by endpoint substring.
	// Empty means every event qualifies.
	EndpointPattern string
	Ascending       bool
	Page            pagination.Pagination
}

type TopBySpendRequest struct {
	Ascending bool
	Page      pagination.Pagination
}

type ListResponse struct {
	Users []UserSummary `json:"data"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// Service ranks users by an aggregate over their activity.
type Service interface {
	// TopByUsage ranks users by their count of qualifying usage events.
	TopByUsage(context.Context, TopByUsageRequest) (ListResponse, error)
	// TopBySpend ranks users by their summed successful top-up and
	// purchase amounts.
	TopBySpend(context.Context, TopBySpendRequest) (ListResponse, error)
}
