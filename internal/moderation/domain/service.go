package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/modguard/pkg/db/pagination"
)

// FilterAll is the sentinel meaning "do not filter on this field".
const FilterAll = "all"

type ListRequest struct {
	Status   string
	Category string
	Search   string
	Page     pagination.Pagination
}

type ListResponse struct {
	Reports []Report `json:"data"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

type ActionRequest struct {
	ReportIDs []string `json:"report_ids"`
	Action    Action   `json:"action"`
}

type ActionResult struct {
	Processed int    `json:"processed"`
	Action    Action `json:"action"`
}

type Service interface {
	List(context.Context, ListRequest) (ListResponse, error)
	ApplyAction(context.Context, ActionRequest) (ActionResult, error)
	PendingCount(context.Context) (int, error)
	Recent(context.Context, int) ([]Report, error)
}

// Store abstracts the report collection so the in-memory implementation can
// later be swapped for a durable table without touching the service.
type Store interface {
	// Seed populates the store once; it is a no-op when reports already exist.
	Seed(now time.Time, count int)
	// Snapshot returns a copy of every report in insertion order.
	Snapshot(ctx context.Context) []Report
	// UpdateStatus sets status on every report whose id is in ids and
	// returns how many reports were touched. Unknown ids are skipped.
	UpdateStatus(ctx context.Context, ids map[string]struct{}, status Status) int
}

var (
	ErrInvalidAction = errors.New("invalid_action")
)
