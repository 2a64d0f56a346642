package service

import (
	"context"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/smallbiznis/modguard/internal/moderation/domain"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var actionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "modguard_moderation_actions_total",
	Help: "Bulk moderation actions applied, labeled by action.",
}, []string{"action"})

type Params struct {
	fx.In

	Store domain.Store
	Log   *zap.Logger
}

type Service struct {
	store domain.Store
	log   *zap.Logger
}

func NewService(p Params) domain.Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("moderation.service"),
	}
}

// List filters the report queue by status, category and free-text search, in
// that order, then paginates the filtered set.
func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	filtered := s.store.Snapshot(ctx)

	if req.Status != "" && req.Status != domain.FilterAll {
		filtered = keep(filtered, func(r domain.Report) bool {
			return string(r.Status) == req.Status
		})
	}
	if req.Category != "" && req.Category != domain.FilterAll {
		filtered = keep(filtered, func(r domain.Report) bool {
			return r.Category == req.Category
		})
	}
	if req.Search != "" {
		needle := strings.ToLower(req.Search)
		filtered = keep(filtered, func(r domain.Report) bool {
			return strings.Contains(strings.ToLower(r.Reason), needle) ||
				strings.Contains(strings.ToLower(r.Reporter), needle)
		})
	}

	page := req.Page.Normalize()
	return domain.ListResponse{
		Reports: pagination.Slice(filtered, page),
		Total:   len(filtered),
		Page:    page.Page,
		Limit:   page.Limit,
	}, nil
}

// ApplyAction validates the action before any report is mutated, then sets
// the implied status on every matching report. Unknown ids are skipped.
func (s *Service) ApplyAction(ctx context.Context, req domain.ActionRequest) (domain.ActionResult, error) {
	status, err := domain.StatusForAction(req.Action)
	if err != nil {
		return domain.ActionResult{}, err
	}

	ids := make(map[string]struct{}, len(req.ReportIDs))
	for _, id := range req.ReportIDs {
		ids[id] = struct{}{}
	}

	processed := s.store.UpdateStatus(ctx, ids, status)
	actionCounter.WithLabelValues(string(req.Action)).Add(float64(processed))
	s.log.Info("applied moderation action",
		zap.String("action", string(req.Action)),
		zap.Int("requested", len(req.ReportIDs)),
		zap.Int("processed", processed),
	)

	return domain.ActionResult{Processed: processed, Action: req.Action}, nil
}

func (s *Service) PendingCount(ctx context.Context) (int, error) {
	count := 0
	for _, r := range s.store.Snapshot(ctx) {
		if r.Status == domain.StatusPending {
			count++
		}
	}
	return count, nil
}

// Recent returns the most recently submitted reports, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Report, error) {
	reports := s.store.Snapshot(ctx)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].SubmittedAt.After(reports[j].SubmittedAt)
	})
	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}
	return reports, nil
}

func keep(reports []domain.Report, pred func(domain.Report) bool) []domain.Report {
	out := reports[:0:0]
	for _, r := range reports {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
