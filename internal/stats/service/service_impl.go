package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	billingdomain "github.com/smallbiznis/modguard/internal/billing/domain"
	"github.com/smallbiznis/modguard/internal/clock"
	moderationdomain "github.com/smallbiznis/modguard/internal/moderation/domain"
	statsdomain "github.com/smallbiznis/modguard/internal/stats/domain"
	"github.com/smallbiznis/modguard/internal/timeseries"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// blockedMarkers are the serialized-metadata fragments that flag a filtered
// request. Substring matching is a heuristic carried over from the logging
// subsystem's format; a structured field would replace it.
var blockedMarkers = []string{`"blocked": true`, `"blocked":true`}

const recentReportActivities = 2

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Moderation moderationdomain.Service
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	moderation moderationdomain.Service
}

func NewService(p Params) statsdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("stats.service"),
		clock:      p.Clock,
		moderation: p.Moderation,
	}
}

func (s *Service) Overview(ctx context.Context) (statsdomain.OverviewStats, error) {
	var totalUsers int64
	if err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM user_accounts`,
	).Scan(&totalUsers).Error; err != nil {
		return statsdomain.OverviewStats{}, err
	}

	today := timeseries.Truncate(s.clock.Now())
	var activeToday int64
	if err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(DISTINCT user_id) FROM usage_events
		 WHERE created_at >= ? AND created_at < ?`,
		today,
		today.AddDate(0, 0, 1),
	).Scan(&activeToday).Error; err != nil {
		return statsdomain.OverviewStats{}, err
	}

	var contentBlocked int64
	if err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM usage_events
		 WHERE metadata LIKE ? OR metadata LIKE ?`,
		"%"+blockedMarkers[0]+"%",
		"%"+blockedMarkers[1]+"%",
	).Scan(&contentBlocked).Error; err != nil {
		return statsdomain.OverviewStats{}, err
	}

	pending, err := s.moderation.PendingCount(ctx)
	if err != nil {
		return statsdomain.OverviewStats{}, err
	}

	var totalRevenue int64
	if err := s.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		 WHERE status = ? AND type IN ?`,
		string(billingdomain.StatusSuccess),
		revenueTypes(),
	).Scan(&totalRevenue).Error; err != nil {
		return statsdomain.OverviewStats{}, err
	}

	return statsdomain.OverviewStats{
		TotalUsers:     totalUsers,
		ActiveToday:    activeToday,
		ContentBlocked: contentBlocked,
		PendingReports: pending,
		TotalRevenue:   totalRevenue,
	}, nil
}

func (s *Service) UsageSeries(ctx context.Context, days int) (statsdomain.UsageStats, error) {
	now := s.clock.Now()
	buckets, err := s.countByDay(ctx,
		`SELECT created_at FROM usage_events WHERE created_at >= ?`,
		timeseries.WindowStart(now, days),
	)
	if err != nil {
		return statsdomain.UsageStats{}, err
	}

	points := timeseries.Daily(now, days, buckets)
	return statsdomain.UsageStats{
		UsageOverTime:    points,
		Total:            timeseries.Sum(points),
		GrowthPercentage: 12.5,
		Estimated:        true,
	}, nil
}

func (s *Service) RevenueSeries(ctx context.Context, days int) (statsdomain.RevenueStats, error) {
	now := s.clock.Now()
	start := timeseries.WindowStart(now, days)

	type row struct {
		CreatedAt time.Time `gorm:"column:created_at"`
		Amount    int64     `gorm:"column:amount"`
	}
	var rows []row
	if err := s.db.WithContext(ctx).Raw(
		`SELECT created_at, amount FROM transactions
		 WHERE created_at >= ? AND status = ? AND type IN ?`,
		start,
		string(billingdomain.StatusSuccess),
		revenueTypes(),
	).Scan(&rows).Error; err != nil {
		return statsdomain.RevenueStats{}, err
	}

	buckets := make(map[string]int64, len(rows))
	for _, r := range rows {
		buckets[r.CreatedAt.UTC().Format(timeseries.DateLayout)] += r.Amount
	}

	points := timeseries.Daily(now, days, buckets)
	return statsdomain.RevenueStats{
		RevenueOverTime: timeseries.Cumulative(points),
		Total:           timeseries.Sum(points),
	}, nil
}

func (s *Service) RegistrationSeries(ctx context.Context, days int) (statsdomain.RegistrationStats, error) {
	now := s.clock.Now()
	buckets, err := s.countByDay(ctx,
		`SELECT created_at FROM user_accounts WHERE created_at >= ?`,
		timeseries.WindowStart(now, days),
	)
	if err != nil {
		return statsdomain.RegistrationStats{}, err
	}

	points := timeseries.Daily(now, days, buckets)
	total := timeseries.Sum(points)
	return statsdomain.RegistrationStats{
		// newest-first, the way the dashboard widget renders it
		RegistrationsOverTime: timeseries.Reverse(points),
		Total:                 total,
	}, nil
}

// Accuracy returns placeholder values; there is no prediction feedback
// source to compute real numbers from yet.
func (s *Service) Accuracy(ctx context.Context) (statsdomain.AccuracyStats, error) {
	return statsdomain.AccuracyStats{
		AccuracyPercentage: 95.2,
		Last30DaysChange:   1.5,
		AccurateCount:      950,
		InaccurateCount:    48,
		Estimated:          true,
	}, nil
}

// TopCategories returns placeholder values until category tagging lands in
// the logging subsystem.
func (s *Service) TopCategories(ctx context.Context) ([]statsdomain.TopCategory, error) {
	return []statsdomain.TopCategory{
		{Category: "Hate Speech", Percentage: 30.0, Estimated: true},
		{Category: "Violence", Percentage: 25.0, Estimated: true},
		{Category: "Nudity", Percentage: 20.0, Estimated: true},
		{Category: "Misinformation", Percentage: 15.0, Estimated: true},
		{Category: "Spam", Percentage: 10.0, Estimated: true},
	}, nil
}

// RecentActivities merges the latest usage events with the freshest
// moderation reports, newest first, truncated to limit.
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]statsdomain.Activity, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
		ID        int64     `gorm:"column:id"`
		UserID    int64     `gorm:"column:user_id"`
		Endpoint  string    `gorm:"column:endpoint"`
		CreatedAt time.Time `gorm:"column:created_at"`
	}
	var rows []row
	if err := s.db.WithContext(ctx).Raw(
		`SELECT id, user_id, endpoint, created_at FROM usage_events
		 ORDER BY created_at DESC LIMIT ?`,
		limit,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}

	activities := make([]statsdomain.Activity, 0, limit+recentReportActivities)
	for _, r := range rows {
		activities = append(activities, statsdomain.Activity{
			ID:      fmt.Sprintf("%d", r.ID),
			Content: r.Endpoint,
			User:    fmt.Sprintf("User %d", r.UserID),
			Date:    r.CreatedAt,
			Action:  "Accessed",
			Type:    statsdomain.ActivityLogin,
		})
	}

	reports, err := s.moderation.Recent(ctx, recentReportActivities)
	if err != nil {
		return nil, err
	}
	for i, report := range reports {
		activities = append(activities, statsdomain.Activity{
			ID:      fmt.Sprintf("act_rpt_%d", i),
			Content: report.Reason,
			User:    report.Reporter,
			Date:    report.SubmittedAt,
			Action:  "Reported",
			Type:    statsdomain.ActivityReport,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// countByDay fetches created_at values past start and buckets them by UTC
// calendar date. The window restriction happens server-side; bucketing stays
// in memory so the query is portable across dialects.
func (s *Service) countByDay(ctx context.Context, query string, start time.Time) (map[string]int64, error) {
	type row struct {
		CreatedAt time.Time `gorm:"column:created_at"`
	}
	var rows []row
	if err := s.db.WithContext(ctx).Raw(query, start).Scan(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]int64, len(rows))
	for _, r := range rows {
		buckets[r.CreatedAt.UTC().Format(timeseries.DateLayout)]++
	}
	return buckets, nil
}

func revenueTypes() []string {
	types := make([]string, 0, len(billingdomain.RevenueTypes))
	for _, t := range billingdomain.RevenueTypes {
		types = append(types, string(t))
	}
	return types
}
