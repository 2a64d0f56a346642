package domain

import "context"

// Service exposes the admin dashboard statistics.
type Service interface {
	Overview(ctx context.Context) (OverviewStats, error)
	UsageSeries(ctx context.Context, days int) (UsageStats, error)
	RevenueSeries(ctx context.Context, days int) (RevenueStats, error)
	RegistrationSeries(ctx context.Context, days int) (RegistrationStats, error)
	Accuracy(ctx context.Context) (AccuracyStats, error)
	TopCategories(ctx context.Context) ([]TopCategory, error)
	RecentActivities(ctx context.Context, limit int) ([]Activity, error)
}
