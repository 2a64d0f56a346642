package domain

import (
	"time"

	"github.com/smallbiznis/modguard/internal/timeseries"
)

// OverviewStats is the dashboard headline block. Each value is computed by
// an independent query; there is no snapshot consistency across them.
type OverviewStats struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveToday    int64 `json:"active_today"`
	ContentBlocked int64 `json:"content_blocked"`
	PendingReports int   `json:"pending_reports"`
	TotalRevenue   int64 `json:"total_revenue"`
}

type UsageStats struct {
	UsageOverTime []timeseries.Point `json:"usage_over_time"`
	Total         int64              `json:"total"`
	// GrowthPercentage is a placeholder until a growth model exists.
	GrowthPercentage float64 `json:"growth_percentage"`
	Estimated        bool    `json:"estimated"`
}

type RevenueStats struct {
	RevenueOverTime []timeseries.CumulativePoint `json:"revenue_over_time"`
	Total           int64                        `json:"total"`
}

// RegistrationStats carries the new-user series in descending date order,
// a deliberate product choice for the dashboard widget.
type RegistrationStats struct {
	RegistrationsOverTime []timeseries.Point `json:"registrations_over_time"`
	Total                 int64              `json:"total"`
}

// AccuracyStats has no underlying computation yet; Estimated marks it as a
// placeholder until a prediction feedback source exists.
type AccuracyStats struct {
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	Last30DaysChange   float64 `json:"last_30_days_change"`
	AccurateCount      int64   `json:"accurate_count"`
	InaccurateCount    int64   `json:"inaccurate_count"`
	Estimated          bool    `json:"estimated"`
}

type TopCategory struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Estimated  bool    `json:"estimated"`
}

type ActivityType string

const (
	ActivityLogin  ActivityType = "login"
	ActivityReport ActivityType = "report"
)

type Activity struct {
	ID      string       `json:"id"`
	Content string       `json:"content"`
	User    string       `json:"user"`
	Date    time.Time    `json:"date"`
	Action  string       `json:"action"`
	Type    ActivityType `json:"type"`
}
