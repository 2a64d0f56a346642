package service

import (
	"context"
	"sort"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/smallbiznis/modguard/internal/billing/domain"
	leaderboarddomain "github.com/smallbiznis/modguard/internal/leaderboard/domain"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(p Params) leaderboarddomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("leaderboard.service"),
	}
}

func (s *Service) TopByUsage(ctx context.Context, req leaderboarddomain.TopByUsageRequest) (leaderboarddomain.ListResponse, error) {
	stmt := s.db.WithContext(ctx).
		Table("usage_events").
		Select("user_id, COUNT(id) AS value").
		Group("user_id")
	if req.EndpointPattern != "" {
		stmt = stmt.Where("endpoint LIKE ?", "%"+req.EndpointPattern+"%")
	}

	aggregates, err := scanAggregates(stmt)
	if err != nil {
		return leaderboarddomain.ListResponse{}, err
	}
	return s.rank(ctx, aggregates, req.Ascending, req.Page)
}

func (s *Service) TopBySpend(ctx context.Context, req leaderboarddomain.TopBySpendRequest) (leaderboarddomain.ListResponse, error) {
	stmt := s.db.WithContext(ctx).
		Table("transactions").
		Select("user_id, COALESCE(SUM(amount), 0) AS value").
		Where("status = ?", string(billingdomain.StatusSuccess)).
		Where("type IN ?", revenueTypes()).
		Group("user_id")

	aggregates, err := scanAggregates(stmt)
	if err != nil {
		return leaderboarddomain.ListResponse{}, err
	}
	return s.rank(ctx, aggregates, req.Ascending, req.Page)
}

// rank outer-joins the aggregate map against the full user set so
// zero-activity users still appear, sorts by value with user id as the
// stable tie-break, and paginates.
func (s *Service) rank(ctx context.Context, aggregates map[snowflake.ID]int64, ascending bool, page pagination.Pagination) (leaderboarddomain.ListResponse, error) {
	type userRow struct {
		ID    snowflake.ID `gorm:"column:id"`
		Email string       `gorm:"column:email"`
		Name  string       `gorm:"column:name"`
	}
	var users []userRow
	if err := s.db.WithContext(ctx).Raw(
		`SELECT id, email, name FROM user_accounts`,
	).Scan(&users).Error; err != nil {
		return leaderboarddomain.ListResponse{}, err
	}

	rows := make([]leaderboarddomain.UserSummary, 0, len(users))
	for _, u := range users {
		rows = append(rows, leaderboarddomain.UserSummary{
			UserID: u.ID,
			Email:  u.Email,
			Name:   u.Name,
			Value:  aggregates[u.ID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			if ascending {
				return rows[i].Value < rows[j].Value
			}
			return rows[i].Value > rows[j].Value
		}
		return rows[i].UserID < rows[j].UserID
	})

	page = page.Normalize()
	return leaderboarddomain.ListResponse{
		Users: pagination.Slice(rows, page),
		Total: int64(len(rows)),
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

type aggregateRow struct {
	UserID snowflake.ID `gorm:"column:user_id"`
	Value  int64        `gorm:"column:value"`
}

func scanAggregates(stmt *gorm.DB) (map[snowflake.ID]int64, error) {
	var rows []aggregateRow
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	aggregates := make(map[snowflake.ID]int64, len(rows))
	for _, row := range rows {
		aggregates[row.UserID] = row.Value
	}
	return aggregates, nil
}

func revenueTypes() []string {
	types := make([]string, 0, len(billingdomain.RevenueTypes))
	for _, t := range billingdomain.RevenueTypes {
		types = append(types, string(t))
	}
	return types
}
