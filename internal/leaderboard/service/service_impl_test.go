package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	billingdomain "github.com/smallbiznis/modguard/internal/billing/domain"
	identitydomain "github.com/smallbiznis/modguard/internal/identity/domain"
	leaderboarddomain "github.com/smallbiznis/modguard/internal/leaderboard/domain"
	usagelogdomain "github.com/smallbiznis/modguard/internal/usagelog/domain"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupLeaderboard(t *testing.T) (leaderboarddomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&identitydomain.UserAccount{},
		&usagelogdomain.UsageEvent{},
		&billingdomain.Transaction{},
	))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	svc := NewService(Params{DB: db, Log: zap.NewNop()})
	return svc, db, node
}

func addUser(t *testing.T, db *gorm.DB, node *snowflake.Node, name string) snowflake.ID {
	t.Helper()
	id := node.Generate()
	require.NoError(t, db.Create(&identitydomain.UserAccount{
		ID:        id,
		Email:     fmt.Sprintf("%s@example.com", name),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}).Error)
	return id
}

func addEvents(t *testing.T, db *gorm.DB, node *snowflake.Node, userID snowflake.ID, endpoint string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&usagelogdomain.UsageEvent{
			ID:        node.Generate(),
			UserID:    userID,
			Endpoint:  endpoint,
			CreatedAt: time.Now().UTC(),
		}).Error)
	}
}

func addSpend(t *testing.T, db *gorm.DB, node *snowflake.Node, userID snowflake.ID, amount int64, status billingdomain.TransactionStatus, txType billingdomain.TransactionType) {
	t.Helper()
	require.NoError(t, db.Create(&billingdomain.Transaction{
		ID:        node.Generate(),
		UserID:    userID,
		Amount:    amount,
		Status:    status,
		Type:      txType,
		CreatedAt: time.Now().UTC(),
	}).Error)
}

func TestTopByUsageIncludesZeroActivityUsers(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	alice := addUser(t, db, node, "alice")
	bob := addUser(t, db, node, "bob")
	idle := addUser(t, db, node, "idle")

	addEvents(t, db, node, alice, "/v1/filter", 5)
	addEvents(t, db, node, bob, "/v1/filter", 2)

	resp, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		Page: pagination.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 3)
	assert.Equal(t, int64(3), resp.Total)

	assert.Equal(t, alice, resp.Users[0].UserID)
	assert.Equal(t, int64(5), resp.Users[0].Value)
	assert.Equal(t, bob, resp.Users[1].UserID)
	assert.Equal(t, idle, resp.Users[2].UserID)
	assert.Equal(t, int64(0), resp.Users[2].Value)
}

func TestTopByUsageEndpointPattern(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	alice := addUser(t, db, node, "alice")
	bob := addUser(t, db, node, "bob")

	addEvents(t, db, node, alice, "/v1/filter/image", 4)
	addEvents(t, db, node, alice, "/v1/account", 9)
	addEvents(t, db, node, bob, "/v1/filter/text", 6)

	resp, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		EndpointPattern: "filter",
		Page:            pagination.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)

	assert.Equal(t, bob, resp.Users[0].UserID)
	assert.Equal(t, int64(6), resp.Users[0].Value)
	assert.Equal(t, alice, resp.Users[1].UserID)
	assert.Equal(t, int64(4), resp.Users[1].Value)
}

func TestTopByUsageAscending(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	alice := addUser(t, db, node, "alice")
	bob := addUser(t, db, node, "bob")
	addEvents(t, db, node, alice, "/v1/filter", 5)
	addEvents(t, db, node, bob, "/v1/filter", 2)

	resp, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		Ascending: true,
		Page:      pagination.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, bob, resp.Users[0].UserID)
	assert.Equal(t, alice, resp.Users[1].UserID)
}

func TestTopByUsageTieBreaksByUserID(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	first := addUser(t, db, node, "first")
	second := addUser(t, db, node, "second")
	addEvents(t, db, node, first, "/v1/filter", 3)
	addEvents(t, db, node, second, "/v1/filter", 3)

	resp, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		Page: pagination.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	// snowflake ids are monotonic, so "first" was generated first
	assert.Equal(t, first, resp.Users[0].UserID)
	assert.Equal(t, second, resp.Users[1].UserID)
}

func TestTopByUsagePagination(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	for i := 0; i < 7; i++ {
		user := addUser(t, db, node, fmt.Sprintf("user%d", i))
		addEvents(t, db, node, user, "/v1/filter", i)
	}

	page2, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		Page: pagination.Pagination{Page: 2, Limit: 3},
	})
	require.NoError(t, err)
	assert.Len(t, page2.Users, 3)
	assert.Equal(t, int64(7), page2.Total)

	page3, err := svc.TopByUsage(context.Background(), leaderboarddomain.TopByUsageRequest{
		Page: pagination.Pagination{Page: 3, Limit: 3},
	})
	require.NoError(t, err)
	assert.Len(t, page3.Users, 1)
}

func TestTopBySpendQualifyingTransactionsOnly(t *testing.T) {
	svc, db, node := setupLeaderboard(t)

	alice := addUser(t, db, node, "alice")
	bob := addUser(t, db, node, "bob")
	idle := addUser(t, db, node, "idle")

	addSpend(t, db, node, alice, 1000, billingdomain.StatusSuccess, billingdomain.TypeTopup)
	addSpend(t, db, node, alice, 500, billingdomain.StatusSuccess, billingdomain.TypePurchase)
	addSpend(t, db, node, alice, 9000, billingdomain.StatusFailed, billingdomain.TypeTopup)
	addSpend(t, db, node, bob, 2000, billingdomain.StatusSuccess, billingdomain.TypeTopup)
	addSpend(t, db, node, bob, 9000, billingdomain.StatusSuccess, billingdomain.TypeRefund)

	resp, err := svc.TopBySpend(context.Background(), leaderboarddomain.TopBySpendRequest{
		Page: pagination.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 3)

	assert.Equal(t, bob, resp.Users[0].UserID)
	assert.Equal(t, int64(2000), resp.Users[0].Value)
	assert.Equal(t, alice, resp.Users[1].UserID)
	assert.Equal(t, int64(1500), resp.Users[1].Value)
	assert.Equal(t, idle, resp.Users[2].UserID)
	assert.Equal(t, int64(0), resp.Users[2].Value)
}
