package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/modguard/internal/moderation/domain"
	"github.com/smallbiznis/modguard/internal/moderation/store"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, seedCount int) (domain.Service, domain.Store) {
	t.Helper()
	mem := store.NewMemory()
	mem.Seed(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), seedCount)
	svc := NewService(Params{Store: mem, Log: zap.NewNop()})
	return svc, mem
}

func TestSeedIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mem.Seed(now, 50)
	first := mem.Snapshot(context.Background())
	require.Len(t, first, 50)

	mem.Seed(now.AddDate(0, 0, 1), 50)
	second := mem.Snapshot(context.Background())
	assert.Len(t, second, 50)
	assert.Equal(t, first, second)
}

func TestSeedReportShape(t *testing.T) {
	mem := store.NewMemory()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	mem.Seed(now, 50)

	for _, r := range mem.Snapshot(context.Background()) {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Reason)
		assert.NotEmpty(t, r.Reporter)
		assert.NotEmpty(t, r.Category)
		assert.Contains(t, domain.Statuses, r.Status)
		assert.False(t, r.SubmittedAt.After(now))
		assert.False(t, r.SubmittedAt.Before(now.AddDate(0, 0, -30)))
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newTestService(t, 50)

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Status: "approved",
		Page:   pagination.Pagination{Page: 1, Limit: 100},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Reports)

	for _, r := range resp.Reports {
		assert.Equal(t, domain.StatusApproved, r.Status)
	}
	assert.Equal(t, len(resp.Reports), resp.Total)
}

func TestListStatusAllIsNoFilter(t *testing.T) {
	svc, _ := newTestService(t, 50)

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Status: domain.FilterAll,
		Page:   pagination.Pagination{Page: 1, Limit: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Total)
}

func TestListSearchMatchesReasonOrReporterCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t, 50)

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Search: "SPAM",
		Page:   pagination.Pagination{Page: 1, Limit: 100},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Reports)

	for _, r := range resp.Reports {
		matched := strings.Contains(strings.ToLower(r.Reason), "spam") ||
			strings.Contains(strings.ToLower(r.Reporter), "spam")
		assert.True(t, matched, "report %s matched neither reason nor reporter", r.ID)
	}
}

func TestListPaginationBounds(t *testing.T) {
	svc, _ := newTestService(t, 50)
	ctx := context.Background()

	page1, err := svc.List(ctx, domain.ListRequest{Page: pagination.Pagination{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, page1.Reports, 10)
	assert.Equal(t, 50, page1.Total)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 10, page1.Limit)

	page5, err := svc.List(ctx, domain.ListRequest{Page: pagination.Pagination{Page: 5, Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, page5.Reports, 10)

	beyond, err := svc.List(ctx, domain.ListRequest{Page: pagination.Pagination{Page: 6, Limit: 10}})
	require.NoError(t, err)
	assert.Empty(t, beyond.Reports)
	assert.Equal(t, 50, beyond.Total)
}

func TestApplyActionApprovesBothReports(t *testing.T) {
	svc, mem := newTestService(t, 50)
	ctx := context.Background()

	result, err := svc.ApplyAction(ctx, domain.ActionRequest{
		ReportIDs: []string{"rpt_100", "rpt_101"},
		Action:    domain.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, domain.ActionApprove, result.Action)

	for _, r := range mem.Snapshot(ctx) {
		if r.ID == "rpt_100" || r.ID == "rpt_101" {
			assert.Equal(t, domain.StatusApproved, r.Status)
		}
	}
}

func TestApplyActionSkipsUnknownIDs(t *testing.T) {
	svc, _ := newTestService(t, 50)

	result, err := svc.ApplyAction(context.Background(), domain.ActionRequest{
		ReportIDs: []string{"rpt_100", "rpt_9999"},
		Action:    domain.ActionReject,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestApplyActionRejectsUnknownActionWithoutMutating(t *testing.T) {
	svc, mem := newTestService(t, 50)
	ctx := context.Background()

	before := mem.Snapshot(ctx)
	_, err := svc.ApplyAction(ctx, domain.ActionRequest{
		ReportIDs: []string{"rpt_100"},
		Action:    "delete",
	})
	require.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, before, mem.Snapshot(ctx))
}

// Re-deciding an already-decided report is allowed today; a transition guard
// would be a deliberate behavior change.
func TestApplyActionRedecidesDecidedReport(t *testing.T) {
	svc, mem := newTestService(t, 50)
	ctx := context.Background()

	_, err := svc.ApplyAction(ctx, domain.ActionRequest{
		ReportIDs: []string{"rpt_110"},
		Action:    domain.ActionApprove,
	})
	require.NoError(t, err)

	result, err := svc.ApplyAction(ctx, domain.ActionRequest{
		ReportIDs: []string{"rpt_110"},
		Action:    domain.ActionReject,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	for _, r := range mem.Snapshot(ctx) {
		if r.ID == "rpt_110" {
			assert.Equal(t, domain.StatusRejected, r.Status)
		}
	}
}

func TestPendingCountMatchesSnapshot(t *testing.T) {
	svc, mem := newTestService(t, 50)
	ctx := context.Background()

	want := 0
	for _, r := range mem.Snapshot(ctx) {
		if r.Status == domain.StatusPending {
			want++
		}
	}

	got, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecentIsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t, 50)

	recent, err := svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].SubmittedAt.After(recent[i-1].SubmittedAt))
	}
}
