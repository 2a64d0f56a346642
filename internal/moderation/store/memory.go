// Package store holds the process-lifetime moderation report collection.
package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/smallbiznis/modguard/internal/moderation/domain"
)

// prngSeed is fixed so seeded reports are reproducible across restarts.
const prngSeed = 20260401

var seedCategories = []string{"Nudity", "Violence", "Hate Speech", "Spam", "Harassment"}

var seedReasons = []string{"Inappropriate Content", "Spam", "Harassment", "Hate Speech"}

// Memory is a mutex-guarded in-memory report store. A single lock serializes
// seeding and bulk status writes against concurrent administrator requests.
type Memory struct {
	mu      sync.Mutex
	reports []*domain.Report
}

func NewMemory() *Memory {
	return &Memory{}
}

// Seed populates the store with synthetic reports on first use only.
func (m *Memory) Seed(now time.Time, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.reports) > 0 {
		return
	}

	rng := rand.New(rand.NewSource(prngSeed))
	for i := 0; i < count; i++ {
		preview := fmt.Sprintf("Offensive comment #%d", i)
		if i%2 == 0 {
			preview = fmt.Sprintf("https://example.com/content/%d.jpg", i)
		}
		m.reports = append(m.reports, &domain.Report{
			ID:             fmt.Sprintf("rpt_%d", i+100),
			ContentPreview: preview,
			Reason:         seedReasons[rng.Intn(len(seedReasons))],
			Reporter:       fmt.Sprintf("user_%d", rng.Intn(100)+1),
			SubmittedAt:    now.UTC().AddDate(0, 0, -rng.Intn(31)),
			Status:         domain.Statuses[rng.Intn(len(domain.Statuses))],
			Category:       seedCategories[rng.Intn(len(seedCategories))],
		})
	}
}

// Snapshot copies every report so readers never observe in-place mutation.
func (m *Memory) Snapshot(_ context.Context) []domain.Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, *r)
	}
	return out
}

// UpdateStatus applies status to every report whose id is in ids.
func (m *Memory) UpdateStatus(_ context.Context, ids map[string]struct{}, status domain.Status) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	processed := 0
	for _, r := range m.reports {
		if _, ok := ids[r.ID]; ok {
			r.Status = status
			processed++
		}
	}
	return processed
}
