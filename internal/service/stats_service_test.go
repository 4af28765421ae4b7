package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// seedStatsData loads a mixed population: two departments, two
// citizens, every lifecycle state represented, one unresolved critical
// and one already-resolved critical.
func seedStatsData(repo *fakeComplaintRepo) {
	deptA := int64Ptr(10)
	deptB := int64Ptr(11)
	now := time.Now().UTC()

	rows := []domain.Complaint{
		{UserID: 7, DepartmentID: deptA, Status: domain.StatusSubmitted, Priority: domain.PriorityMedium},
		{UserID: 7, DepartmentID: deptA, Status: domain.StatusAssigned, Priority: domain.PriorityHigh},
		{UserID: 7, DepartmentID: deptA, Status: domain.StatusInProgress, Priority: domain.PriorityCritical},
		{UserID: 8, DepartmentID: deptA, Status: domain.StatusResolved, Priority: domain.PriorityCritical},
		{UserID: 8, DepartmentID: deptB, Status: domain.StatusClosed, Priority: domain.PriorityLow},
		{UserID: 8, DepartmentID: nil, Status: domain.StatusSubmitted, Priority: domain.PriorityMedium},
	}
	for i, row := range rows {
		row.CategoryID = 1
		row.ZoneID = 1
		row.CreatedAt = now.Add(time.Duration(i) * time.Second)
		repo.put(row)
	}
}

func TestStatsCitizen(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(100))

	counters, err := svc.Stats(context.Background(), citizenPrincipal(7))
	require.NoError(t, err)

	assert.Equal(t, int64(3), counters.Total)
	assert.Equal(t, int64(2), counters.Pending)
	assert.Equal(t, int64(1), counters.InProgress)
	assert.Equal(t, int64(0), counters.Resolved)
	// Citizens do not get the critical counter.
	assert.Equal(t, int64(0), counters.Critical)
}

func TestStatsOfficer(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(100))

	counters, err := svc.Stats(context.Background(), officerPrincipal(20, int64Ptr(10)))
	require.NoError(t, err)

	assert.Equal(t, int64(4), counters.Total)
	assert.Equal(t, int64(2), counters.Pending)
	assert.Equal(t, int64(1), counters.InProgress)
	assert.Equal(t, int64(1), counters.Resolved)
	// The resolved critical is excluded; only open criticals count.
	assert.Equal(t, int64(1), counters.Critical)
}

func TestStatsUnassignedOfficerAllZeros(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(100))

	counters, err := svc.Stats(context.Background(), officerPrincipal(21, nil))
	require.NoError(t, err)
	assert.Equal(t, &StatsCounters{}, counters)
}

func TestStatsAdmin(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(100))

	counters, err := svc.Stats(context.Background(), adminPrincipal(1))
	require.NoError(t, err)

	assert.Equal(t, int64(6), counters.Total)
	assert.Equal(t, int64(3), counters.Pending)
	assert.Equal(t, int64(1), counters.InProgress)
	assert.Equal(t, int64(2), counters.Resolved)
	assert.Equal(t, int64(1), counters.Critical)
}

func TestStatsAdminNotBoundedByListCap(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(2))

	counters, err := svc.Stats(context.Background(), adminPrincipal(1))
	require.NoError(t, err)
	assert.Equal(t, int64(6), counters.Total)
}

func TestStatsPartitionCoversVisibleSet(t *testing.T) {
	repo := newFakeComplaintRepo()
	seedStatsData(repo)
	svc := NewStatsService(repo, NewVisibilityScoper(100))

	for _, principal := range []domain.Principal{
		citizenPrincipal(7),
		citizenPrincipal(8),
		officerPrincipal(20, int64Ptr(10)),
		officerPrincipal(20, int64Ptr(11)),
		adminPrincipal(1),
	} {
		counters, err := svc.Stats(context.Background(), principal)
		require.NoError(t, err)
		assert.Equal(t, counters.Total, counters.Pending+counters.InProgress+counters.Resolved,
			"status buckets must partition the visible set for %s %d", principal.Role, principal.ID)
	}
}
