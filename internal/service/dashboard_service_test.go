package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
)

func newDashboardFixture(t *testing.T, cache KPICache) (*DashboardService, *fakeEmployeeRepo, *fakeLeaveRepo, *fakeApplicantRepo) {
	t.Helper()

	employees := newFakeEmployeeRepo()
	leaves := newFakeLeaveRepo()
	applicants := newFakeApplicantRepo()
	svc := NewDashboardService(employees, leaves, applicants, cache, zap.NewNop())
	return svc, employees, leaves, applicants
}

func TestKPIsComputed(t *testing.T) {
	svc, employees, leaves, applicants := newDashboardFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Name: "A", Email: "a@example.com", Status: domain.EmployeeStatusActive}))
	require.NoError(t, employees.Create(ctx, &domain.Employee{Name: "B", Email: "b@example.com", Status: domain.EmployeeStatusInactive}))
	require.NoError(t, leaves.Create(ctx, &domain.LeaveRequest{EmployeeRef: "a@example.com", Status: domain.LeaveStatusPending}))
	require.NoError(t, applicants.Create(ctx, &domain.Applicant{Name: "C", Stage: domain.StageInterview}))
	require.NoError(t, applicants.Create(ctx, &domain.Applicant{Name: "D", Stage: domain.StageRejected}))

	kpis, err := svc.KPIs(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), kpis.Headcount)
	assert.Equal(t, int64(1), kpis.PendingLeave)
	assert.Equal(t, int64(1), kpis.OpenApplicants)
}

func TestKPIsServedFromCache(t *testing.T) {
	cache := newFakeKPICache()
	svc, employees, _, _ := newDashboardFixture(t, cache)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Name: "A", Email: "a@example.com", Status: domain.EmployeeStatusActive}))

	first, err := svc.KPIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Headcount)
	assert.Equal(t, 1, cache.sets)

	// A later data change is not visible until the cache entry expires.
	require.NoError(t, employees.Create(ctx, &domain.Employee{Name: "B", Email: "b@example.com", Status: domain.EmployeeStatusActive}))

	second, err := svc.KPIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Headcount)
	assert.Equal(t, 1, cache.sets, "cache hit must not rewrite the entry")
}

func TestKPIsCacheFailureFallsBack(t *testing.T) {
	cache := newFakeKPICache()
	cache.failed = true
	svc, employees, _, _ := newDashboardFixture(t, cache)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Name: "A", Email: "a@example.com", Status: domain.EmployeeStatusActive}))

	kpis, err := svc.KPIs(ctx)
	require.NoError(t, err, "cache errors must not fail the request")
	assert.Equal(t, int64(1), kpis.Headcount)
}
