package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
)

// In-memory repository fakes shared across service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = "user-" + strconv.Itoa(r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.LeaveRequest
	seq      int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*domain.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, req *domain.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	req.ID = "leave-" + strconv.Itoa(r.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	copied := *req
	r.requests[req.ID] = &copied
	return nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, req *domain.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *req
	r.requests[req.ID] = &copied
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *req
	return &copied, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeRef string, limit, offset int) ([]domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LeaveRequest, 0)
	for _, req := range r.requests {
		if strings.EqualFold(req.EmployeeRef, employeeRef) {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByStatus(_ context.Context, status domain.LeaveStatus, limit, offset int) ([]domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LeaveRequest, 0)
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) CountPending(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, req := range r.requests {
		if req.Status == domain.LeaveStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeLeaveRepo) OverlapExists(_ context.Context, employeeRef string, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if !strings.EqualFold(req.EmployeeRef, employeeRef) || req.Status == domain.LeaveStatusDenied {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeApplicantRepo struct {
	mu         sync.Mutex
	applicants map[string]*domain.Applicant
	seq        int
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{applicants: make(map[string]*domain.Applicant)}
}

func (r *fakeApplicantRepo) Create(_ context.Context, app *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	app.ID = "applicant-" + strconv.Itoa(r.seq)
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	copied := *app
	r.applicants[app.ID] = &copied
	return nil
}

func (r *fakeApplicantRepo) Update(_ context.Context, app *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applicants[app.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *app
	r.applicants[app.ID] = &copied
	return nil
}

func (r *fakeApplicantRepo) GetByID(_ context.Context, id string) (*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applicants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicantRepo) List(_ context.Context, stage *domain.ApplicantStage, limit, offset int) ([]domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Applicant, 0)
	for _, app := range r.applicants {
		if stage != nil && app.Stage != *stage {
			continue
		}
		out = append(out, *app)
	}
	return out, nil
}

func (r *fakeApplicantRepo) CountOpen(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, app := range r.applicants {
		if app.Stage != domain.StageHired && app.Stage != domain.StageRejected {
			count++
		}
	}
	return count, nil
}

type fakeShiftRepo struct {
	mu     sync.Mutex
	shifts map[string]*domain.Shift
	seq    int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	shift.ID = "shift-" + strconv.Itoa(r.seq)
	shift.CreatedAt = time.Now()
	shift.UpdatedAt = shift.CreatedAt
	copied := *shift
	r.shifts[shift.ID] = &copied
	return nil
}

func (r *fakeShiftRepo) Update(_ context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[shift.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *shift
	r.shifts[shift.ID] = &copied
	return nil
}

func (r *fakeShiftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.shifts, id)
	return nil
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shift, ok := r.shifts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *shift
	return &copied, nil
}

func (r *fakeShiftRepo) ListByEmployee(_ context.Context, employeeID string, from, to time.Time) ([]domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Shift, 0)
	for _, shift := range r.shifts {
		if shift.EmployeeID != employeeID {
			continue
		}
		if shift.StartsAt.Before(to) && from.Before(shift.EndsAt) {
			out = append(out, *shift)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListByRange(_ context.Context, from, to time.Time) ([]domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Shift, 0)
	for _, shift := range r.shifts {
		if shift.StartsAt.Before(to) && from.Before(shift.EndsAt) {
			out = append(out, *shift)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*domain.Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	emp.ID = "employee-" + strconv.Itoa(r.seq)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	copied := *emp
	r.employees[emp.ID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *emp
	r.employees[emp.ID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *emp
	return &copied, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, department *string, limit, offset int) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Employee, 0)
	for _, emp := range r.employees {
		if department != nil && emp.Department != *department {
			continue
		}
		out = append(out, *emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) CountByStatus(_ context.Context, status domain.EmployeeStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, emp := range r.employees {
		if emp.Status == status {
			count++
		}
	}
	return count, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (d *recordingDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.published...)
}

var errCacheMiss = errors.New("cache miss")

// fakeKPICache is an in-memory KPICache.
type fakeKPICache struct {
	mu     sync.Mutex
	data   map[string][]byte
	gets   int
	sets   int
	failed bool
}

func newFakeKPICache() *fakeKPICache {
	return &fakeKPICache{data: make(map[string][]byte)}
}

func (c *fakeKPICache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failed {
		return nil, context.DeadlineExceeded
	}
	raw, ok := c.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return raw, nil
}

func (c *fakeKPICache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failed {
		return context.DeadlineExceeded
	}
	c.data[key] = value
	return nil
}
