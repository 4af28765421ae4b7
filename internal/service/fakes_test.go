package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
)

// In-memory repository fakes backing the service tests. The complaint
// fake mirrors the compare-and-swap contract of the real one, including
// the coalesced resolved_at and the log row written in the same step.

type fakeComplaintRepo struct {
	mu         sync.Mutex
	nextID     int64
	nextLogID  int64
	complaints map[int64]*domain.Complaint
	logs       []domain.StatusLog
}

var _ repository.ComplaintRepository = (*fakeComplaintRepo)(nil)

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: map[int64]*domain.Complaint{}}
}

func (f *fakeComplaintRepo) put(c domain.Complaint) domain.Complaint {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	} else if c.ID > f.nextID {
		f.nextID = c.ID
	}
	stored := c
	f.complaints[c.ID] = &stored
	return c
}

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	complaint.ID = f.nextID
	now := time.Now().UTC()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now
	stored := *complaint
	f.complaints[complaint.ID] = &stored
	return nil
}

func (f *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.complaints[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeComplaintRepo) GetByReferenceKey(_ context.Context, key string) (*domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.complaints {
		if stored.ReferenceKey == key {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func matchesFilter(filter repository.ComplaintFilter, c *domain.Complaint) bool {
	if filter.UserID != nil && c.UserID != *filter.UserID {
		return false
	}
	if filter.DepartmentID != nil {
		if c.DepartmentID == nil || *c.DepartmentID != *filter.DepartmentID {
			return false
		}
	}
	if len(filter.Statuses) > 0 {
		found := false
		for _, status := range filter.Statuses {
			if c.Status == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, status := range filter.NotStatuses {
		if c.Status == status {
			return false
		}
	}
	if filter.Priority != nil && c.Priority != *filter.Priority {
		return false
	}
	return true
}

func (f *fakeComplaintRepo) ListWithFilter(_ context.Context, filter repository.ComplaintFilter) ([]domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Complaint
	for _, stored := range f.complaints {
		if matchesFilter(filter, stored) {
			result = append(result, *stored)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return nil, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (f *fakeComplaintRepo) CountWithFilter(_ context.Context, filter repository.ComplaintFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, stored := range f.complaints {
		if matchesFilter(filter, stored) {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintRepo) TransitionStatus(_ context.Context, complaintID int64, expected, next domain.ComplaintStatus, resolvedAt *time.Time, log *domain.StatusLog) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.complaints[complaintID]
	if !ok || stored.Status != expected {
		return false, nil
	}
	stored.Status = next
	if stored.ResolvedAt == nil {
		stored.ResolvedAt = resolvedAt
	}
	stored.UpdatedAt = time.Now().UTC()

	f.nextLogID++
	log.ID = f.nextLogID
	log.CreatedAt = time.Now().UTC()
	f.logs = append(f.logs, *log)
	return true, nil
}

func (f *fakeComplaintRepo) UpdatePriority(_ context.Context, complaintID int64, priority domain.ComplaintPriority) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.complaints[complaintID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Priority = priority
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeComplaintRepo) logsFor(complaintID int64) []domain.StatusLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.StatusLog
	for _, entry := range f.logs {
		if entry.ComplaintID == complaintID {
			result = append(result, entry)
		}
	}
	return result
}

type fakeStatusLogRepo struct {
	complaints *fakeComplaintRepo
}

var _ repository.StatusLogRepository = (*fakeStatusLogRepo)(nil)

func (f *fakeStatusLogRepo) ListByComplaint(_ context.Context, complaintID int64) ([]domain.StatusLog, error) {
	return f.complaints.logsFor(complaintID), nil
}

type fakeComplaintImageRepo struct {
	mu     sync.Mutex
	nextID int64
	images []domain.ComplaintImage
}

var _ repository.ComplaintImageRepository = (*fakeComplaintImageRepo)(nil)

func (f *fakeComplaintImageRepo) Create(_ context.Context, image *domain.ComplaintImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	image.ID = f.nextID
	image.CreatedAt = time.Now().UTC()
	f.images = append(f.images, *image)
	return nil
}

func (f *fakeComplaintImageRepo) ListByComplaint(_ context.Context, complaintID int64) ([]domain.ComplaintImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.ComplaintImage
	for _, image := range f.images {
		if image.ComplaintID == complaintID {
			result = append(result, image)
		}
	}
	return result, nil
}

type fakeCategoryRepo struct {
	categories map[int64]domain.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &category, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var result []domain.Category
	for _, category := range f.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeZoneRepo struct {
	zones map[int64]domain.Zone
}

var _ repository.ZoneRepository = (*fakeZoneRepo)(nil)

func (f *fakeZoneRepo) Create(_ context.Context, zone *domain.Zone) error {
	f.zones[zone.ID] = *zone
	return nil
}

func (f *fakeZoneRepo) GetByID(_ context.Context, id int64) (*domain.Zone, error) {
	zone, ok := f.zones[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &zone, nil
}

func (f *fakeZoneRepo) List(_ context.Context) ([]domain.Zone, error) {
	var result []domain.Zone
	for _, zone := range f.zones {
		result = append(result, zone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]domain.Department
}

var _ repository.DepartmentRepository = (*fakeDepartmentRepo)(nil)

func (f *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	f.departments[dept.ID] = *dept
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dept, nil
}

func (f *fakeDepartmentRepo) GetByCategory(_ context.Context, categoryID int64) (*domain.Department, error) {
	for _, dept := range f.departments {
		if dept.CategoryID != nil && *dept.CategoryID == categoryID {
			copied := dept
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range f.departments {
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func citizenPrincipal(id int64) domain.Principal {
	return domain.Principal{ID: id, Role: domain.RoleCitizen}
}

func officerPrincipal(id int64, departmentID *int64) domain.Principal {
	return domain.Principal{ID: id, Role: domain.RoleOfficer, DepartmentID: departmentID}
}

func adminPrincipal(id int64) domain.Principal {
	return domain.Principal{ID: id, Role: domain.RoleAdmin}
}
